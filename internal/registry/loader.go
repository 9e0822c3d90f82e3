package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Registry is the result of a single scan over a registry root.
type Registry struct {
	Root    string
	Docs    []DocFile
	Entries []EntryFile
}

// Loader reads a registry tree. It never modifies the files it reads.
type Loader struct {
	root   string
	logger *slog.Logger
}

// NewLoader creates a loader rooted at root. A nil logger discards output.
func NewLoader(root string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{root: root, logger: logger}
}

// Load scans root with a discarding logger.
func Load(root string) (*Registry, error) {
	return NewLoader(root, nil).Load()
}

// Load parses every document and entry list under the root. Per-file parse
// problems are recorded on the returned files; only an unusable root is an error.
func (l *Loader) Load() (*Registry, error) {
	if err := CheckRoot(l.root); err != nil {
		return nil, err
	}

	reg := &Registry{Root: l.root}

	for _, dd := range DocDirs {
		paths, err := FindFiles(l.root, dd.Dir, DocExt)
		if err != nil {
			return nil, err
		}
		for _, p := range paths {
			reg.Docs = append(reg.Docs, l.loadDoc(dd.Kind, p))
		}
	}

	paths, err := FindFiles(l.root, ErrorsDir, EntryExt)
	if err != nil {
		return nil, err
	}
	for _, p := range paths {
		reg.Entries = append(reg.Entries, l.loadEntries(p))
	}

	l.logger.Debug("registry loaded",
		"root", l.root,
		"docs", len(reg.Docs),
		"entry_files", len(reg.Entries))
	return reg, nil
}

func (l *Loader) loadDoc(kind Kind, rel string) DocFile {
	content, err := os.ReadFile(filepath.Join(l.root, filepath.FromSlash(rel)))
	if err != nil {
		l.logger.Warn("cannot read document", "path", rel, "error", err)
		return DocFile{Path: rel, Kind: kind, Status: ParseReadError, Detail: err.Error()}
	}
	doc := ParseDoc(kind, rel, content)
	l.logger.Debug("parsed document", "path", rel, "kind", kind, "status", doc.Status)
	return doc
}

func (l *Loader) loadEntries(rel string) EntryFile {
	content, err := os.ReadFile(filepath.Join(l.root, filepath.FromSlash(rel)))
	if err != nil {
		l.logger.Warn("cannot read entry list", "path", rel, "error", err)
		return EntryFile{Path: rel, Status: ParseReadError, Detail: err.Error()}
	}
	file := ParseEntryList(rel, content)
	l.logger.Debug("parsed entry list", "path", rel, "status", file.Status, "items", len(file.Items))
	return file
}

// FindFiles returns the slash-separated paths, relative to root, of every file
// under root/dir with the given extension. Paths are in lexical walk order.
// A missing dir yields no paths.
func FindFiles(root, dir, ext string) ([]string, error) {
	base := filepath.Join(root, dir)
	info, err := os.Stat(base)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("checking %s: %w", base, err)
	}
	if !info.IsDir() {
		return nil, nil
	}

	var paths []string
	err = filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ext) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", base, err)
	}
	return paths, nil
}

// CheckRoot reports whether root is a readable directory.
func CheckRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("reading registry root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("registry root %s is not a directory", root)
	}
	return nil
}
