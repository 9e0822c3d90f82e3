package manifest

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/agentchanti/kbreg/internal/registry"
)

// CountedDirs are the document directories whose files are counted, in
// manifest order.
var CountedDirs = []string{"patterns", "adrs", "docs", "behavioral"}

// rootLanguage labels entry files that sit directly under errors/.
const rootLanguage = "(none)"

// Counts is a snapshot of registry content sizes.
type Counts struct {
	// TotalEntries is the number of list items across every errors/**/*.yml file.
	TotalEntries int
	// EntryFiles is the number of entry list files found.
	EntryFiles int
	// Files maps each CountedDirs directory to its .md file count.
	Files map[string]int
	// Languages maps each errors/<language> directory to its entry count.
	Languages map[string]int
}

// LanguageNames returns the language keys in sorted order.
func (c *Counts) LanguageNames() []string {
	names := make([]string, 0, len(c.Languages))
	for name := range c.Languages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count scans root and counts entries and documents. An unreadable root is
// an error. Entry files that cannot be read or are not YAML lists contribute
// nothing and are logged at warn level. A nil logger discards output.
func Count(root string, logger *slog.Logger) (*Counts, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if err := registry.CheckRoot(root); err != nil {
		return nil, err
	}

	c := &Counts{
		Files:     make(map[string]int, len(CountedDirs)),
		Languages: make(map[string]int),
	}

	entryPaths, err := registry.FindFiles(root, registry.ErrorsDir, registry.EntryExt)
	if err != nil {
		return nil, err
	}
	c.EntryFiles = len(entryPaths)
	for _, rel := range entryPaths {
		content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			logger.Warn("skipping unreadable entry list", "path", rel, "error", err)
			continue
		}
		list := registry.ParseEntryList(rel, content)
		if list.Status != registry.ParseOK {
			logger.Warn("skipping entry list", "path", rel, "status", list.Status, "detail", list.Detail)
			continue
		}
		c.TotalEntries += len(list.Items)
		c.Languages[languageOf(rel)] += len(list.Items)
	}

	for _, dir := range CountedDirs {
		paths, err := registry.FindFiles(root, dir, registry.DocExt)
		if err != nil {
			return nil, err
		}
		c.Files[dir] = len(paths)
	}

	logger.Debug("counted registry content",
		"root", root,
		"entries", c.TotalEntries,
		"entry_files", c.EntryFiles)
	return c, nil
}

// languageOf returns the first directory below errors/ in a slash path.
func languageOf(rel string) string {
	rest := strings.TrimPrefix(rel, registry.ErrorsDir+"/")
	dir, _, found := strings.Cut(rest, "/")
	if !found || dir == "" {
		return rootLanguage
	}
	return dir
}
