// Package manifest reads and rewrites the registry manifest (manifest.json),
// counts registry content and computes semantic-version bumps.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultFile is the manifest file name at the registry root.
const DefaultFile = "manifest.json"

// DefaultVersion is assumed when the manifest has no version key.
const DefaultVersion = "1.0.0"

// Category holds the counters kept for one content category.
type Category struct {
	TotalEntries *int `koanf:"total_entries" validate:"omitempty,min=0"`
	TotalFiles   *int `koanf:"total_files" validate:"omitempty,min=0"`
}

// Fields is the typed view of the manifest keys kbreg reads.
type Fields struct {
	Name       string              `koanf:"name"`
	Version    string              `koanf:"version" validate:"required"`
	Categories map[string]Category `koanf:"categories" validate:"dive"`
}

// Manifest is a loaded manifest. Keys kbreg does not know about are kept and
// written back unchanged.
type Manifest struct {
	Path   string
	Fields Fields
	k      *koanf.Koanf
}

// numberParser is the koanf JSON parser with numbers decoded as json.Number,
// so integers of any size are written back exactly as read.
type numberParser struct{}

func (numberParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("invalid character after top-level value")
	}
	return out, nil
}

func (numberParser) Marshal(o map[string]interface{}) ([]byte, error) {
	return kjson.Parser().Marshal(o)
}

// Load reads the manifest at path.
func Load(path string) (*Manifest, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("manifest not found: %s", path)
		}
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), numberParser{}); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if !k.Exists("version") {
		if err := k.Set("version", DefaultVersion); err != nil {
			return nil, fmt.Errorf("setting default version: %w", err)
		}
	}

	m := &Manifest{Path: path, k: k}
	if err := m.refresh(); err != nil {
		return nil, err
	}
	return m, nil
}

// refresh re-derives Fields from the underlying key store and validates them.
func (m *Manifest) refresh() error {
	var f Fields
	if err := m.k.Unmarshal("", &f); err != nil {
		return fmt.Errorf("decoding manifest %s: %w", m.Path, err)
	}
	if err := validator.New().Struct(f); err != nil {
		return fmt.Errorf("invalid manifest %s: %w", m.Path, err)
	}
	m.Fields = f
	return nil
}

// Version returns the manifest version string.
func (m *Manifest) Version() string {
	return m.Fields.Version
}

// SetVersion replaces the manifest version.
func (m *Manifest) SetVersion(v string) error {
	if err := m.k.Set("version", v); err != nil {
		return fmt.Errorf("setting version: %w", err)
	}
	return m.refresh()
}

// ApplyCounts stores the content counts under categories.
func (m *Manifest) ApplyCounts(c *Counts) error {
	if err := m.k.Set("categories.errors.total_entries", c.TotalEntries); err != nil {
		return fmt.Errorf("setting error count: %w", err)
	}
	for _, dir := range CountedDirs {
		key := "categories." + dir + ".total_files"
		if err := m.k.Set(key, c.Files[dir]); err != nil {
			return fmt.Errorf("setting %s: %w", key, err)
		}
	}
	return m.refresh()
}

// Bytes renders the manifest as 2-space indented JSON with a trailing newline.
func (m *Manifest) Bytes() ([]byte, error) {
	raw, err := m.k.Marshal(numberParser{})
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, fmt.Errorf("formatting manifest: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Save writes the manifest back to its path.
func (m *Manifest) Save() error {
	content, err := m.Bytes()
	if err != nil {
		return err
	}
	return writeAtomically(m.Path, content)
}

// writeAtomically writes content to a file atomically using a temporary file and rename.
func writeAtomically(path string, content []byte) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".manifest-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		// Clean up temp file on error
		if tmpPath != "" {
			os.Remove(tmpPath)
		}
	}()
	if _, err := tmpFile.Write(content); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing to temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}
	tmpPath = "" // Prevent cleanup since rename succeeded
	return nil
}
