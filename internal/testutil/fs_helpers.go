// Package testutil provides test utilities and helpers for kbreg tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

// CreateTempRegistry creates an empty registry root with the standard content
// directories. Cleanup is handled by t.TempDir.
func CreateTempRegistry(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	for _, dir := range []string{"patterns", "adrs", "docs", "behavioral", "errors"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
	}
	return root
}

// docConfig holds configuration for WriteDoc
type docConfig struct {
	fields map[string]string
	omit   map[string]bool
	body   string
}

// DocOption is a functional option for WriteDoc
type DocOption func(*docConfig)

// WithDocField sets (or overrides) a frontmatter field. The value is written verbatim.
func WithDocField(key, value string) DocOption {
	return func(c *docConfig) {
		c.fields[key] = value
	}
}

// WithoutDocField drops a frontmatter field.
func WithoutDocField(key string) DocOption {
	return func(c *docConfig) {
		c.omit[key] = true
	}
}

// WithBody sets the markdown body after the frontmatter.
func WithBody(body string) DocOption {
	return func(c *docConfig) {
		c.body = body
	}
}

// docFieldOrder keeps generated frontmatter stable.
var docFieldOrder = []string{"id", "title", "category", "language", "version", "created_at"}

// WriteDoc writes a markdown document with a valid frontmatter header to
// root/rel. Returns the file path.
func WriteDoc(t *testing.T, root, rel, id string, opts ...DocOption) string {
	t.Helper()

	config := &docConfig{
		fields: map[string]string{
			"id":         id,
			"title":      "Test document " + id,
			"category":   "pattern",
			"language":   "all",
			"version":    "1.0.0",
			"created_at": "2025-01-01",
		},
		omit: map[string]bool{},
		body: "## Overview\n\nTest content.\n",
	}
	for _, opt := range opts {
		opt(config)
	}

	var sb strings.Builder
	sb.WriteString("---\n")
	for _, key := range orderedKeys(config.fields, docFieldOrder) {
		if config.omit[key] {
			continue
		}
		fmt.Fprintf(&sb, "%s: %s\n", key, config.fields[key])
	}
	sb.WriteString("---\n\n")
	sb.WriteString(config.body)

	path := filepath.Join(root, filepath.FromSlash(rel))
	WriteFile(t, path, sb.String())
	return path
}

// Entry describes one error entry for WriteEntries. Fields named in Omit are
// left out of the written mapping.
type Entry struct {
	ID            string
	ErrorType     string
	Severity      string
	Pattern       string
	FixTemplate   string
	Tags          []string
	RelatedErrors []string
	Omit          []string
}

// ValidEntry returns an entry with every required field populated.
func ValidEntry(id string) Entry {
	return Entry{
		ID:          id,
		ErrorType:   "TypeError",
		Severity:    "warning",
		Pattern:     "cannot read property",
		FixTemplate: "Check for nil before access",
		Tags:        []string{"runtime"},
	}
}

// WriteEntries writes an error entry list to root/rel. Returns the file path.
func WriteEntries(t *testing.T, root, rel string, entries ...Entry) string {
	t.Helper()

	var sb strings.Builder
	for _, e := range entries {
		omit := make(map[string]bool, len(e.Omit))
		for _, f := range e.Omit {
			omit[f] = true
		}
		lines := []struct {
			key   string
			value string
		}{
			{"id", quote(e.ID)},
			{"error_type", quote(e.ErrorType)},
			{"severity", quote(e.Severity)},
			{"pattern", quote(e.Pattern)},
			{"fix_template", quote(e.FixTemplate)},
			{"tags", formatList(e.Tags)},
		}
		if e.RelatedErrors != nil {
			lines = append(lines, struct {
				key   string
				value string
			}{"related_errors", formatList(e.RelatedErrors)})
		}

		first := true
		for _, l := range lines {
			if omit[l.key] {
				continue
			}
			prefix := "  "
			if first {
				prefix = "- "
				first = false
			}
			fmt.Fprintf(&sb, "%s%s: %s\n", prefix, l.key, l.value)
		}
		if first {
			sb.WriteString("- {}\n")
		}
	}
	if len(entries) == 0 {
		sb.WriteString("[]\n")
	}

	path := filepath.Join(root, filepath.FromSlash(rel))
	WriteFile(t, path, sb.String())
	return path
}

// WriteManifest writes a manifest.json with the given version to root.
func WriteManifest(t *testing.T, root, version string) string {
	t.Helper()

	content := fmt.Sprintf(`{
  "name": "kb-registry",
  "version": %q,
  "categories": {
    "errors": {
      "total_entries": 0
    }
  }
}
`, version)
	path := filepath.Join(root, "manifest.json")
	WriteFile(t, path, content)
	return path
}

// quote formats a string as a double-quoted YAML scalar.
func quote(s string) string {
	return fmt.Sprintf("%q", s)
}

// formatList formats a string slice as a YAML flow sequence
func formatList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = quote(item)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func orderedKeys(fields map[string]string, order []string) []string {
	keys := make([]string, 0, len(fields))
	known := make(map[string]bool, len(order))
	for _, k := range order {
		known[k] = true
		if _, ok := fields[k]; ok {
			keys = append(keys, k)
		}
	}
	var extra []string
	for k := range fields {
		if !known[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	return append(keys, extra...)
}

// WriteFile writes content to a file, creating parent directories if needed.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
}

// ReadFile reads file content, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}

	return string(content)
}
