package validation

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/agentchanti/kbreg/internal/registry"
	"github.com/stretchr/testify/require"
)

// docFields returns a complete, valid frontmatter field set.
func docFields(id string) map[string]string {
	return map[string]string{
		"id":         id,
		"title":      "Title " + id,
		"category":   "pattern",
		"language":   "go",
		"version":    "1.0.0",
		"created_at": "2025-01-01",
	}
}

// docFile parses a document built from fields. A field set to "-" is dropped.
func docFile(path string, fields map[string]string) registry.DocFile {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString("---\n")
	for _, k := range keys {
		if fields[k] == "-" {
			continue
		}
		fmt.Fprintf(&sb, "%s: %s\n", k, fields[k])
	}
	sb.WriteString("---\n\n## Body\n")
	return registry.ParseDoc(registry.KindPattern, path, []byte(sb.String()))
}

// validDoc parses a valid document, optionally overriding fields.
func validDoc(path, id string, overrides ...string) registry.DocFile {
	fields := docFields(id)
	for i := 0; i+1 < len(overrides); i += 2 {
		fields[overrides[i]] = overrides[i+1]
	}
	return docFile(path, fields)
}

// entryLine renders a complete error entry as a YAML list item.
func entryLine(id string, extra ...string) string {
	fields := []string{
		"- id: " + id,
		"  error_type: ValueError",
		"  severity: warning",
		"  pattern: 'invalid literal'",
		"  fix_template: 'Validate input first'",
		"  tags: [parsing]",
	}
	for _, e := range extra {
		fields = append(fields, "  "+e)
	}
	return strings.Join(fields, "\n") + "\n"
}

func entryFile(path string, items ...string) registry.EntryFile {
	return registry.ParseEntryList(path, []byte(strings.Join(items, "")))
}

func records(t *testing.T, docs ...registry.DocFile) []*registry.Record {
	t.Helper()
	out := make([]*registry.Record, 0, len(docs))
	for _, d := range docs {
		require.Equal(t, registry.ParseOK, d.Status, d.Detail)
		out = append(out, d.Record)
	}
	return out
}

func entryRecords(t *testing.T, files ...registry.EntryFile) []*registry.Record {
	t.Helper()
	var out []*registry.Record
	for _, f := range files {
		require.Equal(t, registry.ParseOK, f.Status, f.Detail)
		out = append(out, f.Records()...)
	}
	return out
}

func messages(findings []Finding) []string {
	out := make([]string, len(findings))
	for i, f := range findings {
		out[i] = f.Message
	}
	return out
}

func failuresOf(findings []Finding) []Finding {
	var out []Finding
	for _, f := range findings {
		if !f.Passed {
			out = append(out, f)
		}
	}
	return out
}
