// Package testutil_test tests registry fixture builders.
// Related: internal/testutil/fs_helpers.go
// Tags: testutil, helpers, fixtures, filesystem

package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTempRegistry(t *testing.T) {
	t.Parallel()

	root := CreateTempRegistry(t)
	for _, dir := range []string{"patterns", "adrs", "docs", "behavioral", "errors"} {
		info, err := os.Stat(filepath.Join(root, dir))
		require.NoError(t, err)
		assert.True(t, info.IsDir(), dir)
	}
}

func TestWriteDoc(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		opts        []DocOption
		contains    []string
		notContains []string
	}{
		"defaults": {
			contains: []string{"---\nid: DOC-1\n", "version: 1.0.0\n", "## Overview"},
		},
		"override field": {
			opts:     []DocOption{WithDocField("language", "go")},
			contains: []string{"language: go\n"},
		},
		"omit field": {
			opts:        []DocOption{WithoutDocField("version")},
			notContains: []string{"version:"},
		},
		"extra field sorted after known": {
			opts:     []DocOption{WithDocField("severity", "info")},
			contains: []string{"created_at: 2025-01-01\nseverity: info\n---"},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			root := t.TempDir()
			path := WriteDoc(t, root, "patterns/doc.md", "DOC-1", tc.opts...)
			content := ReadFile(t, path)
			for _, want := range tc.contains {
				assert.Contains(t, content, want)
			}
			for _, unwanted := range tc.notContains {
				assert.NotContains(t, content, unwanted)
			}
		})
	}
}

func TestWriteEntries(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	e2 := ValidEntry("E2")
	e2.RelatedErrors = []string{"E1"}
	e2.Omit = []string{"tags"}
	path := WriteEntries(t, root, "errors/go/runtime.yml", ValidEntry("E1"), e2)

	content := ReadFile(t, path)
	assert.True(t, strings.HasPrefix(content, `- id: "E1"`))
	assert.Contains(t, content, `- id: "E2"`)
	assert.Contains(t, content, `  related_errors: ["E1"]`)
	assert.Equal(t, 1, strings.Count(content, "tags:"))
}

func TestWriteEntries_Empty(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	path := WriteEntries(t, root, "errors/go/empty.yml")
	assert.Equal(t, "[]\n", ReadFile(t, path))
}

func TestWriteManifest(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	path := WriteManifest(t, root, "2.3.4")
	assert.Contains(t, ReadFile(t, path), `"version": "2.3.4"`)
}
