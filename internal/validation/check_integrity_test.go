// Package validation_test tests identifier uniqueness and related_errors resolution.
// Related: internal/validation/check_integrity.go
// Tags: validation, duplicate-id, related-errors, integrity
package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUniqueIDs_AllUnique(t *testing.T) {
	t.Parallel()

	docs := records(t,
		validDoc("patterns/a.md", "P-1"),
		validDoc("adrs/b.md", "ADR-1"),
	)
	entries := entryRecords(t, entryFile("errors/go/a.yml", entryLine("GO-1")))

	ix, findings := ValidateUniqueIDs(docs, entries)
	assert.Equal(t, []string{"✓ PASS [duplicate-id] All 3 IDs are unique"}, messages(findings))
	assert.Equal(t, 3, ix.Len())
	assert.True(t, ix.Has("GO-1"))
	assert.True(t, ix.Has("ADR-1"))
	assert.False(t, ix.Has("GO-2"))
}

func TestValidateUniqueIDs_DuplicateDocs(t *testing.T) {
	t.Parallel()

	docs := records(t,
		validDoc("docs/one.md", "DOC-100"),
		validDoc("docs/two.md", "DOC-100"),
		validDoc("docs/three.md", "DOC-101"),
	)

	ix, findings := ValidateUniqueIDs(docs, nil)
	require.Len(t, findings, 1)
	assert.False(t, findings[0].Passed)
	assert.Equal(t, CheckDuplicateID, findings[0].Check)
	assert.Equal(t,
		"✗ FAIL [duplicate-id] ID \"DOC-100\" found in:\n"+
			"      docs/one.md (frontmatter)\n"+
			"      docs/two.md (frontmatter)",
		findings[0].Message)
	assert.Equal(t, []string{"docs/one.md (frontmatter)", "docs/two.md (frontmatter)"}, ix.Locations("DOC-100"))
	assert.Equal(t, 2, ix.Len())
}

func TestValidateUniqueIDs_DuplicateAcrossKinds(t *testing.T) {
	t.Parallel()

	docs := records(t, validDoc("behavioral/x.md", "X"))
	entries := entryRecords(t,
		entryFile("errors/go/a.yml", entryLine("X"), entryLine("Y")),
		entryFile("errors/rust/b.yml", entryLine("Y")),
	)

	_, findings := ValidateUniqueIDs(docs, entries)
	assert.Equal(t, []string{
		"✗ FAIL [duplicate-id] ID \"X\" found in:\n      behavioral/x.md (frontmatter)\n      errors/go/a.yml",
		"✗ FAIL [duplicate-id] ID \"Y\" found in:\n      errors/go/a.yml\n      errors/rust/b.yml",
	}, messages(findings))
}

func TestValidateUniqueIDs_TrimsAndSkipsBlank(t *testing.T) {
	t.Parallel()

	docs := records(t,
		validDoc("patterns/a.md", `"  P-1  "`),
		validDoc("patterns/b.md", "P-1"),
		validDoc("patterns/c.md", `""`),
		validDoc("patterns/d.md", `""`),
	)

	ix, findings := ValidateUniqueIDs(docs, nil)
	require.Len(t, findings, 1)
	assert.Contains(t, findings[0].Message, `ID "P-1" found in:`)
	assert.Equal(t, 1, ix.Len())
}

func TestValidateRelatedErrors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		items    []string
		wantMsgs []string
	}{
		"no references": {
			items:    []string{entryLine("E1")},
			wantMsgs: []string{"✓ PASS [related-errors] All related_errors references point to existing IDs"},
		},
		"null references": {
			items:    []string{entryLine("E1", "related_errors: null")},
			wantMsgs: []string{"✓ PASS [related-errors] All related_errors references point to existing IDs"},
		},
		"resolved references": {
			items:    []string{entryLine("E1", "related_errors: [E2, DOC-1]"), entryLine("E2", "related_errors: [E1]")},
			wantMsgs: []string{"✓ PASS [related-errors] All related_errors references point to existing IDs"},
		},
		"broken reference": {
			items: []string{entryLine("E1", "related_errors: [E2]")},
			wantMsgs: []string{
				"✗ errors/go/a.yml: Entry \"E1\" references unknown ID \"E2\"",
				"✗ FAIL [related-errors] 1 broken related_errors reference(s)",
			},
		},
		"non-scalar references": {
			items: []string{entryLine("E1", "related_errors: [DOC-1, {id: E9}, [E1]]")},
			wantMsgs: []string{
				"✗ errors/go/a.yml: Entry \"E1\" references unknown ID \"{id: E9}\"",
				"✗ errors/go/a.yml: Entry \"E1\" references unknown ID \"[E1]\"",
				"✗ FAIL [related-errors] 2 broken related_errors reference(s)",
			},
		},
		"several broken references": {
			items: []string{
				entryLine("E1", "related_errors: [E9, E2]"),
				entryLine("E2", "related_errors:\n    - E8"),
			},
			wantMsgs: []string{
				"✗ errors/go/a.yml: Entry \"E1\" references unknown ID \"E9\"",
				"✗ errors/go/a.yml: Entry \"E2\" references unknown ID \"E8\"",
				"✗ FAIL [related-errors] 2 broken related_errors reference(s)",
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			docs := records(t, validDoc("docs/d.md", "DOC-1"))
			entries := entryRecords(t, entryFile("errors/go/a.yml", tc.items...))
			ix := BuildIDIndex(docs, entries)

			assert.Equal(t, tc.wantMsgs, messages(ValidateRelatedErrors(entries, ix)))
		})
	}
}
