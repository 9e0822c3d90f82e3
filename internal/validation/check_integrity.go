package validation

import (
	"fmt"
	"strings"

	"github.com/agentchanti/kbreg/internal/registry"
)

// IDIndex maps every identifier to the locations declaring it, in discovery order.
type IDIndex struct {
	order     []string
	locations map[string][]string
}

func newIDIndex() *IDIndex {
	return &IDIndex{locations: make(map[string][]string)}
}

func (ix *IDIndex) add(id, location string) {
	if _, ok := ix.locations[id]; !ok {
		ix.order = append(ix.order, id)
	}
	ix.locations[id] = append(ix.locations[id], location)
}

// Has reports whether id is declared anywhere in the registry.
func (ix *IDIndex) Has(id string) bool {
	_, ok := ix.locations[id]
	return ok
}

// Len returns the number of distinct identifiers.
func (ix *IDIndex) Len() int {
	return len(ix.order)
}

// Locations returns the locations declaring id.
func (ix *IDIndex) Locations(id string) []string {
	return ix.locations[id]
}

// BuildIDIndex indexes documents first, then entries. Blank identifiers are skipped.
func BuildIDIndex(docs, entries []*registry.Record) *IDIndex {
	ix := newIDIndex()
	for _, group := range [][]*registry.Record{docs, entries} {
		for _, rec := range group {
			if id := rec.ID(); id != "" {
				ix.add(id, rec.Location())
			}
		}
	}
	return ix
}

// ValidateUniqueIDs reports every identifier declared more than once across
// the whole registry, regardless of record kind.
func ValidateUniqueIDs(docs, entries []*registry.Record) (*IDIndex, []Finding) {
	ix := BuildIDIndex(docs, entries)

	var findings []Finding
	for _, id := range ix.order {
		locs := ix.locations[id]
		if len(locs) < 2 {
			continue
		}
		findings = append(findings, fail(CheckDuplicateID,
			fmt.Sprintf("✗ FAIL [%s] ID %q found in:\n      %s", CheckDuplicateID, id, strings.Join(locs, "\n      "))))
	}

	if len(findings) == 0 {
		findings = append(findings, pass(CheckDuplicateID,
			fmt.Sprintf("✓ PASS [%s] All %d IDs are unique", CheckDuplicateID, ix.Len())))
	}
	return ix, findings
}

// ValidateRelatedErrors checks that every related_errors reference names a
// known identifier.
func ValidateRelatedErrors(entries []*registry.Record, ix *IDIndex) []Finding {
	var findings []Finding
	for _, entry := range entries {
		for _, ref := range entry.List("related_errors") {
			if ix.Has(ref) {
				continue
			}
			findings = append(findings, fail(CheckRelatedErrors,
				fmt.Sprintf("✗ %s: Entry %q references unknown ID %q", entry.Path, entry.DisplayID(), ref)))
		}
	}

	if len(findings) == 0 {
		return []Finding{pass(CheckRelatedErrors,
			fmt.Sprintf("✓ PASS [%s] All related_errors references point to existing IDs", CheckRelatedErrors))}
	}
	return append(findings, fail(CheckRelatedErrors,
		fmt.Sprintf("✗ FAIL [%s] %d broken related_errors reference(s)", CheckRelatedErrors, len(findings))))
}
