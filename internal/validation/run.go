package validation

import "github.com/agentchanti/kbreg/internal/registry"

// Run executes every check over a loaded registry:
// schema filter -> identifier integrity -> enumerated values.
// Records rejected by a schema check are invisible to the checks after it.
func Run(reg *registry.Registry) *Report {
	report := &Report{
		DocFiles:   len(reg.Docs),
		EntryFiles: len(reg.Entries),
	}

	docs, findings := ValidateFrontmatter(reg.Docs)
	report.Add(findings...)

	entries, findings := ValidateEntrySchema(reg.Entries)
	report.Add(findings...)

	ids, findings := ValidateUniqueIDs(docs, entries)
	report.Add(findings...)

	report.Add(ValidateRelatedErrors(entries, ids)...)
	report.Add(ValidateSeverity(entries)...)
	report.Add(ValidateCategory(docs)...)
	report.Add(ValidateLanguage(docs)...)
	report.Add(ValidateSemver(docs)...)

	return report
}
