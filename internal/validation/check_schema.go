package validation

import (
	"fmt"
	"strings"

	"github.com/agentchanti/kbreg/internal/registry"
)

// ValidateFrontmatter checks that every document parsed and carries all
// required frontmatter fields. It returns the records that passed; only those
// take part in later checks.
func ValidateFrontmatter(docs []registry.DocFile) ([]*registry.Record, []Finding) {
	required := DocSchema.RequiredFields()

	var valid []*registry.Record
	var findings []Finding
	failCount := 0

	for _, doc := range docs {
		if doc.Status != registry.ParseOK {
			findings = append(findings, fail(CheckFrontmatter,
				fmt.Sprintf("✗ %s: Missing or malformed frontmatter%s", doc.Path, detailSuffix(doc.Detail))))
			failCount++
			continue
		}

		if missing := doc.Record.Missing(required); len(missing) > 0 {
			findings = append(findings, fail(CheckFrontmatter,
				fmt.Sprintf("✗ %s: Missing fields: %s", doc.Path, strings.Join(missing, ", "))))
			failCount++
			continue
		}
		valid = append(valid, doc.Record)
	}

	if failCount == 0 {
		findings = append(findings, pass(CheckFrontmatter,
			fmt.Sprintf("✓ PASS [%s] All %d .md files have valid frontmatter", CheckFrontmatter, len(docs))))
	} else {
		findings = append(findings, fail(CheckFrontmatter,
			fmt.Sprintf("✗ FAIL [%s] %d/%d .md files have frontmatter issues", CheckFrontmatter, failCount, len(docs))))
	}
	return valid, findings
}

// ValidateEntrySchema checks every entry list. A file with any bad entry is
// reported once, listing each bad entry, and none of its entries are returned.
func ValidateEntrySchema(files []registry.EntryFile) ([]*registry.Record, []Finding) {
	required := EntrySchema.RequiredFields()

	var valid []*registry.Record
	var findings []Finding
	failCount := 0

	for _, file := range files {
		if file.Status != registry.ParseOK {
			findings = append(findings, fail(CheckYMLSchema,
				fmt.Sprintf("✗ %s: Not a valid YAML list or parse error%s", file.Path, detailSuffix(file.Detail))))
			failCount++
			continue
		}

		var problems []string
		for _, item := range file.Items {
			if item.Record == nil {
				problems = append(problems, fmt.Sprintf("    Entry %d: Not a dict", item.Index))
				continue
			}
			if missing := item.Record.Missing(required); len(missing) > 0 {
				problems = append(problems, fmt.Sprintf("    Entry %d (id=%s): Missing fields: %s",
					item.Index, item.Record.DisplayID(), strings.Join(missing, ", ")))
			}
		}

		if len(problems) > 0 {
			findings = append(findings, fail(CheckYMLSchema,
				fmt.Sprintf("✗ %s:\n%s", file.Path, strings.Join(problems, "\n"))))
			failCount++
			continue
		}
		valid = append(valid, file.Records()...)
	}

	if failCount == 0 {
		findings = append(findings, pass(CheckYMLSchema,
			fmt.Sprintf("✓ PASS [%s] All %d .yml files have valid entry schemas (%d total entries)",
				CheckYMLSchema, len(files), len(valid))))
	} else {
		findings = append(findings, fail(CheckYMLSchema,
			fmt.Sprintf("✗ FAIL [%s] %d/%d .yml files have schema issues", CheckYMLSchema, failCount, len(files))))
	}
	return valid, findings
}

// detailSuffix formats a decoder message for appending to a failure line.
func detailSuffix(detail string) string {
	if detail == "" {
		return ""
	}
	return fmt.Sprintf(" (%s)", strings.ReplaceAll(detail, "\n", " "))
}
