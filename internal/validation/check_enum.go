package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agentchanti/kbreg/internal/registry"
	"github.com/go-playground/validator/v10"
)

// validate is shared; validator caches parsed tags per instance.
var validate = validator.New()

// IsOneOf reports whether value is exactly one of allowed.
func IsOneOf(value string, allowed []string) bool {
	return validate.Var(value, "oneof="+strings.Join(allowed, " ")) == nil
}

// IsSemver reports whether value has the X.Y.Z form.
func IsSemver(value string) bool {
	return semverRe.MatchString(value)
}

// sortedList renders an allowed set the way failure messages show it.
func sortedList(values []string) string {
	sorted := append([]string(nil), values...)
	sort.Strings(sorted)
	return strings.Join(sorted, ", ")
}

// enumCheck describes one field-level check over a set of records.
type enumCheck struct {
	name   string
	noun   string // used in the aggregate lines, e.g. "severity"
	value  func(*registry.Record) string
	valid  func(string) bool
	report func(rec *registry.Record, value string) string
}

func (c enumCheck) run(records []*registry.Record) []Finding {
	var findings []Finding
	for _, rec := range records {
		v := c.value(rec)
		if c.valid(v) {
			continue
		}
		findings = append(findings, fail(c.name, c.report(rec, v)))
	}

	if len(findings) == 0 {
		return []Finding{pass(c.name, fmt.Sprintf("✓ PASS [%s] %s", c.name, c.passLine()))}
	}
	return append(findings, fail(c.name,
		fmt.Sprintf("✗ FAIL [%s] %d invalid %s value(s)", c.name, len(findings), c.noun)))
}

func (c enumCheck) passLine() string {
	if c.name == CheckSemver {
		return "All version fields follow semver format"
	}
	return fmt.Sprintf("All %s values are valid", c.noun)
}

// ValidateSeverity checks the severity of every error entry.
func ValidateSeverity(entries []*registry.Record) []Finding {
	return enumCheck{
		name:  CheckSeverity,
		noun:  "severity",
		value: func(r *registry.Record) string { return r.Value("severity") },
		valid: func(v string) bool { return IsOneOf(v, Severities) },
		report: func(r *registry.Record, v string) string {
			return fmt.Sprintf("✗ %s: Entry %q has invalid severity %q (must be: %s)",
				r.Path, r.DisplayID(), v, sortedList(Severities))
		},
	}.run(entries)
}

// ValidateCategory checks the category of every document.
func ValidateCategory(docs []*registry.Record) []Finding {
	return enumCheck{
		name:  CheckCategory,
		noun:  "category",
		value: func(r *registry.Record) string { return r.Text("category") },
		valid: func(v string) bool { return IsOneOf(v, Categories) },
		report: func(r *registry.Record, v string) string {
			return fmt.Sprintf("✗ %s: Invalid category %q (must be: %s)", r.Path, v, sortedList(Categories))
		},
	}.run(docs)
}

// ValidateLanguage checks the language of every document.
func ValidateLanguage(docs []*registry.Record) []Finding {
	return enumCheck{
		name:  CheckLanguage,
		noun:  "language",
		value: func(r *registry.Record) string { return r.Text("language") },
		valid: func(v string) bool { return IsOneOf(v, Languages) },
		report: func(r *registry.Record, v string) string {
			return fmt.Sprintf("✗ %s: Invalid language %q (must be: %s)", r.Path, v, sortedList(Languages))
		},
	}.run(docs)
}

// ValidateSemver checks that every document version is X.Y.Z.
func ValidateSemver(docs []*registry.Record) []Finding {
	return enumCheck{
		name:  CheckSemver,
		noun:  "version",
		value: func(r *registry.Record) string { return r.Text("version") },
		valid: IsSemver,
		report: func(r *registry.Record, v string) string {
			return fmt.Sprintf("✗ %s: Invalid version %q (must be X.Y.Z semver format)", r.Path, v)
		},
	}.run(docs)
}
