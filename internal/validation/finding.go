// Package validation checks a loaded KB registry for schema conformance,
// identifier uniqueness, cross-reference integrity and enumerated-value
// correctness. Each check is a pure function returning its own findings;
// the Report concatenates them in pipeline order.
package validation

// Check names, in the order the pipeline runs them.
const (
	CheckFrontmatter   = "frontmatter"
	CheckYMLSchema     = "yml-schema"
	CheckDuplicateID   = "duplicate-id"
	CheckRelatedErrors = "related-errors"
	CheckSeverity      = "severity"
	CheckCategory      = "category"
	CheckLanguage      = "language"
	CheckSemver        = "semver"
)

// Finding is one pass or failure line produced by a check.
type Finding struct {
	Check   string // Check name (e.g., "duplicate-id")
	Message string // Report line without the leading indent; may span lines
	Passed  bool
}

func pass(check, msg string) Finding {
	return Finding{Check: check, Message: msg, Passed: true}
}

func fail(check, msg string) Finding {
	return Finding{Check: check, Message: msg}
}

// Report is the complete outcome of one validation run.
type Report struct {
	DocFiles   int // Number of .md files scanned
	EntryFiles int // Number of .yml files scanned
	Findings   []Finding
}

// Add appends the findings of one check.
func (r *Report) Add(findings ...Finding) {
	r.Findings = append(r.Findings, findings...)
}

// Passes returns the pass findings in the order they were added.
func (r *Report) Passes() []Finding {
	return r.filter(true)
}

// Failures returns the failure findings in the order they were added.
func (r *Report) Failures() []Finding {
	return r.filter(false)
}

// HasErrors returns true if any check failed.
func (r *Report) HasErrors() bool {
	for _, f := range r.Findings {
		if !f.Passed {
			return true
		}
	}
	return false
}

// ExitCode returns 0 when every check passed and 1 otherwise.
func (r *Report) ExitCode() int {
	if r.HasErrors() {
		return 1
	}
	return 0
}

// FailuresFor returns the failure findings of a single check.
func (r *Report) FailuresFor(check string) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if !f.Passed && f.Check == check {
			out = append(out, f)
		}
	}
	return out
}

func (r *Report) filter(passed bool) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Passed == passed {
			out = append(out, f)
		}
	}
	return out
}
