package validation

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// ReportTitle is printed in the report banner.
const ReportTitle = "KB Registry — Validation"

const ruleWidth = 60

// Renderer writes a Report as the human-readable summary. With Color unset
// the output is plain text and byte-identical for identical reports.
type Renderer struct {
	Color bool
}

// Render writes the full report to w.
func (r Renderer) Render(w io.Writer, rep *Report) error {
	heavy := strings.Repeat("=", ruleWidth)
	light := strings.Repeat("─", ruleWidth)

	var sb strings.Builder
	fmt.Fprintln(&sb, heavy)
	fmt.Fprintln(&sb, ReportTitle)
	fmt.Fprintln(&sb, heavy)
	fmt.Fprintln(&sb)
	fmt.Fprintf(&sb, "Found %d .md files and %d .yml files\n", rep.DocFiles, rep.EntryFiles)
	fmt.Fprintln(&sb)

	fmt.Fprintln(&sb)
	fmt.Fprintln(&sb, light)
	fmt.Fprintln(&sb, "RESULTS")
	fmt.Fprintln(&sb, light)

	passes := rep.Passes()
	for _, f := range passes {
		fmt.Fprintf(&sb, "  %s\n", f.Message)
	}

	failures := rep.Failures()
	if len(failures) > 0 {
		fmt.Fprintln(&sb)
		for _, f := range failures {
			fmt.Fprintf(&sb, "  %s\n", f.Message)
		}
	}

	fmt.Fprintln(&sb)
	fmt.Fprintln(&sb, light)
	if len(failures) == 0 {
		fmt.Fprintln(&sb, r.paint(color.FgGreen, fmt.Sprintf("✓ ALL CHECKS PASSED (%d checks)", len(passes))))
	} else {
		fmt.Fprintln(&sb, r.paint(color.FgRed, fmt.Sprintf("✗ %d CHECK(S) FAILED", len(failures))))
	}
	fmt.Fprintln(&sb, light)

	_, err := io.WriteString(w, sb.String())
	return err
}

// String renders the report without color.
func (rep *Report) String() string {
	var sb strings.Builder
	_ = Renderer{}.Render(&sb, rep)
	return sb.String()
}

func (r Renderer) paint(attr color.Attribute, s string) string {
	c := color.New(attr, color.Bold)
	if r.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}
