// Package progress_test tests step display rendering, counters, checkmarks, and spinner lifecycle.
// Related: internal/progress/display.go
// Tags: progress, display, rendering, steps, spinner, tty
package progress_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/agentchanti/kbreg/internal/progress"
)

var (
	ttyCaps  = progress.TerminalCapabilities{IsTTY: true, SupportsUnicode: true, Width: 80}
	pipeCaps = progress.TerminalCapabilities{}
	scanStep = progress.StepInfo{Name: "scanning registry", Number: 1, TotalSteps: 2}
)

// TestDisplay_CompleteStep tests completion line rendering
func TestDisplay_CompleteStep(t *testing.T) {
	tests := map[string]struct {
		capabilities progress.TerminalCapabilities
		detail       string
		want         string
	}{
		"TTY with Unicode and detail": {
			capabilities: ttyCaps,
			detail:       "12 files",
			want:         "✓ [1/2] Scanning registry (12 files)\n",
		},
		"TTY ASCII without detail": {
			capabilities: progress.TerminalCapabilities{IsTTY: true},
			want:         "[OK] [1/2] Scanning registry\n",
		},
		"non-TTY is silent": {
			capabilities: pipeCaps,
			detail:       "12 files",
			want:         "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			d := progress.NewDisplay(tt.capabilities, &buf)

			if err := d.StartStep(scanStep); err != nil {
				t.Fatalf("StartStep() error = %v", err)
			}
			d.CompleteStep(scanStep, tt.detail)

			// The spinner only animates on a real terminal; strip anything it drew.
			got := buf.String()
			if idx := strings.LastIndex(got, "\r"); idx >= 0 {
				got = got[idx+1:]
			}
			if !strings.HasSuffix(got, tt.want) || (tt.want == "" && got != "") {
				t.Errorf("output = %q, want suffix %q", got, tt.want)
			}
		})
	}
}

// TestDisplay_FailStep tests failure line rendering
func TestDisplay_FailStep(t *testing.T) {
	var buf bytes.Buffer
	d := progress.NewDisplay(ttyCaps, &buf)

	d.FailStep(scanStep, errors.New("permission denied"))

	want := "✗ [1/2] Scanning registry failed: permission denied\n"
	if got := buf.String(); got != want {
		t.Errorf("FailStep() output = %q, want %q", got, want)
	}
}

// TestDisplay_ColorMarks tests that colored marks carry ANSI codes
func TestDisplay_ColorMarks(t *testing.T) {
	var buf bytes.Buffer
	caps := ttyCaps
	caps.SupportsColor = true
	d := progress.NewDisplay(caps, &buf)

	d.CompleteStep(scanStep, "")

	if !strings.Contains(buf.String(), "\x1b[32m") {
		t.Errorf("CompleteStep() output = %q, want green checkmark", buf.String())
	}
}

// TestDisplay_StartStepValidates tests that invalid steps are rejected
func TestDisplay_StartStepValidates(t *testing.T) {
	d := progress.NewDisplay(pipeCaps, &bytes.Buffer{})

	if err := d.StartStep(progress.StepInfo{Name: "x", Number: 2, TotalSteps: 1}); err == nil {
		t.Error("StartStep() should reject a step number above the total")
	}
}

// TestSpinnerLifecycle tests that stopping is safe in any state
func TestSpinnerLifecycle(t *testing.T) {
	d := progress.NewDisplay(ttyCaps, &bytes.Buffer{})

	d.StopSpinner()
	if err := d.StartStep(scanStep); err != nil {
		t.Fatalf("StartStep() error = %v", err)
	}
	d.StopSpinner()
	d.StopSpinner()

	if !d.Enabled() {
		t.Error("Enabled() = false for a TTY display")
	}
	if progress.NewDisplay(pipeCaps, nil).Enabled() {
		t.Error("Enabled() = true without a TTY")
	}
}
