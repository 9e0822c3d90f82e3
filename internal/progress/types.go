// Package progress provides terminal progress indicators for long-running
// registry scans: step counters, a stderr spinner and capability detection.
package progress

import "errors"

// StepStatus represents the execution state of a step
type StepStatus int

const (
	// StepPending indicates the step has not started yet
	StepPending StepStatus = iota
	// StepInProgress indicates the step is currently running
	StepInProgress
	// StepCompleted indicates the step finished successfully
	StepCompleted
	// StepFailed indicates the step failed with an error
	StepFailed
)

// String returns the string representation of StepStatus
func (s StepStatus) String() string {
	switch s {
	case StepPending:
		return "pending"
	case StepInProgress:
		return "in_progress"
	case StepCompleted:
		return "completed"
	case StepFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// StepInfo represents metadata about one step of a command for progress display
type StepInfo struct {
	// Name is the human-readable step name (e.g., "scanning registry")
	Name string
	// Number is the current step number (1-based index)
	Number int
	// TotalSteps is the total number of steps in the command
	TotalSteps int
	// Status is the current execution status
	Status StepStatus
}

// Validate checks that all StepInfo fields meet validation requirements
func (s StepInfo) Validate() error {
	if s.Name == "" {
		return errors.New("step name cannot be empty")
	}
	if s.Number <= 0 {
		return errors.New("step number must be > 0")
	}
	if s.TotalSteps <= 0 {
		return errors.New("total steps must be > 0")
	}
	if s.Number > s.TotalSteps {
		return errors.New("step number cannot exceed total steps")
	}
	return nil
}

// TerminalCapabilities encapsulates detected terminal features
type TerminalCapabilities struct {
	// IsTTY indicates whether stderr is a terminal (vs pipe/redirect)
	IsTTY bool
	// SupportsColor indicates whether terminal supports ANSI color codes
	SupportsColor bool
	// SupportsUnicode indicates whether terminal supports Unicode characters
	SupportsUnicode bool
	// Width is the terminal width in columns (0 if unknown/pipe)
	Width int
}

// ProgressSymbols defines the character set for visual indicators
type ProgressSymbols struct {
	// Checkmark is the success indicator ("✓" or "[OK]")
	Checkmark string
	// Failure is the failure indicator ("✗" or "[FAIL]")
	Failure string
	// SpinnerSet is the index into spinner.CharSets
	SpinnerSet int
}
