package cli

import (
	"github.com/agentchanti/kbreg/internal/cli/shared"
)

// Exit codes for the kbreg CLI (re-exported from shared)
// These codes support programmatic composition and CI/CD integration
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = shared.ExitSuccess

	// ExitValidationFailed indicates at least one check failed, or a
	// command error that is not about its arguments
	ExitValidationFailed = shared.ExitValidationFailed

	// ExitInvalidArguments indicates invalid command arguments or configuration
	ExitInvalidArguments = shared.ExitInvalidArguments
)

// ExitCode returns the exit code from an error (re-exported from shared).
func ExitCode(err error) int {
	return shared.ExitCode(err)
}

// ErrorMessage returns the text to print for err (re-exported from shared).
func ErrorMessage(err error) string {
	return shared.ErrorMessage(err)
}
