// Package shared provides constants, flags and helpers used across CLI subpackages.
// This package has no dependencies on other CLI packages to avoid circular imports.
package shared

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// Command group IDs for organizing help output
const (
	GroupRegistry      = "registry"
	GroupConfiguration = "configuration"
	GroupInfo          = "info"
)

// Exit codes for CLI commands
const (
	ExitSuccess          = 0
	ExitValidationFailed = 1
	ExitInvalidArguments = 3
)

// exitError is a custom error type that carries an exit code. A nil err means
// the command already reported the problem and nothing more is printed.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return fmt.Sprintf("exit code %d", e.code)
}

func (e *exitError) Unwrap() error {
	return e.err
}

// NewExitError creates a new exit error with the given code.
func NewExitError(code int) error {
	return &exitError{code: code}
}

// WithExitCode attaches an exit code to err. A nil err yields nil.
func WithExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

// ExitCode returns the exit code from an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var e *exitError
	if errors.As(err, &e) {
		return e.code
	}
	return ExitValidationFailed
}

// ErrorMessage returns the text to print for err, or "" when the command has
// already reported it.
func ErrorMessage(err error) string {
	var e *exitError
	if errors.As(err, &e) && e.err == nil {
		return ""
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// ArgsWithCode wraps a cobra argument validator so its failures exit with
// ExitInvalidArguments.
func ArgsWithCode(args cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, a []string) error {
		return WithExitCode(ExitInvalidArguments, args(cmd, a))
	}
}
