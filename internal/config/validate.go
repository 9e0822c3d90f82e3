package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ValidationError represents a configuration validation error with context
type ValidationError struct {
	FilePath string
	Line     int
	Column   int
	Message  string
	Field    string
}

func (e *ValidationError) Error() string {
	source := e.FilePath
	if source == "" {
		source = "config"
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", source, e.Line, e.Column, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: field '%s': %s", source, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", source, e.Message)
}

// ValidateSyntax checks that data is well-formed for the format implied by
// filePath's extension. Returns nil if valid, or a ValidationError with
// line/column information when the format reports one.
func ValidateSyntax(data []byte, filePath string) error {
	// Empty data is valid - will use defaults
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}

	format, err := formatOf(filePath)
	if err != nil {
		return err
	}

	switch format {
	case formatYAML:
		return validateYAMLSyntax(data, filePath)
	case formatTOML:
		var v map[string]interface{}
		if err := toml.Unmarshal(data, &v); err != nil {
			var perr toml.ParseError
			if errors.As(err, &perr) {
				return &ValidationError{
					FilePath: filePath,
					Line:     perr.Position.Line,
					Column:   1,
					Message:  perr.Message,
				}
			}
			return &ValidationError{FilePath: filePath, Message: err.Error()}
		}
	case formatJSON:
		if !json.Valid(data) {
			var v interface{}
			err := json.Unmarshal(data, &v)
			return &ValidationError{FilePath: filePath, Message: err.Error()}
		}
	}
	return nil
}

func validateYAMLSyntax(data []byte, filePath string) error {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		var typeError *yaml.TypeError
		if errors.As(err, &typeError) {
			// yaml.TypeError contains multiple error strings
			return &ValidationError{
				FilePath: filePath,
				Message:  strings.Join(typeError.Errors, "; "),
			}
		}

		line, column := extractLineColumn(err.Error())
		return &ValidationError{
			FilePath: filePath,
			Line:     line,
			Column:   column,
			Message:  cleanYAMLError(err.Error()),
		}
	}
	return nil
}

// extractLineColumn attempts to extract line and column numbers from a YAML error message.
// Returns 0, 0 if unable to extract.
func extractLineColumn(errMsg string) (line, column int) {
	// yaml.v3 errors look like: "yaml: line 5: could not find expected ':'"
	var l, c int
	if n, _ := fmt.Sscanf(errMsg, "yaml: line %d: column %d:", &l, &c); n == 2 {
		return l, c
	}
	if n, _ := fmt.Sscanf(errMsg, "yaml: line %d:", &l); n == 1 {
		return l, 1
	}
	return 0, 0
}

// cleanYAMLError removes the "yaml: line X:" prefix from error messages for cleaner output.
func cleanYAMLError(errMsg string) string {
	if idx := strings.LastIndex(errMsg, ": "); idx > 0 {
		if strings.HasPrefix(errMsg, "yaml:") {
			return errMsg[idx+2:]
		}
	}
	return errMsg
}
