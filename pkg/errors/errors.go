// Package errors provides structured error handling for ecc.
// It defines sentinel errors, exit codes, and helpers for adding
// context, details, and suggestions to errors.
//
//nolint:revive // Package name intentionally shadows stdlib for domain-specific error handling
package errors

import (
	"errors"
	"fmt"
	"sort"
)

// Exit codes.
const (
	ExitSuccess  = 0 // Successful execution
	ExitGeneral  = 1 // General/unknown error
	ExitInput    = 2 // Invalid input
	ExitDecode   = 3 // Decoding failed (uncorrectable word)
	ExitNotFound = 4 // Resource not found
)

// EccError is the structured error type for ecc.
type EccError struct {
	Code       string            // Machine-readable error code
	Message    string            // Human-readable message
	Details    map[string]string // Additional context
	Suggestion string            // Actionable suggestion for user
	Cause      error             // Underlying error
	ExitCode   int               // Exit code for CLI
}

func (e *EccError) Error() string {
	msg := e.Message

	// Include details in error message (sorted for deterministic output)
	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			msg = fmt.Sprintf("%s (%s: %s)", msg, k, e.Details[k])
		}
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *EccError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is for EccError.
func (e *EccError) Is(target error) bool {
	var t *EccError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Sentinel errors.
var (
	ErrGeneral = &EccError{
		Code:     "GENERAL_ERROR",
		Message:  "an error occurred",
		ExitCode: ExitGeneral,
	}

	ErrInvalidInput = &EccError{
		Code:     "INVALID_INPUT",
		Message:  "invalid input",
		ExitCode: ExitInput,
	}

	ErrInvalidParameters = &EccError{
		Code:     "INVALID_PARAMETERS",
		Message:  "invalid code parameters",
		ExitCode: ExitInput,
	}

	ErrUncorrectable = &EccError{
		Code:     "UNCORRECTABLE",
		Message:  "received word is beyond the correction radius",
		ExitCode: ExitDecode,
	}

	// Config-specific errors.
	ErrConfigNotFound = &EccError{
		Code:     "CONFIG_NOT_FOUND",
		Message:  "configuration file not found",
		ExitCode: ExitNotFound,
	}

	ErrConfigInvalid = &EccError{
		Code:     "CONFIG_INVALID",
		Message:  "configuration file is invalid",
		ExitCode: ExitInput,
	}

	ErrUnknownConfigKey = &EccError{
		Code:     "UNKNOWN_CONFIG_KEY",
		Message:  "unknown config key",
		ExitCode: ExitInput,
	}

	ErrInvalidFormat = &EccError{
		Code:     "INVALID_FORMAT",
		Message:  "invalid format",
		ExitCode: ExitInput,
	}
)

// New creates a new EccError with the given code and message.
func New(code, message string) *EccError {
	return &EccError{
		Code:     code,
		Message:  message,
		ExitCode: ExitGeneral,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, args...)

	var ee *EccError
	if errors.As(err, &ee) {
		return &EccError{
			Code:       ee.Code,
			Message:    fmt.Sprintf("%s: %s", msg, ee.Message),
			Details:    ee.Details,
			Suggestion: ee.Suggestion,
			Cause:      err,
			ExitCode:   ee.ExitCode,
		}
	}

	return &EccError{
		Code:     "GENERAL_ERROR",
		Message:  msg,
		Cause:    err,
		ExitCode: ExitGeneral,
	}
}

// WithDetails adds details to an error.
func WithDetails(err error, details map[string]string) error {
	if err == nil {
		return nil
	}

	var ee *EccError
	if errors.As(err, &ee) {
		return &EccError{
			Code:       ee.Code,
			Message:    ee.Message,
			Details:    details,
			Suggestion: ee.Suggestion,
			Cause:      ee.Cause,
			ExitCode:   ee.ExitCode,
		}
	}

	return &EccError{
		Code:     "GENERAL_ERROR",
		Message:  err.Error(),
		Details:  details,
		Cause:    err,
		ExitCode: ExitGeneral,
	}
}

// WithSuggestion adds a suggestion to an error.
func WithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}

	var ee *EccError
	if errors.As(err, &ee) {
		return &EccError{
			Code:       ee.Code,
			Message:    ee.Message,
			Details:    ee.Details,
			Suggestion: suggestion,
			Cause:      ee.Cause,
			ExitCode:   ee.ExitCode,
		}
	}

	return &EccError{
		Code:       "GENERAL_ERROR",
		Message:    err.Error(),
		Suggestion: suggestion,
		Cause:      err,
		ExitCode:   ExitGeneral,
	}
}

// ExitCode returns the appropriate exit code for an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var ee *EccError
	if errors.As(err, &ee) {
		return ee.ExitCode
	}

	return ExitGeneral
}

// Code returns the error code for an error.
func Code(err error) string {
	var ee *EccError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return "GENERAL_ERROR"
}

// Is wraps errors.Is for convenience.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience.
func As(err error, target any) bool {
	return errors.As(err, target)
}
