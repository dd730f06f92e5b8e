// Package errors provides structured error types for frameglass.
//
// Errors carry a machine-readable [Code] so the CLI can report them
// consistently and tests can assert on the failure category instead of the
// message text.
//
// # Error Codes
//
//   - MALFORMED_INPUT: an input file that cannot be read as paintings
//   - INVALID_*: rejected options, configuration, or solutions
//   - WORKER_FAILED: a parallel worker failed, so the whole run failed
//   - INTERNAL_ERROR: unexpected internal failures
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMalformedInput, "line %d: unknown type %q", n, typ)
//	if errors.Is(err, errors.ErrCodeMalformedInput) {
//	    // Handle bad input
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeWorkerFailed, origErr, "chunk %d", i)
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input errors
	ErrCodeMalformedInput  Code = "MALFORMED_INPUT"
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidSolution Code = "INVALID_SOLUTION"
	ErrCodeFileNotFound    Code = "FILE_NOT_FOUND"

	// Option and configuration errors
	ErrCodeInvalidOption Code = "INVALID_OPTION"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Execution errors
	ErrCodeWorkerFailed Code = "WORKER_FAILED"
	ErrCodeInternal     Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// Codes are removed from every *Error in the chain; context added by
// plain wrappers such as fmt.Errorf is kept.
// For errors without an *Error, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	msg := e.Message
	if e.Cause != nil {
		msg += ": " + UserMessage(e.Cause)
	}
	return strings.Replace(err.Error(), e.Error(), msg, 1)
}
