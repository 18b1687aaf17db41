// Package errors provides structured error types for taxsplit.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the library packages
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - NO_*: A required selection or relation could not be established
//   - MISSING_*: Requested data is absent
//   - INTERNAL_*: Corrupted-graph invariant violations
//
// # Usage
//
//	err := errors.New(errors.ErrCodeNoCandidate, "no root candidates within margin %d", margin)
//	if errors.Is(err, errors.ErrCodeNoCandidate) {
//	    // Widen the margin and retry
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidInput, origErr, "load taxonomy from %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeInvalidRoot  Code = "INVALID_ROOT"
	ErrCodeInvalidMode  Code = "INVALID_MODE"

	// Root proposal errors
	ErrCodeNoCandidate        Code = "NO_CANDIDATE"
	ErrCodeNoDistinctTestRoot Code = "NO_DISTINCT_TEST_ROOT"

	// Path and lookup errors
	ErrCodeNoCommonNode Code = "NO_COMMON_NODE"
	ErrCodeMissingIDs   Code = "MISSING_IDS"
	ErrCodeNotFound     Code = "NOT_FOUND"

	// Internal errors: a corrupted graph that must not propagate bad splits
	ErrCodeInternal Code = "INTERNAL_ERROR"
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
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
