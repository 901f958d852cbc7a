// Package errors provides structured error types for isbnkit.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the engine and the CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Input errors describe why a raw identifier was rejected
// (INPUT_TOO_LONG, INVALID_LENGTH, LENGTH_MISMATCH, INVALID_CHECK_SYMBOL).
// ENTROPY_UNAVAILABLE is returned when a random source cannot be read.
// INVALID_INPUT and INVALID_CONFIG cover option and configuration values.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidLength, "expected 10 or 13 characters, got %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidLength) {
//	    // Handle malformed identifier
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeEntropyUnavailable, readErr, "read random source")
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Identifier errors
	ErrCodeInputTooLong       Code = "INPUT_TOO_LONG"
	ErrCodeInvalidLength      Code = "INVALID_LENGTH"
	ErrCodeLengthMismatch     Code = "LENGTH_MISMATCH"
	ErrCodeInvalidCheckSymbol Code = "INVALID_CHECK_SYMBOL"

	// Random source errors
	ErrCodeEntropyUnavailable Code = "ENTROPY_UNAVAILABLE"

	// Option and configuration errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Internal errors
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
