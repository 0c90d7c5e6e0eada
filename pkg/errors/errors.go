// Package errors provides structured error types for binclock.
//
// Every failure in the clock core and its collaborators is an [*Error]
// carrying a machine-readable [Code], so callers can classify failures
// without matching on message text:
//
//   - INVALID_*: configuration or input rejected at the boundary
//   - FILE_NOT_FOUND: a pattern file could not be located
//   - INTERNAL_ERROR: a broken invariant (never expected in practice)
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidDuration, "duration must be a positive value, got %d", d)
//	if errors.Is(err, errors.ErrCodeInvalidDuration) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidPattern, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Row and pattern configuration errors
	ErrCodeInvalidDuration Code = "INVALID_DURATION"
	ErrCodeInvalidUnit     Code = "INVALID_UNIT"
	ErrCodeInvalidCells    Code = "INVALID_CELLS"
	ErrCodeInvalidPattern  Code = "INVALID_PATTERN"
	ErrCodeInvalidCoverage Code = "INVALID_COVERAGE"

	// Conversion input errors
	ErrCodeInvalidTime      Code = "INVALID_TIME"
	ErrCodeInvalidLitCells  Code = "INVALID_LIT_CELLS"
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeInvalidPath      Code = "INVALID_PATH"
	ErrCodeFileNotFound     Code = "FILE_NOT_FOUND"
	ErrCodePatternNotFound  Code = "PATTERN_NOT_FOUND"
	ErrCodeUnsupportedShape Code = "UNSUPPORTED_SHAPE"

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
