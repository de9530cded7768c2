package errors

import (
	stderrors "errors"
	"fmt"
)

// Error is the unified telemetry error type.
type Error struct {
	// Code is a machine-readable error code.
	Code ErrorCode
	// Message is a human-readable error message.
	Message string
	// Cause is the underlying error that caused this error.
	Cause error
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error { return e.Cause }

// New creates a new Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates a new Error wrapping an underlying cause.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// CodeOf extracts the ErrorCode from err, or "" if err is not an *Error.
func CodeOf(err error) ErrorCode {
	var te *Error
	if stderrors.As(err, &te) {
		return te.Code
	}
	return ""
}

// HasCode reports whether err carries the given error code.
func HasCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}
