// Package errors defines the structured error type used across termrender.
//
// Every error carries a stable ErrorCode so callers and tests can match on the
// failure category instead of the message text.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Layout errors
	ErrInvalidSizeToken ErrorCode = "INVALID_SIZE_TOKEN"
	ErrLayoutUnstable   ErrorCode = "LAYOUT_UNSTABLE"
	ErrWidthTooSmall    ErrorCode = "WIDTH_TOO_SMALL"

	// Theme errors
	ErrUnknownPreset  ErrorCode = "UNKNOWN_PRESET"
	ErrUnknownVariant ErrorCode = "UNKNOWN_VARIANT"

	// Output channel errors
	ErrHookConflict ErrorCode = "HOOK_CONFLICT"

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"
)

// TermError represents a structured error with code and details
type TermError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TermError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TermError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TermError) Is(target error) bool {
	var targetErr *TermError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TermError with the given code and message
func New(code ErrorCode, message string) *TermError {
	return &TermError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TermError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TermError {
	return &TermError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TermError
func Wrap(err error, code ErrorCode, message string) *TermError {
	if err == nil {
		return nil
	}
	return &TermError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TermError {
	if err == nil {
		return nil
	}
	return &TermError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TermError) WithDetail(key string, value interface{}) *TermError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *TermError) WithDetails(details map[string]interface{}) *TermError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var termErr *TermError
	if errors.As(err, &termErr) {
		return termErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TermError
func GetErrorCode(err error) ErrorCode {
	var termErr *TermError
	if errors.As(err, &termErr) {
		return termErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a TermError
func GetErrorDetails(err error) map[string]interface{} {
	var termErr *TermError
	if errors.As(err, &termErr) {
		return termErr.Details
	}
	return nil
}
