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

	// Pattern errors
	ErrPatternFormat ErrorCode = "PATTERN_FORMAT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Process errors
	ErrCommand ErrorCode = "COMMAND"

	// Git errors
	ErrNotInGitRepo ErrorCode = "NOT_IN_GIT_REPO"
	ErrGit          ErrorCode = "GIT"

	// Nix errors
	ErrNoFlake    ErrorCode = "NO_FLAKE"
	ErrNixCommand ErrorCode = "NIX_COMMAND"
	ErrNixOutput  ErrorCode = "NIX_OUTPUT"
)

// GarnixError represents a structured error with code and details
type GarnixError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *GarnixError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *GarnixError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target carries the same error code
func (e *GarnixError) Is(target error) bool {
	var targetErr *GarnixError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new GarnixError with the given code and message
func New(code ErrorCode, message string) *GarnixError {
	return &GarnixError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new GarnixError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *GarnixError {
	return &GarnixError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a GarnixError
func Wrap(err error, code ErrorCode, message string) *GarnixError {
	if err == nil {
		return nil
	}
	return &GarnixError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *GarnixError {
	if err == nil {
		return nil
	}
	return &GarnixError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *GarnixError) WithDetail(key string, value interface{}) *GarnixError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var garnixErr *GarnixError
	if errors.As(err, &garnixErr) {
		return garnixErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a GarnixError
func GetErrorCode(err error) ErrorCode {
	var garnixErr *GarnixError
	if errors.As(err, &garnixErr) {
		return garnixErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a GarnixError
func GetErrorDetails(err error) map[string]interface{} {
	var garnixErr *GarnixError
	if errors.As(err, &garnixErr) {
		return garnixErr.Details
	}
	return nil
}
