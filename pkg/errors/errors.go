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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Association errors
	ErrPatternCompile ErrorCode = "PATTERN_COMPILE"
	ErrTemplateValid  ErrorCode = "TEMPLATE_INVALID"

	// Launch errors
	ErrLaunch ErrorCode = "LAUNCH"
)

// OpenwithError represents a structured error with code and details
type OpenwithError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *OpenwithError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *OpenwithError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *OpenwithError) Is(target error) bool {
	var targetErr *OpenwithError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new OpenwithError with the given code and message
func New(code ErrorCode, message string) *OpenwithError {
	return &OpenwithError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new OpenwithError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *OpenwithError {
	return &OpenwithError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an OpenwithError
func Wrap(err error, code ErrorCode, message string) *OpenwithError {
	if err == nil {
		return nil
	}
	return &OpenwithError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *OpenwithError {
	if err == nil {
		return nil
	}
	return &OpenwithError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *OpenwithError) WithDetail(key string, value interface{}) *OpenwithError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var owErr *OpenwithError
	if errors.As(err, &owErr) {
		return owErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an OpenwithError
func GetErrorCode(err error) ErrorCode {
	var owErr *OpenwithError
	if errors.As(err, &owErr) {
		return owErr.Code
	}
	return ErrUnknown
}
