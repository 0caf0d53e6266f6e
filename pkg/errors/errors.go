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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Unit discovery errors
	ErrDiscovery ErrorCode = "DISCOVERY"

	// Trigger errors
	ErrTriggerInvalid ErrorCode = "TRIGGER_INVALID"

	// Action errors
	ErrActionInvalid ErrorCode = "ACTION_INVALID"
	ErrPrecondition  ErrorCode = "PRECONDITION"
	ErrActionExecute ErrorCode = "ACTION_EXECUTE"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// DictatorError represents a structured error with code and details
type DictatorError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DictatorError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DictatorError) Unwrap() error {
	return e.Wrapped
}

// Is matches another DictatorError by code
func (e *DictatorError) Is(target error) bool {
	var targetErr *DictatorError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DictatorError with the given code and message
func New(code ErrorCode, message string) *DictatorError {
	return &DictatorError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DictatorError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DictatorError {
	return &DictatorError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DictatorError
func Wrap(err error, code ErrorCode, message string) *DictatorError {
	if err == nil {
		return nil
	}
	return &DictatorError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DictatorError {
	if err == nil {
		return nil
	}
	return &DictatorError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DictatorError) WithDetail(key string, value interface{}) *DictatorError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dictatorErr *DictatorError
	if errors.As(err, &dictatorErr) {
		return dictatorErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DictatorError
func GetErrorCode(err error) ErrorCode {
	var dictatorErr *DictatorError
	if errors.As(err, &dictatorErr) {
		return dictatorErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DictatorError
func GetErrorDetails(err error) map[string]interface{} {
	var dictatorErr *DictatorError
	if errors.As(err, &dictatorErr) {
		return dictatorErr.Details
	}
	return nil
}
