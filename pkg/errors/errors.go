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

	// Rule definition errors, raised while building rules
	ErrMalformedRule     ErrorCode = "MALFORMED_RULE"
	ErrDefinitionLoad    ErrorCode = "DEFINITION_LOAD"
	ErrDefinitionInvalid ErrorCode = "DEFINITION_INVALID"

	// Registry errors
	ErrDuplicateCountry ErrorCode = "DUPLICATE_COUNTRY"
	ErrUnknownCountry   ErrorCode = "UNKNOWN_COUNTRY"
	ErrReservedCountry  ErrorCode = "RESERVED_COUNTRY"

	// Decomposition errors
	ErrNoMatchingRule ErrorCode = "NO_MATCHING_RULE"
	ErrNoSplitRule    ErrorCode = "NO_SPLIT_RULE"
	ErrInvalidNDC     ErrorCode = "INVALID_NDC"
)

// PhonyError represents a structured error with code and details
type PhonyError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PhonyError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PhonyError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a PhonyError with the same code
func (e *PhonyError) Is(target error) bool {
	var targetErr *PhonyError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PhonyError with the given code and message
func New(code ErrorCode, message string) *PhonyError {
	return &PhonyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PhonyError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PhonyError {
	return &PhonyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PhonyError
func Wrap(err error, code ErrorCode, message string) *PhonyError {
	if err == nil {
		return nil
	}
	return &PhonyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PhonyError {
	if err == nil {
		return nil
	}
	return &PhonyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PhonyError) WithDetail(key string, value interface{}) *PhonyError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *PhonyError) WithDetails(details map[string]interface{}) *PhonyError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code.
// The outermost PhonyError in the chain decides.
func IsErrorCode(err error, code ErrorCode) bool {
	var phonyErr *PhonyError
	if errors.As(err, &phonyErr) {
		return phonyErr.Code == code
	}
	return false
}

// HasErrorCode checks whether any PhonyError in the chain carries code
func HasErrorCode(err error, code ErrorCode) bool {
	for err != nil {
		var phonyErr *PhonyError
		if !errors.As(err, &phonyErr) {
			return false
		}
		if phonyErr.Code == code {
			return true
		}
		err = phonyErr.Wrapped
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PhonyError
func GetErrorCode(err error) ErrorCode {
	var phonyErr *PhonyError
	if errors.As(err, &phonyErr) {
		return phonyErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PhonyError
func GetErrorDetails(err error) map[string]interface{} {
	var phonyErr *PhonyError
	if errors.As(err, &phonyErr) {
		return phonyErr.Details
	}
	return nil
}
