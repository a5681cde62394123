package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for the fault taxonomy and supporting infrastructure
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Property lifecycle errors
	ErrParsing        ErrorCode = "PARSING"
	ErrBadArgument    ErrorCode = "BAD_ARGUMENT"
	ErrValidation     ErrorCode = "VALIDATION"
	ErrInitialization ErrorCode = "INITIALIZATION"
	ErrNotAvailable   ErrorCode = "NOT_AVAILABLE"
	ErrService        ErrorCode = "SERVICE"

	// Defaults file errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileCreate   ErrorCode = "FILE_CREATE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// PropsError represents a structured error with code and details
type PropsError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PropsError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PropsError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PropsError) Is(target error) bool {
	var targetErr *PropsError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PropsError with the given code and message
func New(code ErrorCode, message string) *PropsError {
	return &PropsError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new PropsError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PropsError {
	return &PropsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error with a PropsError
func Wrap(err error, code ErrorCode, message string) *PropsError {
	if err == nil {
		return nil
	}
	return &PropsError{
		Code:    code,
		Message: message,
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PropsError {
	if err == nil {
		return nil
	}
	return &PropsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PropsError) WithDetail(key string, value interface{}) *PropsError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error carries a specific error code anywhere in its chain
func IsErrorCode(err error, code ErrorCode) bool {
	for err != nil {
		var propsErr *PropsError
		if !errors.As(err, &propsErr) {
			return false
		}
		if propsErr.Code == code {
			return true
		}
		err = propsErr.Wrapped
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PropsError
func GetErrorCode(err error) ErrorCode {
	var propsErr *PropsError
	if errors.As(err, &propsErr) {
		return propsErr.Code
	}
	return ErrUnknown
}

// Causes returns the message of every error in the chain, outermost first.
// The top-level error report prints these with growing indentation.
func Causes(err error) []string {
	var messages []string
	for err != nil {
		var propsErr *PropsError
		if errors.As(err, &propsErr) {
			messages = append(messages, propsErr.Message)
			err = propsErr.Wrapped
			continue
		}
		messages = append(messages, err.Error())
		break
	}
	return messages
}
