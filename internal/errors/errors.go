package errors

import (
	"errors"
	"fmt"
)

// Error codes for programmatic handling
const (
	// Path errors
	ErrCodeNoFileName    = "NO_FILE_NAME"
	ErrCodeNotUnicode    = "NOT_UNICODE"
	ErrCodeEmptyFileName = "EMPTY_FILE_NAME"
	ErrCodeNotHidden     = "NOT_HIDDEN"

	// Filesystem errors
	ErrCodeFileDoesNotExist = "FILE_DOES_NOT_EXIST"
	ErrCodeIO               = "IO"

	// Invocation errors
	ErrCodeInvalidCommand = "INVALID_COMMAND"
	ErrCodeConfigInvalid  = "CONFIG_INVALID"
)

// HideError represents a standardized error with code and context.
//
// HideError carries:
//   - Code: standardized error code for programmatic handling
//   - Message: human-readable error description
//   - Cause: underlying error that caused this error (optional)
//   - Context: additional contextual information as key-value pairs
//   - Operation: the operation that failed (optional)
//
// Example usage:
//
//	err := ErrIO("rename", cause).WithContext("path", "notes.txt")
//	if IsHideError(err, ErrCodeIO) {
//	  // Handle filesystem failure
//	}
type HideError struct {
	Code      string                 // Standardized error code (see ErrCode* constants)
	Message   string                 // Human-readable error message
	Cause     error                  // Underlying error that caused this error
	Context   map[string]interface{} // Additional contextual information
	Operation string                 // The operation that failed
}

// Error implements the error interface
func (e *HideError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *HideError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code
func (e *HideError) Is(target error) bool {
	if t, ok := target.(*HideError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithContext adds context information to the error
func (e *HideError) WithContext(key string, value interface{}) *HideError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// IsInternal reports whether the error signals a broken caller contract
// rather than a condition the user can fix.
func (e *HideError) IsInternal() bool {
	return e.Code == ErrCodeNotHidden
}

// NewHideError creates a new standardized error
func NewHideError(code, message string, cause error) *HideError {
	return &HideError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewHideErrorf creates a new standardized error with formatted message
func NewHideErrorf(code string, cause error, format string, args ...interface{}) *HideError {
	return &HideError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// Path errors
func ErrNoFileName(path string) *HideError {
	return NewHideErrorf(ErrCodeNoFileName, nil, "provided path '%s' has no file name, so nothing can be (un)hidden", path).
		WithContext("path", path)
}

func ErrNotUnicode(path string) *HideError {
	return NewHideErrorf(ErrCodeNotUnicode, nil, "file name of '%s' is not valid unicode, so it cannot be processed", path).
		WithContext("path", path)
}

func ErrEmptyFileName(path string, marker rune) *HideError {
	return NewHideErrorf(ErrCodeEmptyFileName, nil, "removing '%c' from '%s' would leave no usable file name", marker, path).
		WithContext("path", path).
		WithContext("marker", string(marker))
}

func ErrNotHidden(path string, marker rune) *HideError {
	return NewHideErrorf(ErrCodeNotHidden, nil, "internal error: '%s' does not start with '%c' and cannot be un-hidden", path, marker).
		WithContext("path", path).
		WithContext("marker", string(marker))
}

// Filesystem errors
func ErrFileDoesNotExist(path string) *HideError {
	return NewHideErrorf(ErrCodeFileDoesNotExist, nil, "the provided file path '%s' does not exist", path).
		WithContext("path", path)
}

func ErrIO(operation string, cause error) *HideError {
	err := NewHideErrorf(ErrCodeIO, cause, "I/O error encountered during %s", operation).
		WithContext("operation", operation)
	err.Operation = operation
	return err
}

// Invocation errors
func ErrInvalidCommand(reason string) *HideError {
	return NewHideErrorf(ErrCodeInvalidCommand, nil, "invalid command: %s", reason).
		WithContext("reason", reason)
}

func ErrConfigInvalid(cause error) *HideError {
	return NewHideError(ErrCodeConfigInvalid, "invalid configuration", cause)
}

// Helper function to check if an error is a specific hide error
func IsHideError(err error, code string) bool {
	var hideErr *HideError
	if errors.As(err, &hideErr) {
		return hideErr.Code == code
	}
	return false
}

// Helper function to get the hide error code from any error
func GetErrorCode(err error) string {
	var hideErr *HideError
	if errors.As(err, &hideErr) {
		return hideErr.Code
	}
	return ""
}

// Helper function to get error context
func GetErrorContext(err error) map[string]interface{} {
	var hideErr *HideError
	if errors.As(err, &hideErr) {
		return hideErr.Context
	}
	return nil
}
