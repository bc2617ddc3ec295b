package errors

import (
	"errors"
	"fmt"
)

// ErrorType categorizes application errors so callers can branch on the
// failure class without matching message strings.
type ErrorType string

const (
	ErrTypeInvalidPath       ErrorType = "INVALID_PATH"
	ErrTypeNoData            ErrorType = "NO_DATA"
	ErrTypeMissingDependency ErrorType = "MISSING_DEPENDENCY"
	ErrTypeValueParse        ErrorType = "VALUE_PARSE"
	ErrTypeParsing           ErrorType = "PARSING"
	ErrTypeReport            ErrorType = "REPORT"
	ErrTypeConfig            ErrorType = "CONFIG"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// IsType reports whether err is, or wraps, an AppError of the given type.
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

// Helper constructors for the error taxonomy

// NewInvalidPathError reports a path that is neither an eligible source file
// nor a directory.
func NewInvalidPathError(path string, cause error) *AppError {
	return NewAppError(ErrTypeInvalidPath,
		fmt.Sprintf("path %q must be a spreadsheet file or a directory, and file names must start with \"Sales Journal for \"", path),
		cause).WithContext("path", path)
}

// NewNoDataError reports that zero eligible sources were discovered.
func NewNoDataError(path string) *AppError {
	return NewAppError(ErrTypeNoData,
		fmt.Sprintf("no spreadsheet files starting with \"Sales Journal for \" found at %q", path),
		nil).WithContext("path", path)
}

// NewMissingDependencyError reports that an interactive chooser was requested
// without a usable terminal attached.
func NewMissingDependencyError(message string) *AppError {
	return NewAppError(ErrTypeMissingDependency, message, nil)
}

// NewValueParseError reports a value cell that could not be parsed as a
// number after cleaning. It aborts the whole run.
func NewValueParseError(label, cell string, row int, cause error) *AppError {
	return NewAppError(ErrTypeValueParse,
		fmt.Sprintf("cannot parse value %q (row %d) in %q", cell, row, label),
		cause).
		WithContext("label", label).
		WithContext("row", row).
		WithContext("cell", cell)
}

// NewParsingError creates a spreadsheet-parsing error
func NewParsingError(message string, cause error) *AppError {
	return NewAppError(ErrTypeParsing, message, cause)
}

// NewReportError creates a report-writing error
func NewReportError(message string, cause error) *AppError {
	return NewAppError(ErrTypeReport, message, cause)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}
