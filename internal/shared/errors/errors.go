// Package errors provides application-level error types and utilities.
// It defines the error taxonomy of a generation run: invalid dates,
// unsupported languages, unavailable document backends, and invalid
// destinations.
package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation          ErrorType = "validation_error"
	ErrorTypeInvalidDate         ErrorType = "invalid_date"
	ErrorTypeUnsupportedLanguage ErrorType = "unsupported_language"
	ErrorTypeBackendUnavailable  ErrorType = "backend_unavailable"
	ErrorTypeDestinationInvalid  ErrorType = "destination_invalid"
	ErrorTypeInternal            ErrorType = "internal_error"
)

// AppError represents an application error with additional context
type AppError struct {
	Type     ErrorType
	Message  string
	ExitCode int
	Details  string
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newAppError(errType ErrorType, exitCode int, message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:     errType,
		Message:  message,
		ExitCode: exitCode,
		Details:  detail,
	}
}

// NewValidationError creates a new validation error for bad invocation parameters
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, 2, message, details...)
}

// NewInvalidDateError creates a new error for dates that cannot be constructed
func NewInvalidDateError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInvalidDate, 2, message, details...)
}

// NewUnsupportedLanguageError creates a new error for unknown language tags
func NewUnsupportedLanguageError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUnsupportedLanguage, 2, message, details...)
}

// NewBackendUnavailableError creates a new error for backends that cannot be started
func NewBackendUnavailableError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeBackendUnavailable, 3, message, details...)
}

// NewDestinationInvalidError creates a new error for unusable output destinations
func NewDestinationInvalidError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeDestinationInvalid, 4, message, details...)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, 1, message, details...)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsType reports whether err is an AppError of the given type
func IsType(err error, errType ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == errType
}

// ExitCode returns the process exit code for err.
// Non-AppError values map to 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if appErr := GetAppError(err); appErr != nil {
		return appErr.ExitCode
	}
	return 1
}
