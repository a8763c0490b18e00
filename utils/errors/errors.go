// Package errors provides structured error handling for the feedhub backend.
// It defines error types with codes, messages, causes, and contextual
// information so the REST layer can map failures to HTTP responses.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrorCode represents a categorized error type for structured error handling.
type ErrorCode string

// Error code constants for categorizing application errors.
const (
	ErrCodeDatabase    ErrorCode = "DATABASE_ERROR"
	ErrCodeValidation  ErrorCode = "VALIDATION_ERROR"
	ErrCodeAuth        ErrorCode = "AUTH_ERROR"
	ErrCodeExternalAPI ErrorCode = "EXTERNAL_API_ERROR"
	ErrCodeParse       ErrorCode = "PARSE_ERROR"
	ErrCodeTimeout     ErrorCode = "TIMEOUT_ERROR"
	ErrCodeUnknown     ErrorCode = "UNKNOWN_ERROR"
)

// AppError represents a structured application error with code, message,
// cause, and context. It implements the error interface and supports
// error unwrapping.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error returns a string representation of the AppError.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error for use with errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// AsAppError extracts an *AppError from an error chain, if present.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	ok := errors.As(err, &appErr)
	return appErr, ok
}

// DatabaseError creates an AppError for persistence failures.
func DatabaseError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeDatabase, Message: message, Cause: cause, Context: context}
}

// ValidationError creates an AppError for input validation failures.
func ValidationError(message string, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message, Context: context}
}

// AuthError creates an AppError for unresolved or invalid owner identity.
func AuthError(message string, cause error) *AppError {
	return &AppError{Code: ErrCodeAuth, Message: message, Cause: cause}
}

// ExternalAPIError creates an AppError for feed fetch/transport failures.
func ExternalAPIError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeExternalAPI, Message: message, Cause: cause, Context: context}
}

// ParseError creates an AppError for malformed feed payloads.
func ParseError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeParse, Message: message, Cause: cause, Context: context}
}

// TimeoutError creates an AppError for deadline-related failures.
func TimeoutError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeTimeout, Message: message, Cause: cause, Context: context}
}

// UnknownError creates an AppError for unclassified errors.
func UnknownError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeUnknown, Message: message, Cause: cause, Context: context}
}

// LogError logs an AppError with structured logging and context
func LogError(logger *slog.Logger, err error, operation string) {
	if logger == nil {
		return
	}

	if appErr, ok := AsAppError(err); ok {
		args := []interface{}{
			"operation", operation,
			"error_code", string(appErr.Code),
			"error_message", appErr.Message,
		}

		for key, value := range appErr.Context {
			args = append(args, key, value)
		}

		if appErr.Cause != nil {
			args = append(args, "cause", appErr.Cause.Error())
		}

		logger.Error("application error occurred", args...)
	} else {
		logger.Error("unknown error occurred",
			"operation", operation,
			"error", err.Error(),
		)
	}
}
