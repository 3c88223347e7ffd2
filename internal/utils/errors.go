package utils

import (
	"fmt"
	"net/http"
)

// Stable error codes returned to clients. Handlers and services use these
// instead of raw error strings so the frontend can switch on them.
const (
	CodeInvalidFileType   = "INVALID_FILE_TYPE"
	CodeFileTooLarge      = "FILE_TOO_LARGE"
	CodeContentTooShort   = "CONTENT_TOO_SHORT"
	CodeContentTooLong    = "CONTENT_TOO_LONG"
	CodeExtractionFailed  = "EXTRACTION_FAILED"
	CodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	CodeGenerationFailed  = "GENERATION_FAILED"
	CodeBadRequest        = "BAD_REQUEST"
	CodeNotFound          = "NOT_FOUND"
	CodeInternalError     = "INTERNAL_ERROR"
)

// AppError is a structured application error carrying a stable code, a
// human-readable message and optional diagnostic details. The raw cause is
// kept for logging and never serialized to the client.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	StatusCode int    `json:"-"`
	Cause      error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{Code: code, Message: message, StatusCode: statusCode}
}

func NewBadRequestError(message string) *AppError {
	return &AppError{Code: CodeBadRequest, Message: message, StatusCode: http.StatusBadRequest}
}

func NewInvalidFileTypeError(message string) *AppError {
	return &AppError{Code: CodeInvalidFileType, Message: message, StatusCode: http.StatusBadRequest}
}

func NewFileTooLargeError(message string) *AppError {
	return &AppError{Code: CodeFileTooLarge, Message: message, StatusCode: http.StatusBadRequest}
}

func NewContentTooShortError(message string) *AppError {
	return &AppError{Code: CodeContentTooShort, Message: message, StatusCode: http.StatusBadRequest}
}

func NewContentTooLongError(message string) *AppError {
	return &AppError{Code: CodeContentTooLong, Message: message, StatusCode: http.StatusBadRequest}
}

func NewUnsupportedFormatError(message string, cause error) *AppError {
	e := &AppError{Code: CodeUnsupportedFormat, Message: message, StatusCode: http.StatusBadRequest, Cause: cause}
	if cause != nil {
		e.Details = cause.Error()
	}
	return e
}

func NewExtractionError(message string, cause error) *AppError {
	e := &AppError{Code: CodeExtractionFailed, Message: message, StatusCode: http.StatusInternalServerError, Cause: cause}
	if cause != nil {
		e.Details = cause.Error()
	}
	return e
}

func NewGenerationError(message string, cause error) *AppError {
	e := &AppError{Code: CodeGenerationFailed, Message: message, StatusCode: http.StatusInternalServerError, Cause: cause}
	if cause != nil {
		e.Details = cause.Error()
	}
	return e
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message, StatusCode: http.StatusNotFound}
}

func NewInternalError(message string) *AppError {
	return &AppError{Code: CodeInternalError, Message: message, StatusCode: http.StatusInternalServerError}
}

// StatusCodeFor returns the HTTP status for any error, defaulting to 500.
func StatusCodeFor(err error) int {
	if appErr, ok := err.(*AppError); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
