package errors

import (
	"fmt"
	"net/http"
)

// AppError is the HTTP-facing error type of the application.
// Message is safe to return to clients; Raw is only logged.
type AppError struct {
	Raw      error
	HTTPCode int
	Code     ErrorCode
	Message  string
	Details  map[string]string
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

// ErrInvalidArgument reports a request rejected by the router or middleware
// before it reached a handler.
func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

// ErrNotFound is returned for unknown routes.
func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

// ErrInvalidPayload reports a request body that could not be bound or validated.
func ErrInvalidPayload(reason string) AppError {
	msg := "Invalid payload"
	if reason != "" {
		msg = fmt.Sprintf("Invalid payload: %s", reason)
	}
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  msg,
	}
}

// Transcript Upload Errors
func ErrMissingFile(field string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_TRANSCRIPT_MISSING_FILE,
		Message:  "No file uploaded. Please upload a .txt file.",
	}.WithDetail("field", field)
}

func ErrInvalidFileType(contentType string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_TRANSCRIPT_INVALID_FILE_TYPE,
		Message:  "Invalid file type. Please upload a .txt file.",
	}.WithDetail("content_type", contentType)
}

func ErrInvalidEncoding(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_TRANSCRIPT_INVALID_ENCODING,
		Message:  "Transcript must be UTF-8 encoded text.",
	}
}

func ErrEmptyTranscript() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_TRANSCRIPT_EMPTY,
		Message:  "Transcript file is empty.",
	}
}

// AI Analysis Errors
func ErrAIAnalysisFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_AI_ANALYSIS_FAILED,
		Message:  "Failed to analyze transcript with AI model.",
	}
}

// Email Errors
func ErrEmailNotConfigured() AppError {
	return AppError{
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_EMAIL_NOT_CONFIGURED,
		Message:  "Email credentials are not configured on the server.",
	}
}

// ErrEmailDeliveryFailed carries the SMTP error text in Message; clients rely on it.
func ErrEmailDeliveryFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_EMAIL_DELIVERY_FAILED,
		Message:  fmt.Sprintf("Failed to send email: %v", err),
	}
}
