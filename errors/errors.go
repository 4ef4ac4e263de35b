package errors

import (
	"fmt"
	"net/http"
	"time"
)

// AppError is the error type returned to HTTP callers
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
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
	details := make(map[string]string, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	e.Details = details
	return e
}

// WithDetails merges a set of details into the error
func (e AppError) WithDetails(details map[string]string) AppError {
	for k, v := range details {
		e = e.WithDetail(k, v)
	}
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

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid payload",
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

func ErrNotImplemented(path string) AppError {
	return AppError{
		HTTPCode: http.StatusNotImplemented,
		Code:     ErrorCode_NOT_IMPLEMENTED,
		Message:  "This endpoint is not yet implemented",
	}.WithDetail("path", path)
}

// Analysis Errors
func ErrValidationFailed(details map[string]string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_ANALYSIS_VALIDATION_FAILED,
		Message:  "Meeting data failed validation",
	}.WithDetails(details)
}

func ErrAnalysisNotFound(analysisID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_ANALYSIS_NOT_FOUND,
		Message:  "Analysis not found or expired",
	}.WithDetail("analysis_id", analysisID)
}

func ErrAnalysisCancelled(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusRequestTimeout,
		Code:     ErrorCode_ANALYSIS_CANCELLED,
		Message:  "Analysis was cancelled",
	}
}

func ErrSourceEmpty() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_ANALYSIS_SOURCE_EMPTY,
		Message:  "No CSV content provided",
	}
}

func ErrSourceTooLarge(limit int64) AppError {
	return AppError{
		HTTPCode: http.StatusRequestEntityTooLarge,
		Code:     ErrorCode_ANALYSIS_SOURCE_TOO_LARGE,
		Message:  "CSV content exceeds the configured limit",
	}.WithDetail("max_bytes", fmt.Sprintf("%d", limit))
}

// Integration Errors
func ErrSourceFetchFailed(url string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadGateway,
		Code:     ErrorCode_INTEGRATION_SOURCE_FETCH_FAILED,
		Message:  "Failed to fetch file",
	}.WithDetail("url", url)
}

func ErrCacheFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTEGRATION_CACHE_FAILED,
		Message:  fmt.Sprintf("Cache operation failed: %s", operation),
	}
}

func ErrStorageFailed(operation string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTEGRATION_STORAGE_FAILED,
		Message:  fmt.Sprintf("Storage operation failed: %s", operation),
	}
}

func ErrStorageDisabled() AppError {
	return AppError{
		HTTPCode: http.StatusNotImplemented,
		Code:     ErrorCode_INTEGRATION_STORAGE_DISABLED,
		Message:  "Object storage is not configured",
	}
}

// Export Errors
func ErrExportFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_EXPORT_FAILED,
		Message:  "Failed to export analysis",
	}
}
