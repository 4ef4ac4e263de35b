package errors

// ErrorCode identifies an application error independently of its HTTP status
type ErrorCode int32

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1002
	ErrorCode_NOT_FOUND        ErrorCode = 1003
	ErrorCode_NOT_IMPLEMENTED  ErrorCode = 1004

	// Analysis
	ErrorCode_ANALYSIS_VALIDATION_FAILED ErrorCode = 2000
	ErrorCode_ANALYSIS_NOT_FOUND         ErrorCode = 2001
	ErrorCode_ANALYSIS_CANCELLED         ErrorCode = 2002
	ErrorCode_ANALYSIS_SOURCE_EMPTY      ErrorCode = 2003
	ErrorCode_ANALYSIS_SOURCE_TOO_LARGE  ErrorCode = 2004

	// Integration
	ErrorCode_INTEGRATION_SOURCE_FETCH_FAILED ErrorCode = 3000
	ErrorCode_INTEGRATION_CACHE_FAILED        ErrorCode = 3001
	ErrorCode_INTEGRATION_STORAGE_FAILED      ErrorCode = 3002
	ErrorCode_INTEGRATION_STORAGE_DISABLED    ErrorCode = 3003

	// Export
	ErrorCode_EXPORT_FAILED ErrorCode = 4000
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                         "HTTP_OK",
	ErrorCode_INTERNAL:                        "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:                "INVALID_ARGUMENT",
	ErrorCode_INVALID_PAYLOAD:                 "INVALID_PAYLOAD",
	ErrorCode_NOT_FOUND:                       "NOT_FOUND",
	ErrorCode_NOT_IMPLEMENTED:                 "NOT_IMPLEMENTED",
	ErrorCode_ANALYSIS_VALIDATION_FAILED:      "ANALYSIS_VALIDATION_FAILED",
	ErrorCode_ANALYSIS_NOT_FOUND:              "ANALYSIS_NOT_FOUND",
	ErrorCode_ANALYSIS_CANCELLED:              "ANALYSIS_CANCELLED",
	ErrorCode_ANALYSIS_SOURCE_EMPTY:           "ANALYSIS_SOURCE_EMPTY",
	ErrorCode_ANALYSIS_SOURCE_TOO_LARGE:       "ANALYSIS_SOURCE_TOO_LARGE",
	ErrorCode_INTEGRATION_SOURCE_FETCH_FAILED: "INTEGRATION_SOURCE_FETCH_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:        "INTEGRATION_CACHE_FAILED",
	ErrorCode_INTEGRATION_STORAGE_FAILED:      "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_STORAGE_DISABLED:    "INTEGRATION_STORAGE_DISABLED",
	ErrorCode_EXPORT_FAILED:                   "EXPORT_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// MarshalText renders the code by name in JSON bodies and log fields
func (c ErrorCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
