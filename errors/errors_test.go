package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_ErrorIncludesCodeAndCause(t *testing.T) {
	err := ErrSourceFetchFailed("https://example.com/m.csv", fmt.Errorf("status 404 Not Found"))

	assert.Equal(t, http.StatusBadGateway, err.HTTPCode)
	assert.Equal(t, "[INTEGRATION_SOURCE_FETCH_FAILED] Failed to fetch file: status 404 Not Found", err.Error())
	assert.Equal(t, "https://example.com/m.csv", err.Details["url"])
}

func TestAppError_WithDetailDoesNotShareMaps(t *testing.T) {
	base := ErrInvalidArgument("bad")
	a := base.WithDetail("field", "a")
	b := a.WithDetail("field", "b")

	assert.Nil(t, base.Details)
	assert.Equal(t, "a", a.Details["field"])
	assert.Equal(t, "b", b.Details["field"])
}

func TestAppError_UnwrapAndAs(t *testing.T) {
	cause := stdErrors.New("boom")
	wrapped := fmt.Errorf("analyze: %w", ErrExportFailed(cause))

	var appErr AppError
	require.True(t, stdErrors.As(wrapped, &appErr))
	assert.Equal(t, ErrorCode_EXPORT_FAILED, appErr.Code)
	assert.True(t, stdErrors.Is(wrapped, cause))
}

func TestErrorCode_String(t *testing.T) {
	assert.Equal(t, "ANALYSIS_NOT_FOUND", ErrorCode_ANALYSIS_NOT_FOUND.String())
	assert.Equal(t, "UNKNOWN", ErrorCode(42).String())

	text, err := ErrorCode_INTERNAL.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "INTERNAL", string(text))
}

func TestErrValidationFailed_CarriesFieldDetails(t *testing.T) {
	err := ErrValidationFailed(map[string]string{"duration": "must be at least 1"})

	assert.Equal(t, http.StatusBadRequest, err.HTTPCode)
	assert.Equal(t, "must be at least 1", err.Details["duration"])
}
