package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-scorecard/internal/adapter/repository"
	"github.com/johnquangdev/meeting-scorecard/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-scorecard/internal/infrastructure/external/source"
	analysisuc "github.com/johnquangdev/meeting-scorecard/internal/usecase/analysis"
	"github.com/johnquangdev/meeting-scorecard/pkg/config"
	pkgvalidator "github.com/johnquangdev/meeting-scorecard/pkg/validator"
)

const testCSV = `Meeting_Title,Duration_Minutes,Participants,Actual_Speakers,Decision_Made,Agenda_Provided,Follow_Up_Sent,Could_Be_Async
Status Sync,60,10,2,No,No,No,Yes
Design Review,45,4,4,Yes,Yes,Yes,No
`

type fakeFetcher struct {
	body string
	err  error
}

func (f fakeFetcher) Fetch(context.Context, string) (string, error) {
	return f.body, f.err
}

type envelope struct {
	Code    interface{}       `json:"code"`
	Message string            `json:"message"`
	Info    string            `json:"info"`
	Details map[string]string `json:"details"`
	Data    json.RawMessage   `json:"data"`
}

func newTestServer(t *testing.T, fetcher analysisuc.Fetcher) *echo.Echo {
	t.Helper()

	store := cache.NewMemoryStore()
	t.Cleanup(func() { store.Close() })

	svc := analysisuc.NewAnalysisService(
		repository.NewBatchResultRepository(store),
		fetcher,
		nil,
		analysisuc.Options{ResultTTL: time.Hour, DemoCSVURL: "https://example.com/demo.csv"},
		zap.NewNop(),
	)

	e := echo.New()
	e.Validator = pkgvalidator.New()
	cfg := &config.Config{}
	cfg.Cache.Driver = "memory"
	NewRouter(cfg, NewAnalysisHandler(svc, 1<<20, zap.NewNop()), NewStorageHandler(nil, zap.NewNop())).Setup(e)
	return e
}

func do(e *echo.Echo, method, path, contentType string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func TestAnalyzeMeeting_OK(t *testing.T) {
	e := newTestServer(t, nil)

	body := `{"title":"Sprint Planning","date":"2025-04-25","duration":30,"meeting_type":"sprint-planning",
		"total_participants":4,"active_participants":4,"had_agenda":true,"decisions_count":3,
		"action_items_count":2,"follow_up_sent":true,"could_be_async":"no"}`
	rec := do(e, http.MethodPost, "/v1/meetings/analyze", echo.MIMEApplicationJSON, []byte(body))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var data struct {
		Title            string `json:"title"`
		Date             string `json:"date"`
		Score            int    `json:"score"`
		Classification   string `json:"classification"`
		MeetingTypeLabel string `json:"meeting_type_label"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))
	assert.Equal(t, "April 25, 2025", data.Date)
	assert.Equal(t, 90, data.Score)
	assert.Equal(t, "Excellent", data.Classification)
	assert.Equal(t, "Sprint Planning", data.MeetingTypeLabel)
}

func TestAnalyzeMeeting_ValidationFailed(t *testing.T) {
	e := newTestServer(t, nil)

	rec := do(e, http.MethodPost, "/v1/meetings/analyze", echo.MIMEApplicationJSON,
		[]byte(`{"title":"x","could_be_async":"maybe","decisions_count":-1}`))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	env := decode(t, rec)
	assert.Equal(t, "ANALYSIS_VALIDATION_FAILED", env.Code)
	assert.Contains(t, env.Details, "could_be_async")
	assert.Contains(t, env.Details, "decisions_count")
}

func TestAnalyzeMeeting_InvalidPayload(t *testing.T) {
	e := newTestServer(t, nil)

	rec := do(e, http.MethodPost, "/v1/meetings/analyze", echo.MIMEApplicationJSON, []byte(`{"title":`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_PAYLOAD", decode(t, rec).Code)
}

func TestImportCSV_RawBodyThenExport(t *testing.T) {
	e := newTestServer(t, nil)

	rec := do(e, http.MethodPost, "/v1/imports/csv", "text/csv", []byte(testCSV))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var batch struct {
		ID            string `json:"id"`
		TotalMeetings int    `json:"total_meetings"`
		Links         struct {
			Export string `json:"export"`
		} `json:"links"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &batch))
	require.NotEmpty(t, batch.ID)
	assert.Equal(t, 2, batch.TotalMeetings)

	rec = do(e, http.MethodGet, batch.Links.Export, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="meeting-analysis-results.json"`, rec.Header().Get(echo.HeaderContentDisposition))

	parsed, err := analysisuc.ParseExport(rec.Body.Bytes())
	require.NoError(t, err)
	assert.Len(t, parsed.Meetings, 2)
	assert.Equal(t, batch.ID, parsed.ID)

	rec = do(e, http.MethodGet, "/v1/imports/"+batch.ID, "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestImportCSV_Multipart(t *testing.T) {
	e := newTestServer(t, nil)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", "meetings.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(testCSV))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	rec := do(e, http.MethodPost, "/v1/imports/csv", w.FormDataContentType(), buf.Bytes())
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestImportCSV_Empty(t *testing.T) {
	e := newTestServer(t, nil)

	rec := do(e, http.MethodPost, "/v1/imports/csv", "text/csv", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "ANALYSIS_SOURCE_EMPTY", decode(t, rec).Code)
}

func TestImportURL(t *testing.T) {
	e := newTestServer(t, fakeFetcher{body: testCSV})

	rec := do(e, http.MethodPost, "/v1/imports/url", echo.MIMEApplicationJSON,
		[]byte(`{"url":"https://example.com/meetings.csv"}`))
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(e, http.MethodPost, "/v1/imports/url", echo.MIMEApplicationJSON, []byte(`{"url":"not a url"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestImportURL_FetchFailed(t *testing.T) {
	e := newTestServer(t, fakeFetcher{err: &source.StatusError{StatusCode: 404, StatusText: "Not Found"}})

	rec := do(e, http.MethodPost, "/v1/imports/demo", "", nil)
	require.Equal(t, http.StatusBadGateway, rec.Code)

	env := decode(t, rec)
	assert.Equal(t, "INTEGRATION_SOURCE_FETCH_FAILED", env.Code)
	assert.Equal(t, "Failed to fetch file: Not Found", env.Message)
}

func TestGetImport_NotFound(t *testing.T) {
	e := newTestServer(t, nil)

	rec := do(e, http.MethodGet, "/v1/imports/unknown", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ANALYSIS_NOT_FOUND", decode(t, rec).Code)
}

func TestPublishImport_StorageDisabled(t *testing.T) {
	e := newTestServer(t, nil)

	rec := do(e, http.MethodPost, "/v1/imports/csv", "text/csv", []byte(testCSV))
	require.Equal(t, http.StatusOK, rec.Code)
	var batch struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &batch))

	rec = do(e, http.MethodPost, "/v1/imports/"+batch.ID+"/publish", "", nil)
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
	assert.Equal(t, "INTEGRATION_STORAGE_DISABLED", decode(t, rec).Code)

	rec = do(e, http.MethodGet, "/v1/storage/info", "", nil)
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}

func TestCatalogAndHealth(t *testing.T) {
	e := newTestServer(t, nil)

	rec := do(e, http.MethodGet, "/v1/catalog", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `"sprint-planning"`))

	rec = do(e, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"status":"ok","service":"meeting-scorecard","components":{"environment":"","cache":"memory","storage":"disabled"}}`,
		rec.Body.String())
}
