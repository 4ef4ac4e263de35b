package analysis

import (
	"context"
	stdErrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-scorecard/errors"
	"github.com/johnquangdev/meeting-scorecard/internal/adapter/repository"
	"github.com/johnquangdev/meeting-scorecard/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-scorecard/internal/infrastructure/external/source"
	"github.com/johnquangdev/meeting-scorecard/internal/usecase/ingest"
)

type stubFetcher struct {
	body  string
	err   error
	calls int
	urls  []string
}

func (f *stubFetcher) Fetch(_ context.Context, url string) (string, error) {
	f.calls++
	f.urls = append(f.urls, url)
	return f.body, f.err
}

type stubPublisher struct {
	document []byte
	fileName string
	err      error
}

func (p *stubPublisher) PublishExport(_ context.Context, id, fileName string, document []byte) (string, error) {
	p.document = document
	p.fileName = fileName
	if p.err != nil {
		return "", p.err
	}
	return "https://files.example.com/exports/" + id, nil
}

func newTestService(t *testing.T, fetcher Fetcher, publisher Publisher, opts Options) Service {
	t.Helper()
	store := cache.NewMemoryStore()
	t.Cleanup(func() { store.Close() })
	if opts.ResultTTL == 0 {
		opts.ResultTTL = time.Hour
	}
	return NewAnalysisService(repository.NewBatchResultRepository(store), fetcher, publisher, opts, nil)
}

func appCode(t *testing.T, err error) errors.ErrorCode {
	t.Helper()
	var appErr errors.AppError
	require.True(t, stdErrors.As(err, &appErr), "expected AppError, got %v", err)
	return appErr.Code
}

func TestService_AnalyzeMeeting(t *testing.T) {
	today := time.Date(2025, 4, 25, 0, 0, 0, 0, time.UTC)
	svc := newTestService(t, nil, nil, Options{Now: func() time.Time { return today }})

	got, err := svc.AnalyzeMeeting(context.Background(), ingest.ManualInput{})
	require.NoError(t, err)

	assert.Equal(t, "Untitled Meeting", got.Title)
	assert.Equal(t, "April 25, 2025", got.Date)
	assert.NotEmpty(t, got.Recommendations)
}

func TestService_AnalyzeMeetingHonoursCancellation(t *testing.T) {
	svc := newTestService(t, nil, nil, Options{Delay: time.Minute})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := svc.AnalyzeMeeting(ctx, ingest.ManualInput{Title: "Slow"})
	assert.Equal(t, errors.ErrorCode_ANALYSIS_CANCELLED, appCode(t, err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestService_AnalyzeCSVThenExport(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, nil, nil, Options{})

	batch, err := svc.AnalyzeCSV(ctx, sampleCSV)
	require.NoError(t, err)
	require.NotEmpty(t, batch.ID)

	cached, err := svc.GetBatch(ctx, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, batch, cached)

	document, err := svc.Export(ctx, batch.ID)
	require.NoError(t, err)
	parsed, err := ParseExport(document)
	require.NoError(t, err)
	assert.Len(t, parsed.Meetings, 2)
}

func TestService_AnalyzeCSVRejectsEmptyAndOversized(t *testing.T) {
	svc := newTestService(t, nil, nil, Options{MaxCSVBytes: 32})

	_, err := svc.AnalyzeCSV(context.Background(), "  \n ")
	assert.Equal(t, errors.ErrorCode_ANALYSIS_SOURCE_EMPTY, appCode(t, err))

	_, err = svc.AnalyzeCSV(context.Background(), sampleCSV)
	assert.Equal(t, errors.ErrorCode_ANALYSIS_SOURCE_TOO_LARGE, appCode(t, err))
}

func TestService_GetBatchUnknownID(t *testing.T) {
	svc := newTestService(t, nil, nil, Options{})

	_, err := svc.GetBatch(context.Background(), "missing")
	assert.Equal(t, errors.ErrorCode_ANALYSIS_NOT_FOUND, appCode(t, err))

	_, err = svc.Export(context.Background(), "missing")
	assert.Equal(t, errors.ErrorCode_ANALYSIS_NOT_FOUND, appCode(t, err))
}

func TestService_ImportFromURL(t *testing.T) {
	fetcher := &stubFetcher{body: sampleCSV}
	svc := newTestService(t, fetcher, nil, Options{})

	batch, err := svc.ImportFromURL(context.Background(), "https://example.com/meetings.csv")
	require.NoError(t, err)
	assert.Len(t, batch.Meetings, 2)
	assert.Equal(t, 1, fetcher.calls)
}

func TestService_ImportFromURLFetchFailureIsNotRetried(t *testing.T) {
	fetcher := &stubFetcher{err: &source.StatusError{StatusCode: 404, StatusText: "Not Found"}}
	svc := newTestService(t, fetcher, nil, Options{})

	_, err := svc.ImportFromURL(context.Background(), "https://example.com/missing.csv")
	require.Error(t, err)

	var appErr errors.AppError
	require.True(t, stdErrors.As(err, &appErr))
	assert.Equal(t, errors.ErrorCode_INTEGRATION_SOURCE_FETCH_FAILED, appErr.Code)
	assert.Equal(t, "Failed to fetch file: Not Found", appErr.Message)
	assert.Equal(t, 1, fetcher.calls)
}

func TestService_ImportDemoUsesConfiguredURL(t *testing.T) {
	fetcher := &stubFetcher{body: sampleCSV}
	svc := newTestService(t, fetcher, nil, Options{DemoCSVURL: "https://example.com/demo.csv"})

	_, err := svc.ImportDemo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/demo.csv"}, fetcher.urls)

	noDemo := newTestService(t, fetcher, nil, Options{})
	_, err = noDemo.ImportDemo(context.Background())
	assert.Equal(t, errors.ErrorCode_NOT_IMPLEMENTED, appCode(t, err))
}

func TestService_Publish(t *testing.T) {
	ctx := context.Background()

	disabled := newTestService(t, nil, nil, Options{})
	_, err := disabled.Publish(ctx, "any")
	assert.Equal(t, errors.ErrorCode_INTEGRATION_STORAGE_DISABLED, appCode(t, err))

	publisher := &stubPublisher{}
	svc := newTestService(t, nil, publisher, Options{})
	batch, err := svc.AnalyzeCSV(ctx, sampleCSV)
	require.NoError(t, err)

	link, err := svc.Publish(ctx, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://files.example.com/exports/"+batch.ID, link)
	assert.NotEmpty(t, publisher.document)
	assert.Equal(t, ExportFileName, publisher.fileName)

	publisher.err = stdErrors.New("bucket unavailable")
	_, err = svc.Publish(ctx, batch.ID)
	assert.Equal(t, errors.ErrorCode_INTEGRATION_STORAGE_FAILED, appCode(t, err))
}
