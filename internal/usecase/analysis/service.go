package analysis

import (
	"context"
	stdErrors "errors"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-scorecard/errors"
	"github.com/johnquangdev/meeting-scorecard/internal/domain/entities"
	"github.com/johnquangdev/meeting-scorecard/internal/domain/repositories"
	"github.com/johnquangdev/meeting-scorecard/internal/infrastructure/external/source"
	"github.com/johnquangdev/meeting-scorecard/internal/usecase/ingest"
	"github.com/johnquangdev/meeting-scorecard/pkg/jobcontext"
)

// Service defines the interface for the meeting analysis use case
type Service interface {
	// AnalyzeMeeting scores one manually entered meeting
	AnalyzeMeeting(ctx context.Context, input ingest.ManualInput) (*entities.AnalysisResult, error)

	// AnalyzeCSV scores a CSV document and keeps the result for export
	AnalyzeCSV(ctx context.Context, text string) (*entities.BatchResult, error)

	// ImportFromURL downloads a CSV document and analyzes it
	ImportFromURL(ctx context.Context, url string) (*entities.BatchResult, error)

	// ImportDemo analyzes the bundled sample data set
	ImportDemo(ctx context.Context) (*entities.BatchResult, error)

	// GetBatch returns a previously analyzed batch
	GetBatch(ctx context.Context, id string) (*entities.BatchResult, error)

	// Export renders a batch as the downloadable JSON document
	Export(ctx context.Context, id string) ([]byte, error)

	// Publish uploads the export to object storage and returns a download link
	Publish(ctx context.Context, id string) (string, error)
}

// Fetcher downloads a remote CSV document
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Publisher stores an export document under fileName and returns a link to it
type Publisher interface {
	PublishExport(ctx context.Context, id, fileName string, document []byte) (string, error)
}

// Options tunes the analysis service
type Options struct {
	// Delay is waited before every single-meeting analysis
	Delay       time.Duration
	MaxCSVBytes int64
	QuotedCSV   bool
	DemoCSVURL  string
	ResultTTL   time.Duration
	Now         func() time.Time
}

type service struct {
	batches   repositories.BatchResultRepository
	fetcher   Fetcher
	publisher Publisher
	opts      Options
	logger    *zap.Logger
}

// NewAnalysisService creates a new analysis service. publisher may be nil
// when object storage is disabled.
func NewAnalysisService(
	batches repositories.BatchResultRepository,
	fetcher Fetcher,
	publisher Publisher,
	opts Options,
	logger *zap.Logger,
) Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		batches:   batches,
		fetcher:   fetcher,
		publisher: publisher,
		opts:      opts,
		logger:    logger,
	}
}

// AnalyzeMeeting scores one manually entered meeting after the configured delay
func (s *service) AnalyzeMeeting(ctx context.Context, input ingest.ManualInput) (*entities.AnalysisResult, error) {
	ctx = jobcontext.JobBegin(ctx, jobcontext.JobTypeMeeting, s.opts.Now())
	if err := wait(ctx, s.opts.Delay); err != nil {
		return nil, errors.ErrAnalysisCancelled(err)
	}

	result := AnalyzeInput(input, s.opts.Now())

	s.log(ctx).Info("meeting analyzed",
		zap.String("title", result.Title),
		zap.Int("score", result.Score),
		zap.String("classification", string(result.Classification)),
		zap.Int("recommendations", len(result.Recommendations)),
	)
	return result, nil
}

// AnalyzeCSV scores a CSV document and caches the batch under a new ID
func (s *service) AnalyzeCSV(ctx context.Context, text string) (*entities.BatchResult, error) {
	ctx = jobcontext.JobBegin(ctx, jobcontext.JobTypeCSVImport, s.opts.Now())
	if s.opts.MaxCSVBytes > 0 && int64(len(text)) > s.opts.MaxCSVBytes {
		return nil, errors.ErrSourceTooLarge(s.opts.MaxCSVBytes)
	}

	result, err := AnalyzeText(text, s.opts.QuotedCSV)
	if stdErrors.Is(err, entities.ErrEmptySource) {
		return nil, errors.ErrSourceEmpty()
	}
	if err != nil {
		return nil, errors.ErrInvalidArgument("Malformed CSV document").WithDetail("csv", err.Error())
	}
	if result.Skipped > 0 {
		s.log(ctx).Debug("csv rows skipped", zap.Int("skipped", result.Skipped))
	}

	jobID, _ := jobcontext.GetJobID(ctx)
	result.ID = jobID.String()
	if err := s.batches.Save(ctx, result, s.opts.ResultTTL); err != nil {
		s.log(ctx).Error("❌ Failed to cache batch result", zap.Error(err))
		return nil, errors.ErrCacheFailed("save", err)
	}

	s.log(ctx).Info("batch analyzed",
		zap.Int("meetings", len(result.Meetings)),
		zap.Int("skipped", result.Skipped),
		zap.Float64("average_score", result.Summary.AverageScore),
	)
	return result, nil
}

// ImportFromURL downloads a CSV document with a single attempt and analyzes it
func (s *service) ImportFromURL(ctx context.Context, url string) (*entities.BatchResult, error) {
	if s.fetcher == nil {
		return nil, errors.ErrNotImplemented("url import")
	}

	ctx = jobcontext.JobBegin(ctx, jobcontext.JobTypeURLImport, s.opts.Now())
	text, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		s.log(ctx).Warn("csv fetch failed", zap.String("url", url), zap.Error(err))

		var statusErr *source.StatusError
		switch {
		case stdErrors.Is(err, source.ErrTooLarge):
			return nil, errors.ErrSourceTooLarge(s.opts.MaxCSVBytes)
		case stdErrors.As(err, &statusErr):
			appErr := errors.ErrSourceFetchFailed(url, err)
			appErr.Message = statusErr.Error()
			return nil, appErr
		case stdErrors.Is(err, context.Canceled), stdErrors.Is(err, context.DeadlineExceeded):
			if ctx.Err() != nil {
				return nil, errors.ErrAnalysisCancelled(err)
			}
		}
		return nil, errors.ErrSourceFetchFailed(url, err)
	}

	return s.AnalyzeCSV(ctx, text)
}

// ImportDemo analyzes the configured sample data set
func (s *service) ImportDemo(ctx context.Context) (*entities.BatchResult, error) {
	if s.opts.DemoCSVURL == "" {
		return nil, errors.ErrNotImplemented("demo import")
	}
	return s.ImportFromURL(ctx, s.opts.DemoCSVURL)
}

// GetBatch returns a cached batch result
func (s *service) GetBatch(ctx context.Context, id string) (*entities.BatchResult, error) {
	result, err := s.batches.FindByID(ctx, id)
	if err != nil {
		if stdErrors.Is(err, entities.ErrBatchNotFound) {
			return nil, errors.ErrAnalysisNotFound(id)
		}
		return nil, errors.ErrCacheFailed("get", err)
	}
	return result, nil
}

// Export renders a cached batch as indented JSON
func (s *service) Export(ctx context.Context, id string) ([]byte, error) {
	result, err := s.GetBatch(ctx, id)
	if err != nil {
		return nil, err
	}
	document, err := MarshalExport(result)
	if err != nil {
		return nil, errors.ErrExportFailed(err)
	}
	return document, nil
}

// Publish uploads the export of a cached batch and returns its download link
func (s *service) Publish(ctx context.Context, id string) (string, error) {
	if s.publisher == nil {
		return "", errors.ErrStorageDisabled()
	}

	document, err := s.Export(ctx, id)
	if err != nil {
		return "", err
	}

	link, err := s.publisher.PublishExport(ctx, id, ExportFileName, document)
	if err != nil {
		s.log(ctx).Error("❌ Failed to publish export",
			zap.String("batch_id", id),
			zap.Error(err),
		)
		return "", errors.ErrStorageFailed("publish", err)
	}

	s.log(ctx).Info("export published", zap.String("batch_id", id))
	return link, nil
}

// log returns the service logger annotated with the request and job carried by ctx
func (s *service) log(ctx context.Context) *zap.Logger {
	return s.logger.With(jobcontext.LogFields(ctx, s.opts.Now())...)
}

// wait blocks for d or until ctx ends
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
