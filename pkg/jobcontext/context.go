package jobcontext

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type KeyContext string

var (
	keyRequestID    KeyContext = "request_id"
	keyJobID        KeyContext = "job_id"
	keyJobType      KeyContext = "job_type"
	keyJobStartTime KeyContext = "job_start_time"
)

// Job types
const (
	JobTypeMeeting   = "meeting_analysis"
	JobTypeCSVImport = "csv_import"
	JobTypeURLImport = "url_import"
)

// JobMetadata holds metadata for one analysis run
type JobMetadata struct {
	RequestID string
	JobID     uuid.UUID
	JobType   string
	StartTime time.Time
}

// WithRequestID stores the HTTP request ID in the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, keyRequestID, requestID)
}

// GetRequestID extracts the request ID from context
func GetRequestID(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(keyRequestID).(string)
	return requestID, ok
}

// JobBegin starts a job: it assigns a fresh job ID and records the start time.
// An already running job of another type keeps its ID so nested steps share it.
func JobBegin(ctx context.Context, jobType string, now time.Time) context.Context {
	if _, ok := GetJobID(ctx); !ok {
		ctx = context.WithValue(ctx, keyJobID, uuid.New())
		ctx = context.WithValue(ctx, keyJobStartTime, now)
	}
	return context.WithValue(ctx, keyJobType, jobType)
}

// GetJobID extracts job ID from context
func GetJobID(ctx context.Context) (uuid.UUID, bool) {
	jobID, ok := ctx.Value(keyJobID).(uuid.UUID)
	return jobID, ok
}

// GetJobType extracts job type from context
func GetJobType(ctx context.Context) (string, bool) {
	jobType, ok := ctx.Value(keyJobType).(string)
	return jobType, ok
}

// GetJobStartTime extracts job start time from context
func GetJobStartTime(ctx context.Context) (time.Time, bool) {
	startTime, ok := ctx.Value(keyJobStartTime).(time.Time)
	return startTime, ok
}

// GetJobMetadata extracts all job metadata from context
func GetJobMetadata(ctx context.Context) *JobMetadata {
	requestID, _ := GetRequestID(ctx)
	jobID, _ := GetJobID(ctx)
	jobType, _ := GetJobType(ctx)
	startTime, _ := GetJobStartTime(ctx)

	return &JobMetadata{
		RequestID: requestID,
		JobID:     jobID,
		JobType:   jobType,
		StartTime: startTime,
	}
}

// LogFields renders the job metadata as zap fields, skipping unset values
func LogFields(ctx context.Context, now time.Time) []zap.Field {
	meta := GetJobMetadata(ctx)

	var fields []zap.Field
	if meta.RequestID != "" {
		fields = append(fields, zap.String("request_id", meta.RequestID))
	}
	if meta.JobID != uuid.Nil {
		fields = append(fields, zap.String("job_id", meta.JobID.String()))
	}
	if meta.JobType != "" {
		fields = append(fields, zap.String("job_type", meta.JobType))
	}
	if !meta.StartTime.IsZero() {
		fields = append(fields, zap.Duration("elapsed", now.Sub(meta.StartTime)))
	}
	return fields
}
