package repositories

import (
	"context"
	"time"

	"github.com/johnquangdev/meeting-scorecard/internal/domain/entities"
)

// BatchResultRepository defines the interface for short-lived batch result storage
type BatchResultRepository interface {
	// Save stores a batch result under its ID for the given time-to-live
	Save(ctx context.Context, result *entities.BatchResult, ttl time.Duration) error

	// FindByID retrieves a batch result, returning entities.ErrBatchNotFound when absent or expired
	FindByID(ctx context.Context, id string) (*entities.BatchResult, error)

	// Delete removes a batch result
	Delete(ctx context.Context, id string) error
}
