package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/johnquangdev/meeting-scorecard/internal/domain/entities"
	"github.com/johnquangdev/meeting-scorecard/internal/domain/repositories"
	"github.com/johnquangdev/meeting-scorecard/internal/infrastructure/cache"
)

const batchKeyPrefix = "batch:"

// batchResultRepository implements the BatchResultRepository interface
type batchResultRepository struct {
	store cache.Store
}

// NewBatchResultRepository creates a new batch result repository
func NewBatchResultRepository(store cache.Store) repositories.BatchResultRepository {
	return &batchResultRepository{store: store}
}

// Save stores a batch result as JSON
func (r *batchResultRepository) Save(ctx context.Context, result *entities.BatchResult, ttl time.Duration) error {
	if result == nil || result.ID == "" {
		return fmt.Errorf("batch result requires an id")
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal batch result: %w", err)
	}
	return r.store.Set(ctx, batchKeyPrefix+result.ID, string(payload), ttl)
}

// FindByID retrieves a batch result by its ID
func (r *batchResultRepository) FindByID(ctx context.Context, id string) (*entities.BatchResult, error) {
	payload, ok, err := r.store.Get(ctx, batchKeyPrefix+id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, entities.ErrBatchNotFound
	}

	var result entities.BatchResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, fmt.Errorf("unmarshal batch result %s: %w", id, err)
	}
	return &result, nil
}

// Delete removes a batch result
func (r *batchResultRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, batchKeyPrefix+id)
}
