package handler

import (
	"context"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-scorecard/errors"
)

// ExportStore is the read side of the export bucket
type ExportStore interface {
	GetBucketInfo(ctx context.Context) (map[string]interface{}, error)
	ListExports(ctx context.Context) ([]string, error)
}

// Storage handles object storage inspection endpoints
type Storage struct {
	store  ExportStore
	logger *zap.Logger
}

// NewStorageHandler creates a new storage handler. store may be nil when
// object storage is disabled.
func NewStorageHandler(store ExportStore, logger *zap.Logger) *Storage {
	return &Storage{store: store, logger: logger}
}

// BucketInfo returns information about the export bucket
// @Summary      Export bucket info
// @Description  Get information about the export bucket and connection status
// @Tags         Storage
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "Bucket info"
// @Failure      500  {object}  map[string]interface{}  "Failed to get bucket info"
// @Failure      501  {object}  map[string]interface{}  "Object storage disabled"
// @Router       /storage/info [get]
func (h *Storage) BucketInfo(c echo.Context) error {
	if h.store == nil {
		return HandleError(h.logger, c, errors.ErrStorageDisabled())
	}

	info, err := h.store.GetBucketInfo(requestContext(c))
	if err != nil {
		if h.logger != nil {
			h.logger.Error("failed to get bucket info", zap.Error(err))
		}
		return HandleError(h.logger, c, errors.ErrStorageFailed("bucket info", err))
	}

	return HandleSuccess(h.logger, c, info)
}

// ListExports lists published export documents
// @Summary      List published exports
// @Description  List every export document published to the bucket
// @Tags         Storage
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "Export list"
// @Failure      500  {object}  map[string]interface{}  "Failed to list exports"
// @Failure      501  {object}  map[string]interface{}  "Object storage disabled"
// @Router       /storage/exports [get]
func (h *Storage) ListExports(c echo.Context) error {
	if h.store == nil {
		return HandleError(h.logger, c, errors.ErrStorageDisabled())
	}

	files, err := h.store.ListExports(requestContext(c))
	if err != nil {
		if h.logger != nil {
			h.logger.Error("failed to list exports", zap.Error(err))
		}
		return HandleError(h.logger, c, errors.ErrStorageFailed("list", err))
	}

	if h.logger != nil {
		h.logger.Info("exports listed", zap.Int("count", len(files)))
	}

	return HandleSuccess(h.logger, c, map[string]interface{}{
		"files": files,
		"count": len(files),
	})
}
