package handler

import (
	"context"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/agrireel/content-remix/errors"
)

// AssetStore exposes the object storage operations the admin endpoints need
type AssetStore interface {
	ListFiles(ctx context.Context, prefix string) ([]string, error)
	GetBucketInfo(ctx context.Context) (map[string]interface{}, error)
}

// StorageController serves read-only views of the voiceover asset bucket
type StorageController struct {
	store  AssetStore
	logger *zap.Logger
}

// NewStorageController creates a new storage controller
func NewStorageController(store AssetStore, logger *zap.Logger) *StorageController {
	return &StorageController{store: store, logger: logger}
}

// Info reports bucket health and object counts
func (sc *StorageController) Info(c echo.Context) error {
	info, err := sc.store.GetBucketInfo(c.Request().Context())
	if err != nil {
		return HandleError(sc.logger, c, errors.ErrStorageFailed("bucket info", err))
	}
	return HandleSuccess(sc.logger, c, info)
}

// ListAssets lists stored objects, optionally under a prefix
func (sc *StorageController) ListAssets(c echo.Context) error {
	prefix := c.QueryParam("prefix")
	files, err := sc.store.ListFiles(c.Request().Context(), prefix)
	if err != nil {
		return HandleError(sc.logger, c, errors.ErrStorageFailed("list files", err))
	}
	return HandleSuccess(sc.logger, c, map[string]interface{}{
		"prefix": prefix,
		"files":  files,
		"count":  len(files),
	})
}
