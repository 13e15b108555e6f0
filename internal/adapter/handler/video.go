package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/agrireel/content-remix/errors"
	"github.com/agrireel/content-remix/internal/adapter/dto/remix"
	videouse "github.com/agrireel/content-remix/internal/usecase/video"
)

// VideoController resolves video URLs and serves platform metadata
type VideoController struct {
	svc    videouse.Service
	logger *zap.Logger
}

// NewVideoController creates a new video controller
func NewVideoController(svc videouse.Service, logger *zap.Logger) *VideoController {
	return &VideoController{svc: svc, logger: logger}
}

// GetMetadata resolves a video URL and returns its platform metadata
func (vc *VideoController) GetMetadata(c echo.Context) error {
	var req remix.MetadataRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(vc.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(vc.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	asset, err := vc.svc.GetMetadata(c.Request().Context(), req.URL)
	if err != nil {
		return HandleError(vc.logger, c, err)
	}
	return HandleSuccess(vc.logger, c, asset)
}

// Validate resolves a video URL and checks it against the pipeline limits
func (vc *VideoController) Validate(c echo.Context) error {
	var req remix.MetadataRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(vc.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(vc.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	asset, err := vc.svc.ValidateForPipeline(c.Request().Context(), req.URL)
	if err != nil {
		return HandleError(vc.logger, c, err)
	}
	return HandleSuccess(vc.logger, c, asset)
}
