package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/agrireel/content-remix/errors"
	"github.com/agrireel/content-remix/internal/adapter/dto/remix"
	renderuse "github.com/agrireel/content-remix/internal/usecase/render"
)

// RenderController submits remix renders and reports their progress
type RenderController struct {
	svc    renderuse.Service
	logger *zap.Logger
}

// NewRenderController creates a new render controller
func NewRenderController(svc renderuse.Service, logger *zap.Logger) *RenderController {
	return &RenderController{svc: svc, logger: logger}
}

// Submit queues a render of the given media URLs. With wait set the call
// blocks until the render reaches a terminal state.
func (rc *RenderController) Submit(c echo.Context) error {
	var req remix.RenderRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(rc.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(rc.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	if req.Wait {
		job, err := rc.svc.RenderAndWait(c.Request().Context(), req.VideoURLs, req.AudioURL)
		if err != nil {
			return HandleError(rc.logger, c, err)
		}
		return HandleSuccess(rc.logger, c, job)
	}

	job, err := rc.svc.Render(c.Request().Context(), req.VideoURLs, req.AudioURL)
	if err != nil {
		return HandleError(rc.logger, c, err)
	}
	return HandleSuccess(rc.logger, c, job)
}

// Status reports the current state of a submitted render
func (rc *RenderController) Status(c echo.Context) error {
	renderID := c.Param("id")
	if renderID == "" {
		return HandleError(rc.logger, c, errors.ErrInvalidArgument("render id is required"))
	}

	job, err := rc.svc.CheckStatus(c.Request().Context(), renderID)
	if err != nil {
		return HandleError(rc.logger, c, err)
	}
	return HandleSuccess(rc.logger, c, job)
}
