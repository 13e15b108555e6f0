package handler

import (
	stdErrors "errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/agrireel/content-remix/errors"
	"github.com/agrireel/content-remix/internal/adapter/dto/remix"
	"github.com/agrireel/content-remix/internal/domain/entities"
	pipelineuse "github.com/agrireel/content-remix/internal/usecase/pipeline"
)

// RemixController runs the whole pipeline in one call
type RemixController struct {
	svc    pipelineuse.Service
	logger *zap.Logger
}

// NewRemixController creates a new remix controller
func NewRemixController(svc pipelineuse.Service, logger *zap.Logger) *RemixController {
	return &RemixController{svc: svc, logger: logger}
}

// Remix validates the sources, transcribes them, generates the localized
// script and voiceover, and renders the remix. A render timeout still
// returns the partial result so the client can poll the render id.
func (rc *RemixController) Remix(c echo.Context) error {
	var req remix.RemixRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(rc.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(rc.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	var voice *entities.SpeechOptions
	if req.VoiceID != "" {
		voice = &entities.SpeechOptions{VoiceID: req.VoiceID}
	}

	result, err := rc.svc.Remix(c.Request().Context(), pipelineuse.Params{
		SourceURLs:   req.SourceURLs,
		TargetRegion: entities.Region(req.TargetRegion),
		ContentType:  entities.ContentType(req.ContentType),
		CustomPrompt: req.CustomPrompt,
		Voice:        voice,
	})
	if err != nil {
		var appErr errors.AppError
		if stdErrors.As(err, &appErr) && appErr.Code == errors.ErrorCode_RENDER_TIMED_OUT && result != nil {
			// Timed out but submitted: hand back what completed plus the id
			return c.JSON(appErr.HTTPCode, map[string]interface{}{
				"code":    appErr.Code,
				"message": appErr.Message,
				"result":  result,
			})
		}
		return HandleError(rc.logger, c, err)
	}
	return HandleSuccess(rc.logger, c, result)
}
