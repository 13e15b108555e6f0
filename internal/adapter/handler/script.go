package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/agrireel/content-remix/errors"
	"github.com/agrireel/content-remix/internal/adapter/dto/remix"
	"github.com/agrireel/content-remix/internal/domain/entities"
	scriptuse "github.com/agrireel/content-remix/internal/usecase/script"
)

// ScriptController generates localized voiceover scripts
type ScriptController struct {
	svc    scriptuse.Service
	logger *zap.Logger
}

// NewScriptController creates a new script controller
func NewScriptController(svc scriptuse.Service, logger *zap.Logger) *ScriptController {
	return &ScriptController{svc: svc, logger: logger}
}

// Generate produces a localized script from insights and transcript text
func (sc *ScriptController) Generate(c echo.Context) error {
	var req remix.ScriptRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(sc.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(sc.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	result, err := sc.svc.Generate(c.Request().Context(), scriptuse.Params{
		Insights:      req.Insights,
		Transcription: req.Transcription,
		TargetRegion:  entities.Region(req.TargetRegion),
		ContentType:   entities.ContentType(req.ContentType),
		CustomPrompt:  req.CustomPrompt,
	})
	if err != nil {
		return HandleError(sc.logger, c, err)
	}
	return HandleSuccess(sc.logger, c, result)
}
