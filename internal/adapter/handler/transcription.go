package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/agrireel/content-remix/errors"
	"github.com/agrireel/content-remix/internal/adapter/dto/remix"
	"github.com/agrireel/content-remix/internal/domain/entities"
	"github.com/agrireel/content-remix/internal/usecase/insight"
	"github.com/agrireel/content-remix/internal/usecase/transcription"
)

// TranscriptionController transcribes source videos and enriches the
// transcript with extracted insights.
type TranscriptionController struct {
	svc      transcription.Service
	insights insight.Service
	logger   *zap.Logger
}

// NewTranscriptionController creates a new transcription controller
func NewTranscriptionController(svc transcription.Service, insights insight.Service, logger *zap.Logger) *TranscriptionController {
	return &TranscriptionController{svc: svc, insights: insights, logger: logger}
}

// Transcribe returns the transcript for one video URL. Degraded results are
// 200s with the degraded flag set, not errors.
func (tc *TranscriptionController) Transcribe(c echo.Context) error {
	var req remix.TranscribeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(tc.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(tc.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	result, err := tc.svc.Transcribe(c.Request().Context(), req.URL, entities.Language(req.Language))
	if err != nil {
		return HandleError(tc.logger, c, err)
	}
	if tc.insights != nil {
		tc.insights.Enrich(c.Request().Context(), result)
	}
	return HandleSuccess(tc.logger, c, result)
}

// ExtractInsights extracts short agricultural insights from free text
func (tc *TranscriptionController) ExtractInsights(c echo.Context) error {
	var req remix.InsightsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(tc.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(tc.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	insights := tc.insights.Extract(c.Request().Context(), req.Text)
	return HandleSuccess(tc.logger, c, map[string]interface{}{"insights": insights})
}
