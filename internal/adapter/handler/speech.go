package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/agrireel/content-remix/errors"
	"github.com/agrireel/content-remix/internal/adapter/dto/remix"
	"github.com/agrireel/content-remix/internal/domain/entities"
	speechuse "github.com/agrireel/content-remix/internal/usecase/speech"
)

// SpeechController synthesizes voiceovers and lists available voices
type SpeechController struct {
	svc    speechuse.Service
	logger *zap.Logger
}

// NewSpeechController creates a new speech controller
func NewSpeechController(svc speechuse.Service, logger *zap.Logger) *SpeechController {
	return &SpeechController{svc: svc, logger: logger}
}

// Synthesize converts script text into voiceover audio. Provider failures
// come back as 200s with success false so the client can still render.
func (sc *SpeechController) Synthesize(c echo.Context) error {
	var req remix.SpeechRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(sc.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(sc.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	var opts *entities.SpeechOptions
	if req.VoiceID != "" || req.Stability != 0 || req.SimilarityBoost != 0 || req.Style != 0 {
		opts = &entities.SpeechOptions{
			VoiceID:         req.VoiceID,
			Stability:       req.Stability,
			SimilarityBoost: req.SimilarityBoost,
			Style:           req.Style,
		}
	}

	result, err := sc.svc.Synthesize(c.Request().Context(), req.Text, entities.Region(req.Region), opts)
	if err != nil {
		return HandleError(sc.logger, c, err)
	}
	return HandleSuccess(sc.logger, c, result)
}

// ListVoices returns the curated voice catalog plus, when the provider is
// reachable, its full voice inventory. A provider failure degrades to the
// catalog alone.
func (sc *SpeechController) ListVoices(c echo.Context) error {
	payload := map[string]interface{}{"voices": sc.svc.Voices()}
	if provider, err := sc.svc.ProviderVoices(c.Request().Context()); err == nil && len(provider) > 0 {
		payload["provider_voices"] = provider
	}
	return HandleSuccess(sc.logger, c, payload)
}
