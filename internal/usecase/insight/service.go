// Package insight extracts short agricultural insights from transcript
// text with a language model.
package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/agrireel/content-remix/internal/domain/entities"
)

const systemPrompt = "You are a South East Asian linguist specializing in agriculture. " +
	"one insight must has no more than 3 words " +
	"insights must be of string array"

// Completer generates a JSON completion for a prompt
type Completer interface {
	GenerateJSON(ctx context.Context, model, system, prompt string, temperature float64, maxTokens int) (string, error)
}

// Service extracts insights from transcripts
type Service interface {
	Extract(ctx context.Context, text string) []string
	Enrich(ctx context.Context, result *entities.TranscriptionResult)
}

type insightService struct {
	completer Completer
	model     string
	logger    *zap.Logger
}

// NewService constructs the insight extraction service
func NewService(completer Completer, model string, logger *zap.Logger) Service {
	return &insightService{
		completer: completer,
		model:     model,
		logger:    logger,
	}
}

type insightPayload struct {
	Insights []string `json:"insights"`
}

// Extract asks the model for insights in the given text. Best effort: any
// failure yields an empty slice, never an error, so the pipeline continues
// without insights rather than stopping.
func (s *insightService) Extract(ctx context.Context, text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	prompt := fmt.Sprintf("Extract agricultural insights from the following text:\n\"\"\"%s\"\"\"", text)
	raw, err := s.completer.GenerateJSON(ctx, s.model, systemPrompt, prompt, 0.3, 500)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("⚠️ Insight extraction failed", zap.Error(err))
		}
		return []string{}
	}

	var payload insightPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		if s.logger != nil {
			s.logger.Warn("⚠️ Insight response was not valid JSON", zap.Error(err))
		}
		return []string{}
	}
	if payload.Insights == nil {
		return []string{}
	}

	if s.logger != nil {
		s.logger.Info("✅ Insights extracted", zap.Int("count", len(payload.Insights)))
	}
	return payload.Insights
}

// Enrich fills the transcript's insights in place when it has none.
// Degraded transcripts already carry canned insights and are left alone.
func (s *insightService) Enrich(ctx context.Context, result *entities.TranscriptionResult) {
	if result == nil || len(result.Insights) > 0 {
		return
	}
	result.Insights = s.Extract(ctx, result.Text)
}
