// Package script generates localized short-form voiceover scripts from
// transcripts and insights.
package script

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/agrireel/content-remix/errors"
	"github.com/agrireel/content-remix/internal/domain/entities"
)

// regionContexts frames the prompt for each supported market. Unknown
// regions fall back to the Philippines context.
var regionContexts = map[entities.Region]entities.RegionContext{
	entities.RegionPhilippines: {
		Language:      "Filipino-English mix (Taglish)",
		CulturalNotes: "Use familiar Filipino greetings, reference local farming practices, include Tagalog terms naturally",
		Audience:      "Filipino smallholder rice farmers",
	},
	entities.RegionVietnam: {
		Language:      "Vietnamese with English agricultural terms",
		CulturalNotes: "Reference Vietnamese farming traditions, use respectful tone",
		Audience:      "Vietnamese smallholder farmers",
	},
	entities.RegionMalaysia: {
		Language:      "Malay-English mix",
		CulturalNotes: "Include Malaysian farming context, use familiar local terms",
		Audience:      "Malaysian smallholder farmers",
	},
}

var regionLanguages = map[entities.Region]entities.Language{
	entities.RegionPhilippines: entities.LanguageFilipino,
	entities.RegionVietnam:     entities.LanguageVietnamese,
	entities.RegionMalaysia:    entities.LanguageMalay,
}

// Params describes one script generation request
type Params struct {
	Insights      []string
	Transcription string
	TargetRegion  entities.Region
	ContentType   entities.ContentType
	CustomPrompt  string
}

// Completer generates a text completion for a prompt
type Completer interface {
	GenerateText(ctx context.Context, model, system, prompt string, temperature float64, maxTokens int) (string, error)
}

// Service generates localized scripts
type Service interface {
	Generate(ctx context.Context, params Params) (*entities.GeneratedScript, error)
}

type scriptService struct {
	completer Completer
	model     string
	logger    *zap.Logger
}

// NewService constructs the script generation service
func NewService(completer Completer, model string, logger *zap.Logger) Service {
	return &scriptService{
		completer: completer,
		model:     model,
		logger:    logger,
	}
}

// ContextForRegion returns the prompt framing for a region, defaulting to
// the Philippines for unknown values.
func ContextForRegion(region entities.Region) entities.RegionContext {
	if ctx, ok := regionContexts[region]; ok {
		return ctx
	}
	return regionContexts[entities.RegionPhilippines]
}

// LanguageForRegion maps a region to its output language tag
func LanguageForRegion(region entities.Region) entities.Language {
	if lang, ok := regionLanguages[region]; ok {
		return lang
	}
	return entities.LanguageFilipino
}

// Generate builds the localized script. An empty model completion is an
// error: there is no degraded script, the caller must retry or stop.
func (s *scriptService) Generate(ctx context.Context, params Params) (*entities.GeneratedScript, error) {
	regionCtx := ContextForRegion(params.TargetRegion)
	language := LanguageForRegion(params.TargetRegion)

	system := buildSystemPrompt(regionCtx)
	prompt := buildUserPrompt(params)

	if s.logger != nil {
		s.logger.Info("📝 Generating script",
			zap.String("region", string(params.TargetRegion)),
			zap.String("content_type", string(params.ContentType)),
			zap.String("language", string(language)),
		)
	}

	text, err := s.completer.GenerateText(ctx, s.model, system, prompt, 0.7, 800)
	if err != nil {
		return nil, apperrors.ErrScriptGenerationFailed(err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.ErrEmptyCompletion()
	}

	result := &entities.GeneratedScript{
		Title:          GenerateTitle(text, params.ContentType, params.TargetRegion),
		Script:         text,
		KeyPoints:      ExtractKeyPoints(text),
		TargetAudience: regionCtx.Audience,
		Language:       language,
	}

	if s.logger != nil {
		s.logger.Info("✅ Script generated",
			zap.String("title", result.Title),
			zap.Int("script_length", len(result.Script)),
			zap.Int("key_points", len(result.KeyPoints)),
		)
	}
	return result, nil
}

func buildSystemPrompt(regionCtx entities.RegionContext) string {
	return fmt.Sprintf(`You are an expert agricultural content creator for TikTok. Create SHORT, cost-effective scripts for voiceover.
STRICT REQUIREMENTS:
- Maximum 30-45 seconds when spoken (150-200 words MAX)
- NO scene descriptions, camera directions, or brackets
- Direct, conversational tone in %s
- ONE main farming tip only
- Target: %s
- End with simple call-to-action`, regionCtx.Language, regionCtx.Audience)
}

func buildUserPrompt(params Params) string {
	insights := params.Insights
	if len(insights) > 3 {
		insights = insights[:3]
	}
	sample := params.Transcription
	if len(sample) > 300 {
		sample = sample[:300]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Key insights: %s\n", strings.Join(insights, ", "))
	fmt.Fprintf(&sb, "Transcription sample: %s\n", sample)
	if params.CustomPrompt != "" {
		fmt.Fprintf(&sb, "Focus: %s\n", params.CustomPrompt)
	}
	sb.WriteString(`Create a SHORT TikTok voiceover script (30-45 seconds max) that:
1. Teaches ONE specific farming technique
2. Uses simple, direct language
3. Includes practical steps (max 3 steps)
4. Ends with engagement question
NO scene descriptions. Pure voiceover text only.`)
	return sb.String()
}
