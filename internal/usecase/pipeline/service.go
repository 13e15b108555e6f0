// Package pipeline chains the remix stages end to end: validate sources,
// transcribe them concurrently, extract insights, generate a localized
// script, synthesize the voiceover and drive the render to completion.
package pipeline

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	apperrors "github.com/agrireel/content-remix/errors"
	"github.com/agrireel/content-remix/internal/domain/entities"
	"github.com/agrireel/content-remix/internal/usecase/insight"
	"github.com/agrireel/content-remix/internal/usecase/render"
	"github.com/agrireel/content-remix/internal/usecase/script"
	"github.com/agrireel/content-remix/internal/usecase/speech"
	"github.com/agrireel/content-remix/internal/usecase/transcription"
	"github.com/agrireel/content-remix/internal/usecase/video"
)

// Params describes one remix request
type Params struct {
	SourceURLs   []string
	TargetRegion entities.Region
	ContentType  entities.ContentType
	CustomPrompt string
	Voice        *entities.SpeechOptions
}

// Result carries the output of every completed stage. When Remix returns
// an error the stages that finished before it are still populated.
type Result struct {
	Sources        []*entities.VideoAsset          `json:"sources"`
	Transcriptions []*entities.TranscriptionResult `json:"transcriptions"`
	Insights       []string                        `json:"insights"`
	Script         *entities.GeneratedScript       `json:"script"`
	Speech         *entities.SpeechResult          `json:"speech"`
	Render         *entities.RenderJob             `json:"render"`
}

// Service runs the full remix pipeline
type Service interface {
	Remix(ctx context.Context, params Params) (*Result, error)
}

type pipelineService struct {
	videos      video.Service
	transcriber transcription.Service
	insights    insight.Service
	scripts     script.Service
	speeches    speech.Service
	renders     render.Service
	logger      *zap.Logger
}

// NewService wires the stage services into one orchestrator
func NewService(
	videos video.Service,
	transcriber transcription.Service,
	insights insight.Service,
	scripts script.Service,
	speeches speech.Service,
	renders render.Service,
	logger *zap.Logger,
) Service {
	return &pipelineService{
		videos:      videos,
		transcriber: transcriber,
		insights:    insights,
		scripts:     scripts,
		speeches:    speeches,
		renders:     renders,
		logger:      logger,
	}
}

// Remix runs every stage in order. Source validation and script generation
// failures abort; transcription and speech degrade internally and never
// abort; a render timeout returns the partial result together with the
// timeout error so the caller can keep polling the render id.
func (s *pipelineService) Remix(ctx context.Context, params Params) (*Result, error) {
	if len(params.SourceURLs) == 0 {
		return nil, apperrors.ErrInvalidArgument("at least one source URL is required")
	}

	result := &Result{}

	// Stage 1: resolve and gate every source before any work starts
	for _, rawURL := range params.SourceURLs {
		asset, err := s.videos.ValidateForPipeline(ctx, rawURL)
		if err != nil {
			return nil, err
		}
		result.Sources = append(result.Sources, asset)
	}

	if s.logger != nil {
		s.logger.Info("🚀 Remix started",
			zap.Int("sources", len(result.Sources)),
			zap.String("region", string(params.TargetRegion)),
		)
	}

	// Stage 2: transcribe all sources concurrently. Transcription degrades
	// internally, only context cancellation comes back as an error.
	language := script.LanguageForRegion(params.TargetRegion)
	result.Transcriptions = make([]*entities.TranscriptionResult, len(result.Sources))
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		stageErr error
	)
	for i, asset := range result.Sources {
		wg.Add(1)
		go func(i int, sourceURL string) {
			defer wg.Done()
			tr, err := s.transcriber.Transcribe(ctx, sourceURL, language)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if stageErr == nil {
					stageErr = err
				}
				return
			}
			result.Transcriptions[i] = tr
		}(i, asset.Reference.SourceURL)
	}
	wg.Wait()
	if stageErr != nil {
		return result, stageErr
	}

	// Stage 3: insights per transcript, merged without duplicates
	for _, tr := range result.Transcriptions {
		s.insights.Enrich(ctx, tr)
	}
	result.Insights = mergeInsights(result.Transcriptions)

	// Stage 4: localized script
	generated, err := s.scripts.Generate(ctx, script.Params{
		Insights:      result.Insights,
		Transcription: joinTranscripts(result.Transcriptions),
		TargetRegion:  params.TargetRegion,
		ContentType:   params.ContentType,
		CustomPrompt:  params.CustomPrompt,
	})
	if err != nil {
		return result, err
	}
	result.Script = generated

	// Stage 5: voiceover. Provider failures come back as Success=false and
	// the render proceeds without a soundtrack.
	spoken, err := s.speeches.Synthesize(ctx, generated.Script, params.TargetRegion, params.Voice)
	if err != nil {
		return result, err
	}
	result.Speech = spoken

	// Stage 6: resolve direct media and render
	refs := make([]entities.VideoReference, len(result.Sources))
	for i, asset := range result.Sources {
		refs[i] = asset.Reference
	}
	sources := s.renders.ResolveSources(ctx, refs)

	audioURL := ""
	if spoken.Success {
		audioURL = spoken.AudioURL
	}
	job, err := s.renders.RenderAndWait(ctx, sources, audioURL)
	result.Render = job
	if err != nil {
		return result, err
	}

	if s.logger != nil {
		s.logger.Info("✅ Remix finished",
			zap.String("render_id", job.RenderID),
			zap.String("video_url", job.VideoURL),
		)
	}
	return result, nil
}

// mergeInsights flattens per-transcript insights, dropping duplicates while
// keeping first-seen order.
func mergeInsights(transcriptions []*entities.TranscriptionResult) []string {
	seen := make(map[string]bool)
	merged := []string{}
	for _, tr := range transcriptions {
		if tr == nil {
			continue
		}
		for _, ins := range tr.Insights {
			key := strings.ToLower(strings.TrimSpace(ins))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, ins)
		}
	}
	return merged
}

func joinTranscripts(transcriptions []*entities.TranscriptionResult) string {
	var parts []string
	for _, tr := range transcriptions {
		if tr != nil && strings.TrimSpace(tr.Text) != "" {
			parts = append(parts, tr.Text)
		}
	}
	return strings.Join(parts, " ")
}
