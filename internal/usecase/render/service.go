// Package render assembles remix timelines and drives the remote renderer
// to completion.
package render

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/agrireel/content-remix/errors"
	"github.com/agrireel/content-remix/internal/domain/entities"
	"github.com/agrireel/content-remix/internal/infrastructure/external/shotstack"
	"github.com/agrireel/content-remix/internal/infrastructure/storage"
	"github.com/agrireel/content-remix/pkg/config"
	"github.com/agrireel/content-remix/pkg/poll"
)

// Backend submits renders and reports their progress
type Backend interface {
	SubmitRender(ctx context.Context, req shotstack.RenderRequest) (string, error)
	GetRenderStatus(ctx context.Context, renderID string) (*shotstack.RenderStatusResponse, error)
}

// AudioPublisher promotes transient audio to a publicly fetchable URL
type AudioPublisher interface {
	UploadAudio(ctx context.Context, objectName string, audio []byte, contentType string) (string, error)
}

// Service drives the render stage
type Service interface {
	ResolveSources(ctx context.Context, refs []entities.VideoReference) []string
	Render(ctx context.Context, videoURLs []string, audioURL string) (*entities.RenderJob, error)
	CheckStatus(ctx context.Context, renderID string) (*entities.RenderJob, error)
	RenderAndWait(ctx context.Context, videoURLs []string, audioURL string) (*entities.RenderJob, error)
}

type renderService struct {
	backend   Backend
	resolver  MediaResolver
	publisher AudioPublisher
	blobs     *storage.BlobStore
	cfg       config.PipelineConfig
	logger    *zap.Logger
}

// NewService constructs the render service. resolver and publisher may be
// nil: without a resolver the page URLs go to the renderer untouched, and
// without object storage transient audio is dropped from the timeline
// instead of promoted.
func NewService(backend Backend, resolver MediaResolver, publisher AudioPublisher, blobs *storage.BlobStore, cfg config.PipelineConfig, logger *zap.Logger) Service {
	return &renderService{
		backend:   backend,
		resolver:  resolver,
		publisher: publisher,
		blobs:     blobs,
		cfg:       cfg,
		logger:    logger,
	}
}

// BuildTimeline lays the source videos onto a single track of fixed-length
// clips with a fade-in on every clip after the first, plus an optional
// voiceover soundtrack.
func BuildTimeline(videoURLs []string, audioURL string, clipLength float64) shotstack.RenderRequest {
	clips := make([]shotstack.Clip, 0, len(videoURLs))
	for i, src := range videoURLs {
		clip := shotstack.Clip{
			Asset:  shotstack.Asset{Type: "video", Src: src, Trim: 0},
			Start:  float64(i) * clipLength,
			Length: clipLength,
		}
		if i > 0 {
			clip.Transition = &shotstack.Transition{In: "fade"}
		}
		clips = append(clips, clip)
	}

	timeline := shotstack.Timeline{
		Tracks: []shotstack.Track{{Clips: clips}},
	}
	if audioURL != "" {
		timeline.Soundtrack = &shotstack.Soundtrack{
			Src:    audioURL,
			Effect: "fadeInFadeOut",
			Volume: 1,
		}
	}

	return shotstack.RenderRequest{
		Timeline: timeline,
		Output: shotstack.Output{
			Format:      "mp4",
			Resolution:  "hd",
			AspectRatio: "16:9",
			FPS:         25,
			Quality:     "high",
		},
	}
}

// Render submits a remix of the given sources. Empty source URLs are
// dropped; having none left is an error. A memory:// audio handle is
// uploaded to object storage first so the renderer can fetch it.
func (s *renderService) Render(ctx context.Context, videoURLs []string, audioURL string) (*entities.RenderJob, error) {
	sources := make([]string, 0, len(videoURLs))
	for _, u := range videoURLs {
		if strings.TrimSpace(u) != "" {
			sources = append(sources, u)
		}
	}
	if len(sources) == 0 {
		return nil, apperrors.ErrNoValidSources()
	}

	audioURL = s.resolveAudioURL(ctx, audioURL)

	req := BuildTimeline(sources, audioURL, s.cfg.ClipLengthSeconds)
	renderID, err := s.backend.SubmitRender(ctx, req)
	if err != nil {
		return nil, apperrors.ErrRenderSubmitFailed(err)
	}

	if s.logger != nil {
		s.logger.Info("🎬 Render submitted",
			zap.String("render_id", renderID),
			zap.Int("clips", len(sources)),
			zap.Bool("has_audio", audioURL != ""),
		)
	}

	return &entities.RenderJob{
		RenderID: renderID,
		Status:   entities.RenderStatusQueued,
	}, nil
}

// resolveAudioURL makes the soundtrack fetchable by the renderer. Promotion
// failures degrade to a silent render rather than failing the stage.
func (s *renderService) resolveAudioURL(ctx context.Context, audioURL string) string {
	if audioURL == "" || !storage.IsMemoryURL(audioURL) {
		return audioURL
	}
	if s.publisher == nil || s.blobs == nil {
		if s.logger != nil {
			s.logger.Warn("⚠️ No object storage configured, rendering without soundtrack")
		}
		return ""
	}

	data, err := s.blobs.Get(audioURL)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("⚠️ Transient audio missing, rendering without soundtrack", zap.Error(err))
		}
		return ""
	}

	publicURL, err := s.publisher.UploadAudio(ctx, storage.ObjectName(audioURL), data, "audio/mpeg")
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("⚠️ Audio upload failed, rendering without soundtrack", zap.Error(err))
		}
		return ""
	}
	s.blobs.Delete(audioURL)
	return publicURL
}

// CheckStatus polls the renderer once and maps its state onto the job
// lifecycle.
func (s *renderService) CheckStatus(ctx context.Context, renderID string) (*entities.RenderJob, error) {
	status, err := s.backend.GetRenderStatus(ctx, renderID)
	if err != nil {
		return nil, apperrors.ErrRenderNotFound(renderID)
	}

	job := &entities.RenderJob{RenderID: renderID, Status: mapStatus(status.Status)}
	if job.Status == entities.RenderStatusDone {
		job.VideoURL = status.URL
	}
	return job, nil
}

func mapStatus(s string) entities.RenderStatus {
	switch s {
	case "queued":
		return entities.RenderStatusQueued
	case "fetching", "rendering", "saving":
		return entities.RenderStatusInProgress
	case "done":
		return entities.RenderStatusDone
	case "failed":
		return entities.RenderStatusFailed
	default:
		return entities.RenderStatusInProgress
	}
}

// RenderAndWait submits a render and polls until it finishes. Exhausting
// the polling budget yields a timed_out job, which is terminal but distinct
// from a renderer-reported failure.
func (s *renderService) RenderAndWait(ctx context.Context, videoURLs []string, audioURL string) (*entities.RenderJob, error) {
	job, err := s.Render(ctx, videoURLs, audioURL)
	if err != nil {
		return nil, err
	}

	err = poll.Until(ctx, s.cfg.RenderPollInterval, s.cfg.RenderPollMaxAttempts, func(ctx context.Context) (bool, error) {
		current, err := s.CheckStatus(ctx, job.RenderID)
		if err != nil {
			return false, err
		}
		job.Status = current.Status
		job.VideoURL = current.VideoURL
		if job.Status == entities.RenderStatusFailed {
			return false, apperrors.ErrRenderFailed(job.RenderID)
		}
		return job.Status == entities.RenderStatusDone, nil
	})
	if err != nil {
		if errors.Is(err, poll.ErrTimedOut) {
			job.Status = entities.RenderStatusTimedOut
			if s.logger != nil {
				s.logger.Warn("⚠️ Render polling budget exhausted",
					zap.String("render_id", job.RenderID),
					zap.Int("attempts", s.cfg.RenderPollMaxAttempts),
				)
			}
			return job, apperrors.ErrRenderTimedOut(job.RenderID, s.cfg.RenderPollMaxAttempts)
		}
		return job, err
	}

	if s.logger != nil {
		s.logger.Info("✅ Render finished",
			zap.String("render_id", job.RenderID),
			zap.String("video_url", job.VideoURL),
		)
	}
	return job, nil
}
