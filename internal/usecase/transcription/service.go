// Package transcription turns a resolved video reference into a timed
// transcript, deduplicating concurrent requests for the same URL and
// degrading to canned content when every backend fails.
package transcription

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/agrireel/content-remix/internal/domain/entities"
	"github.com/agrireel/content-remix/internal/infrastructure/external/mediafetch"
	pkgai "github.com/agrireel/content-remix/pkg/ai"
)

// MediaFetcher resolves platform URLs into downloadable audio
type MediaFetcher interface {
	DownloadYouTubeAudio(ctx context.Context, videoID string) ([]byte, error)
	DownloadTikTokAudio(ctx context.Context, pageURL string) ([]byte, error)
	ResolveTikTokMedia(ctx context.Context, pageURL string) (*mediafetch.TikTokMedia, error)
}

// AudioTranscriber transcribes uploaded audio bytes (Whisper)
type AudioTranscriber interface {
	TranscribeAudio(ctx context.Context, model, filename string, audio io.Reader) (*pkgai.TranscriptionResponse, error)
}

// URLTranscriber transcribes a publicly fetchable audio URL (AssemblyAI)
type URLTranscriber interface {
	TranscribeFromURL(ctx context.Context, audioURL string) (*entities.TranscriptionResult, error)
}

// Resolver classifies raw URLs into platform references
type Resolver interface {
	Resolve(rawURL string) (entities.VideoReference, error)
}

// Service transcribes videos by URL
type Service interface {
	Transcribe(ctx context.Context, rawURL string, language entities.Language) (*entities.TranscriptionResult, error)
}

// InflightCall tracks one in-progress transcription shared by callers
type InflightCall struct {
	done   chan struct{}
	result *entities.TranscriptionResult
	err    error
}

type transcriptionService struct {
	resolver       Resolver
	media          MediaFetcher
	whisper        AudioTranscriber
	urlTranscriber URLTranscriber
	whisperModel   string
	logger         *zap.Logger

	// One in-flight transcription per source URL. Entries are injected by
	// the constructor and removed when the call settles, so a later request
	// for the same URL starts fresh.
	mu       sync.Mutex
	inflight map[string]*InflightCall
}

// NewService constructs the transcription coordinator. The inflight map is
// injected so tests can observe and pre-seed dedup state.
func NewService(
	resolver Resolver,
	media MediaFetcher,
	whisper AudioTranscriber,
	urlTranscriber URLTranscriber,
	whisperModel string,
	inflight map[string]*InflightCall,
	logger *zap.Logger,
) Service {
	if inflight == nil {
		inflight = make(map[string]*InflightCall)
	}
	return &transcriptionService{
		resolver:       resolver,
		media:          media,
		whisper:        whisper,
		urlTranscriber: urlTranscriber,
		whisperModel:   whisperModel,
		inflight:       inflight,
		logger:         logger,
	}
}

// Transcribe returns the transcript for a video URL. Concurrent calls for
// the same URL share a single backend invocation but each caller gets its
// own copy of the settled result, so downstream enrichment never races.
// Backend failures never surface as errors: the caller gets a canned
// transcript tagged Degraded instead. Only context cancellation propagates.
func (s *transcriptionService) Transcribe(ctx context.Context, rawURL string, language entities.Language) (*entities.TranscriptionResult, error) {
	s.mu.Lock()
	if call, ok := s.inflight[rawURL]; ok {
		s.mu.Unlock()
		if s.logger != nil {
			s.logger.Info("⏭️ Reusing in-flight transcription", zap.String("url", rawURL))
		}
		select {
		case <-call.done:
			return call.result.Clone(), call.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	call := &InflightCall{done: make(chan struct{})}
	s.inflight[rawURL] = call
	s.mu.Unlock()

	call.result, call.err = s.transcribeOnce(ctx, rawURL, language)
	close(call.done)

	// Cleanup on settle: the dedup window only covers concurrent callers
	s.mu.Lock()
	delete(s.inflight, rawURL)
	s.mu.Unlock()

	return call.result.Clone(), call.err
}

func (s *transcriptionService) transcribeOnce(ctx context.Context, rawURL string, language entities.Language) (*entities.TranscriptionResult, error) {
	ref, err := s.resolver.Resolve(rawURL)
	if err != nil {
		return s.degrade(rawURL, fmt.Sprintf("unsupported platform: %v", err)), nil
	}

	if s.logger != nil {
		s.logger.Info("🎙️ Starting transcription",
			zap.String("url", rawURL),
			zap.String("platform", string(ref.Platform)),
			zap.String("platform_id", ref.PlatformID),
		)
	}

	var result *entities.TranscriptionResult
	switch ref.Platform {
	case entities.PlatformYouTube:
		result, err = s.transcribeYouTube(ctx, ref)
	case entities.PlatformTikTok:
		result, err = s.transcribeTikTok(ctx, ref)
	default:
		err = fmt.Errorf("platform %s has no transcription backend", ref.Platform)
	}
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return s.degrade(rawURL, err.Error()), nil
	}

	result.Normalize()
	if result.Language == "" {
		result.Language = string(language)
	}

	if s.logger != nil {
		s.logger.Info("✅ Transcription completed",
			zap.String("url", rawURL),
			zap.String("source", string(result.Source)),
			zap.Int("segment_count", len(result.Segments)),
			zap.Float64("duration_seconds", result.DurationSeconds),
		)
	}
	return result, nil
}

// transcribeYouTube downloads the mp3 track and runs it through Whisper
func (s *transcriptionService) transcribeYouTube(ctx context.Context, ref entities.VideoReference) (*entities.TranscriptionResult, error) {
	audio, err := s.media.DownloadYouTubeAudio(ctx, ref.PlatformID)
	if err != nil {
		return nil, fmt.Errorf("youtube audio download failed: %w", err)
	}
	return s.runWhisper(ctx, ref.PlatformID+".mp3", audio)
}

// transcribeTikTok resolves the direct audio URL and hands it to the
// URL-based backend, which fetches the audio itself. Without a URL backend
// the audio is downloaded and pushed through Whisper instead.
func (s *transcriptionService) transcribeTikTok(ctx context.Context, ref entities.VideoReference) (*entities.TranscriptionResult, error) {
	if s.urlTranscriber == nil {
		return s.transcribeTikTokViaWhisper(ctx, ref)
	}

	media, err := s.media.ResolveTikTokMedia(ctx, ref.SourceURL)
	if err != nil {
		return nil, fmt.Errorf("tiktok media resolution failed: %w", err)
	}
	audioURL := media.AudioURL
	if audioURL == "" {
		audioURL = media.VideoURL
	}
	if audioURL == "" {
		return nil, fmt.Errorf("no playable media for %s", ref.SourceURL)
	}

	var result *entities.TranscriptionResult
	transcribeFn := func() error {
		var terr error
		result, terr = s.urlTranscriber.TranscribeFromURL(ctx, audioURL)
		return terr
	}
	if err := backoff.Retry(transcribeFn, s.retryPolicy(ctx)); err != nil {
		return nil, fmt.Errorf("url transcription failed: %w", err)
	}
	return result, nil
}

func (s *transcriptionService) transcribeTikTokViaWhisper(ctx context.Context, ref entities.VideoReference) (*entities.TranscriptionResult, error) {
	audio, err := s.media.DownloadTikTokAudio(ctx, ref.SourceURL)
	if err != nil {
		return nil, fmt.Errorf("tiktok audio download failed: %w", err)
	}
	return s.runWhisper(ctx, ref.PlatformID+".mp3", audio)
}

// runWhisper pushes raw audio bytes through the Whisper backend with retry
func (s *transcriptionService) runWhisper(ctx context.Context, filename string, audio []byte) (*entities.TranscriptionResult, error) {
	var resp *pkgai.TranscriptionResponse
	transcribeFn := func() error {
		var terr error
		resp, terr = s.whisper.TranscribeAudio(ctx, s.whisperModel, filename, bytes.NewReader(audio))
		return terr
	}
	if err := backoff.Retry(transcribeFn, s.retryPolicy(ctx)); err != nil {
		return nil, fmt.Errorf("whisper transcription failed: %w", err)
	}

	result := &entities.TranscriptionResult{
		Text:            resp.Text,
		Language:        resp.Language,
		DurationSeconds: resp.Duration,
		Source:          entities.TranscriptionSourceWhisper,
	}
	for _, seg := range resp.Segments {
		result.Segments = append(result.Segments, entities.TranscriptSegment{
			Start: seg.Start,
			End:   seg.End,
			Text:  seg.Text,
		})
	}
	if len(result.Segments) == 0 && result.Text != "" {
		result.Segments = []entities.TranscriptSegment{{Start: 0, End: entities.DefaultTranscriptDurationSeconds, Text: result.Text}}
	}
	return result, nil
}

func (s *transcriptionService) retryPolicy(ctx context.Context) backoff.BackOffContext {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 2 * time.Second
	bo.MaxElapsedTime = 10 * time.Second
	return backoff.WithContext(bo, ctx)
}

func (s *transcriptionService) degrade(rawURL, cause string) *entities.TranscriptionResult {
	if s.logger != nil {
		s.logger.Warn("⚠️ Falling back to canned transcript",
			zap.String("url", rawURL),
			zap.String("cause", cause),
		)
	}
	return fallbackResult(cause)
}
