// Package speech synthesizes localized voiceover audio through ElevenLabs.
package speech

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/agrireel/content-remix/errors"
	"github.com/agrireel/content-remix/internal/domain/entities"
	"github.com/agrireel/content-remix/internal/infrastructure/external/elevenlabs"
	"github.com/agrireel/content-remix/internal/infrastructure/storage"
)

const wordsPerMinute = 150

// Synthesizer converts text to audio bytes
type Synthesizer interface {
	Synthesize(ctx context.Context, voiceID, text string, settings *elevenlabs.VoiceSettings) ([]byte, error)
}

// VoiceLister fetches the provider's full voice inventory
type VoiceLister interface {
	ListVoices(ctx context.Context) ([]elevenlabs.Voice, error)
}

// Service handles voiceover synthesis
type Service interface {
	Synthesize(ctx context.Context, text string, region entities.Region, opts *entities.SpeechOptions) (*entities.SpeechResult, error)
	Voices() []entities.VoiceOption
	ProviderVoices(ctx context.Context) ([]elevenlabs.Voice, error)
}

type speechService struct {
	provider Synthesizer
	lister   VoiceLister
	blobs    *storage.BlobStore
	maxChars int
	logger   *zap.Logger
}

// NewService constructs the speech service. maxChars caps the text length
// sent to the provider. lister may be nil, in which case only the curated
// catalog is served.
func NewService(provider Synthesizer, lister VoiceLister, blobs *storage.BlobStore, maxChars int, logger *zap.Logger) Service {
	return &speechService{
		provider: provider,
		lister:   lister,
		blobs:    blobs,
		maxChars: maxChars,
		logger:   logger,
	}
}

// Voices lists the curated voice catalog
func (s *speechService) Voices() []entities.VoiceOption {
	return AvailableVoices
}

// ProviderVoices passes through the provider's own voice inventory
func (s *speechService) ProviderVoices(ctx context.Context) ([]elevenlabs.Voice, error) {
	if s.lister == nil {
		return nil, nil
	}
	voices, err := s.lister.ListVoices(ctx)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("⚠️ Provider voice listing failed", zap.Error(err))
		}
		return nil, apperrors.ErrSpeechProvider(err)
	}
	return voices, nil
}

// ValidateText checks a script against the synthesis limits. The ceiling
// counts characters, not bytes, so accented scripts are not shortchanged.
func ValidateText(text string, maxChars int) error {
	if strings.TrimSpace(text) == "" {
		return apperrors.ErrSpeechTextEmpty()
	}
	if utf8.RuneCountInString(text) > maxChars {
		return apperrors.ErrSpeechTextTooLong(maxChars)
	}
	return nil
}

// EstimateAudioDuration estimates spoken length in seconds assuming 150
// words per minute, rounded up.
func EstimateAudioDuration(text string) int {
	words := len(strings.Fields(text))
	return int(math.Ceil(float64(words) / wordsPerMinute * 60))
}

// Synthesize converts the script into audio and stores it as a transient
// blob. Invalid input is an error; a provider failure is not, it yields a
// result with Success false so downstream stages can proceed without audio.
func (s *speechService) Synthesize(ctx context.Context, text string, region entities.Region, opts *entities.SpeechOptions) (*entities.SpeechResult, error) {
	if err := ValidateText(text, s.maxChars); err != nil {
		return nil, err
	}

	settings := OptionsForRegion(region)
	if opts != nil {
		if opts.VoiceID != "" {
			settings.VoiceID = opts.VoiceID
		}
		if opts.Stability != 0 {
			settings.Stability = opts.Stability
		}
		if opts.SimilarityBoost != 0 {
			settings.SimilarityBoost = opts.SimilarityBoost
		}
		if opts.Style != 0 {
			settings.Style = opts.Style
		}
	}

	voice, ok := VoiceByID(settings.VoiceID)
	if !ok {
		voice = VoiceForRegion(region)
	}
	estimated := EstimateAudioDuration(text)

	if s.logger != nil {
		s.logger.Info("🎙️ Synthesizing voiceover",
			zap.String("voice", voice.ID),
			zap.String("region", string(region)),
			zap.Int("text_length", len(text)),
			zap.Int("estimated_duration", estimated),
		)
	}

	audio, err := s.provider.Synthesize(ctx, voice.ProviderID, text, &elevenlabs.VoiceSettings{
		Stability:       settings.Stability,
		SimilarityBoost: settings.SimilarityBoost,
		Style:           settings.Style,
		UseSpeakerBoost: settings.UseSpeakerBoost,
	})
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("⚠️ Speech synthesis failed, continuing without audio",
				zap.String("voice", voice.ID),
				zap.Error(err),
			)
		}
		return &entities.SpeechResult{
			DurationSeconds: estimated,
			VoiceUsed:       voice.ID,
			Success:         false,
			Error:           apperrors.ErrSpeechProvider(err).Error(),
		}, nil
	}

	objectName := fmt.Sprintf("voiceover/%d-%s.mp3", time.Now().Unix(), uuid.New().String())
	handle := s.blobs.Put(objectName, audio)

	if s.logger != nil {
		s.logger.Info("✅ Voiceover synthesized",
			zap.String("voice", voice.ID),
			zap.Int("audio_bytes", len(audio)),
		)
	}

	return &entities.SpeechResult{
		AudioURL:        handle,
		DurationSeconds: estimated,
		VoiceUsed:       voice.ID,
		Success:         true,
	}, nil
}
