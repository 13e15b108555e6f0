// Package assemblyai wraps the official AssemblyAI SDK as a URL-based
// transcription backend.
package assemblyai

import (
	"context"
	"fmt"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	apperrors "github.com/agrireel/content-remix/errors"
	"github.com/agrireel/content-remix/internal/domain/entities"
	"github.com/agrireel/content-remix/pkg/config"
)

// Client transcribes remote audio URLs through AssemblyAI
type Client struct {
	sdk *aai.Client
}

// NewClient creates an AssemblyAI client from config
func NewClient(cfg *config.AssemblyAIConfig) *Client {
	var opts []aai.ClientOption
	if cfg != nil && cfg.BaseURL != "" {
		opts = append(opts, aai.WithBaseURL(cfg.BaseURL))
	}
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	return &Client{sdk: aai.NewClientWithOptions(append([]aai.ClientOption{aai.WithAPIKey(apiKey)}, opts...)...)}
}

// TranscribeFromURL submits a publicly fetchable audio URL and blocks until
// the transcript completes. Word timings come back in milliseconds and are
// converted to seconds.
func (c *Client) TranscribeFromURL(ctx context.Context, audioURL string) (*entities.TranscriptionResult, error) {
	transcript, err := c.sdk.Transcripts.TranscribeFromURL(ctx, audioURL, &aai.TranscriptOptionalParams{
		LanguageDetection: aai.Bool(true),
	})
	if err != nil {
		return nil, apperrors.ErrTranscriptionFailed(err)
	}

	if transcript.Status == aai.TranscriptStatusError {
		msg := "assemblyai reported error"
		if transcript.Error != nil {
			msg = *transcript.Error
		}
		return nil, apperrors.ErrTranscriptionFailed(fmt.Errorf("%s", msg))
	}

	result := &entities.TranscriptionResult{
		Source: entities.TranscriptionSourceAssemblyAI,
	}
	if transcript.Text != nil {
		result.Text = *transcript.Text
	}
	if transcript.LanguageCode != "" {
		result.Language = string(transcript.LanguageCode)
	}
	if transcript.AudioDuration != nil {
		result.DurationSeconds = float64(*transcript.AudioDuration)
	}

	// Prefer utterances for segment boundaries; fall back to one segment
	// per word when speaker segmentation is unavailable.
	if len(transcript.Utterances) > 0 {
		for _, utt := range transcript.Utterances {
			seg := entities.TranscriptSegment{}
			if utt.Text != nil {
				seg.Text = *utt.Text
			}
			if utt.Start != nil {
				seg.Start = float64(*utt.Start) / 1000.0 // ms to seconds
			}
			if utt.End != nil {
				seg.End = float64(*utt.End) / 1000.0
			}
			result.Segments = append(result.Segments, seg)
		}
	} else {
		for _, w := range transcript.Words {
			seg := entities.TranscriptSegment{}
			if w.Text != nil {
				seg.Text = *w.Text
			}
			if w.Start != nil {
				seg.Start = float64(*w.Start) / 1000.0
			}
			if w.End != nil {
				seg.End = float64(*w.End) / 1000.0
			}
			result.Segments = append(result.Segments, seg)
		}
	}

	result.Normalize()
	return result, nil
}
