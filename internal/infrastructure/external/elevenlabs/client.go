// Package elevenlabs is a minimal client for the ElevenLabs text-to-speech API.
package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/agrireel/content-remix/pkg/config"
)

// Client calls the ElevenLabs REST API
type Client struct {
	apiKey  string
	baseURL string
	modelID string
	client  *http.Client
}

// NewClient creates an ElevenLabs client from config
func NewClient(cfg *config.ElevenLabsConfig) *Client {
	base := "https://api.elevenlabs.io"
	modelID := "eleven_multilingual_v2"
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
		if cfg.BaseURL != "" {
			base = cfg.BaseURL
		}
		if cfg.ModelID != "" {
			modelID = cfg.ModelID
		}
	}

	return &Client{
		apiKey:  apiKey,
		baseURL: base,
		modelID: modelID,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// VoiceSettings tunes synthesis output
type VoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style,omitempty"`
	UseSpeakerBoost bool    `json:"use_speaker_boost,omitempty"`
}

// SynthesizeRequest is the payload for /v1/text-to-speech/{voice_id}
type SynthesizeRequest struct {
	Text          string         `json:"text"`
	ModelID       string         `json:"model_id,omitempty"`
	VoiceSettings *VoiceSettings `json:"voice_settings,omitempty"`
}

// Synthesize converts text to speech and returns the audio bytes
func (c *Client) Synthesize(ctx context.Context, voiceID, text string, settings *VoiceSettings) ([]byte, error) {
	payload := SynthesizeRequest{
		Text:          text,
		ModelID:       c.modelID,
		VoiceSettings: settings,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/v1/text-to-speech/%s", c.baseURL, voiceID)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("elevenlabs returned status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// Voice is one entry from the voices listing
type Voice struct {
	VoiceID string            `json:"voice_id"`
	Name    string            `json:"name"`
	Labels  map[string]string `json:"labels"`
}

type voicesResponse struct {
	Voices []Voice `json:"voices"`
}

// ListVoices fetches the account's available voices
func (c *Client) ListVoices(ctx context.Context) ([]Voice, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/v1/voices", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("elevenlabs returned status %d", resp.StatusCode)
	}

	var vr voicesResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return nil, err
	}
	return vr.Voices, nil
}
