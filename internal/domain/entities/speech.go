package entities

// VoiceOption describes one supported named voice
type VoiceOption struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Language    string `json:"language"`
	Accent      string `json:"accent"`
	Gender      string `json:"gender"`
	ProviderID  string `json:"provider_id"`
	CulturalFit string `json:"cultural_fit,omitempty"`
}

// SpeechOptions tunes a synthesis request
type SpeechOptions struct {
	VoiceID         string  `json:"voice_id,omitempty"`
	ModelID         string  `json:"model_id,omitempty"`
	OutputFormat    string  `json:"output_format,omitempty"`
	Stability       float64 `json:"stability,omitempty"`
	SimilarityBoost float64 `json:"similarity_boost,omitempty"`
	Style           float64 `json:"style,omitempty"`
	UseSpeakerBoost bool    `json:"use_speaker_boost,omitempty"`
}

// SpeechResult is the speech-synthesis stage output. AudioURL may be a
// transient handle (memory:// scheme) until the render coordinator uploads
// it to a stable, publicly fetchable location. Provider failures are
// reported through Success/Error, never as a thrown error.
type SpeechResult struct {
	AudioURL        string `json:"audio_url"`
	DurationSeconds int    `json:"duration"`
	VoiceUsed       string `json:"voice_used"`
	Success         bool   `json:"success"`
	Error           string `json:"error,omitempty"`
}
