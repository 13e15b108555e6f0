package remix

// MetadataRequest asks for platform metadata of one video URL
type MetadataRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// TranscribeRequest asks for a transcript of one video URL
type TranscribeRequest struct {
	URL      string `json:"url" validate:"required,url"`
	Language string `json:"language,omitempty"`
}

// InsightsRequest asks for agricultural insights from free text
type InsightsRequest struct {
	Text string `json:"text" validate:"required"`
}

// ScriptRequest asks for a localized voiceover script
type ScriptRequest struct {
	Insights      []string `json:"insights"`
	Transcription string   `json:"transcription"`
	TargetRegion  string   `json:"target_region" validate:"omitempty,oneof=philippines vietnam malaysia"`
	ContentType   string   `json:"content_type" validate:"omitempty,oneof=educational problem-solving seasonal-tips product-demo"`
	CustomPrompt  string   `json:"custom_prompt,omitempty"`
}

// SpeechRequest asks for a synthesized voiceover
type SpeechRequest struct {
	Text            string  `json:"text" validate:"required"`
	Region          string  `json:"region" validate:"omitempty,oneof=philippines vietnam malaysia"`
	VoiceID         string  `json:"voice_id,omitempty"`
	Stability       float64 `json:"stability,omitempty" validate:"omitempty,min=0,max=1"`
	SimilarityBoost float64 `json:"similarity_boost,omitempty" validate:"omitempty,min=0,max=1"`
	Style           float64 `json:"style,omitempty" validate:"omitempty,min=0,max=1"`
}

// RenderRequest asks for a remix render of direct media URLs
type RenderRequest struct {
	VideoURLs []string `json:"video_urls" validate:"required,min=1,dive,url"`
	AudioURL  string   `json:"audio_url,omitempty"`
	Wait      bool     `json:"wait,omitempty"`
}

// RemixRequest runs the full pipeline over source page URLs
type RemixRequest struct {
	SourceURLs   []string `json:"source_urls" validate:"required,min=1,dive,url"`
	TargetRegion string   `json:"target_region" validate:"omitempty,oneof=philippines vietnam malaysia"`
	ContentType  string   `json:"content_type" validate:"omitempty,oneof=educational problem-solving seasonal-tips product-demo"`
	CustomPrompt string   `json:"custom_prompt,omitempty"`
	VoiceID      string   `json:"voice_id,omitempty"`
}
