package entities

import (
	"github.com/google/uuid"
)

// Platform identifies the source platform of a submitted video URL
type Platform string

const (
	PlatformYouTube Platform = "youtube"
	PlatformTikTok  Platform = "tiktok"
	PlatformUnknown Platform = "unknown"
)

// VideoReference is the resolved identity of a submitted video URL.
// Immutable once resolved; PlatformUnknown is terminal and no pipeline
// stage runs for such a reference.
type VideoReference struct {
	ID         uuid.UUID `json:"id"`
	SourceURL  string    `json:"source_url"`
	Platform   Platform  `json:"platform"`
	PlatformID string    `json:"platform_id"`
}

// NewVideoReference creates a resolved video reference
func NewVideoReference(sourceURL string, platform Platform, platformID string) VideoReference {
	return VideoReference{
		ID:         uuid.New(),
		SourceURL:  sourceURL,
		Platform:   platform,
		PlatformID: platformID,
	}
}

// IsSupported reports whether the reference may enter the pipeline
func (r VideoReference) IsSupported() bool {
	return r.Platform == PlatformYouTube || r.Platform == PlatformTikTok
}

// VideoAsset is presentation metadata for a resolved reference. A nil
// asset means "unknown metadata", not an error.
type VideoAsset struct {
	Reference       VideoReference `json:"reference"`
	Title           string         `json:"title"`
	ThumbnailURL    string         `json:"thumbnail_url"`
	DurationSeconds int            `json:"duration_seconds"`
	Author          string         `json:"author"`
}
