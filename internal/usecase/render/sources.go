package render

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/agrireel/content-remix/internal/domain/entities"
	"github.com/agrireel/content-remix/internal/infrastructure/external/mediafetch"
)

// MediaResolver turns a platform reference into a direct media URL the
// renderer can fetch.
type MediaResolver interface {
	ResolveYouTubeVideo(ctx context.Context, videoID string) (string, error)
	ResolveTikTokMedia(ctx context.Context, pageURL string) (*mediafetch.TikTokMedia, error)
}

// ResolveSources maps each reference to a direct media URL. Individual
// failures are skipped so one dead source does not sink the remix; the
// caller decides what an empty result means.
func (s *renderService) ResolveSources(ctx context.Context, refs []entities.VideoReference) []string {
	urls := make([]string, 0, len(refs))
	for _, ref := range refs {
		url, err := s.resolveSource(ctx, ref)
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("⏭️ Skipping unresolvable source",
					zap.String("platform", string(ref.Platform)),
					zap.String("source_url", ref.SourceURL),
					zap.Error(err),
				)
			}
			continue
		}
		urls = append(urls, url)
	}
	return urls
}

func (s *renderService) resolveSource(ctx context.Context, ref entities.VideoReference) (string, error) {
	if s.resolver == nil {
		// No extraction service configured, let the renderer try the page URL
		return ref.SourceURL, nil
	}

	switch ref.Platform {
	case entities.PlatformYouTube:
		return s.resolver.ResolveYouTubeVideo(ctx, ref.PlatformID)
	case entities.PlatformTikTok:
		media, err := s.resolver.ResolveTikTokMedia(ctx, ref.SourceURL)
		if err != nil {
			return "", err
		}
		if media.VideoURL == "" {
			return "", fmt.Errorf("no video link for %s", ref.SourceURL)
		}
		return media.VideoURL, nil
	default:
		return ref.SourceURL, nil
	}
}
