// Package video resolves submitted URLs to platform references and fetches
// presentation metadata with caching.
package video

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"go.uber.org/zap"

	apperrors "github.com/agrireel/content-remix/errors"
	"github.com/agrireel/content-remix/internal/domain/entities"
	"github.com/agrireel/content-remix/internal/infrastructure/cache"
	"github.com/agrireel/content-remix/pkg/config"
)

var (
	tiktokRe  = regexp.MustCompile(`(?:https?://)?(?:www\.)?(?:vm\.)?tiktok\.com/(?:@[\w.-]+/video/|v/)?(\d+)`)
	youtubeRe = regexp.MustCompile(`(?:https?://)?(?:www\.)?(?:youtube\.com/(?:[^/]+/.+/|(?:v|e(?:mbed)?|shorts)/|.*[?&]v=)|youtu\.be/)([^"&?/\s]{11})`)
)

// MetadataFetcher fetches public metadata for a resolved reference
type MetadataFetcher interface {
	FetchTikTokMetadata(ctx context.Context, ref entities.VideoReference) (*entities.VideoAsset, error)
	FetchYouTubeMetadata(ctx context.Context, ref entities.VideoReference) (*entities.VideoAsset, error)
}

// Service resolves video URLs and fetches metadata
type Service interface {
	Resolve(rawURL string) (entities.VideoReference, error)
	GetMetadata(ctx context.Context, rawURL string) (*entities.VideoAsset, error)
	ValidateForPipeline(ctx context.Context, rawURL string) (*entities.VideoAsset, error)
}

type videoService struct {
	fetcher MetadataFetcher
	store   cache.Store
	cfg     config.PipelineConfig
	logger  *zap.Logger
}

// NewService constructs the video service. The cache store may be nil, in
// which case every metadata call hits the platform.
func NewService(fetcher MetadataFetcher, store cache.Store, cfg config.PipelineConfig, logger *zap.Logger) Service {
	return &videoService{
		fetcher: fetcher,
		store:   store,
		cfg:     cfg,
		logger:  logger,
	}
}

// Resolve classifies a raw URL into a platform reference. TikTok patterns
// are tried before YouTube, matching how ambiguous URLs should break ties.
func (s *videoService) Resolve(rawURL string) (entities.VideoReference, error) {
	if m := tiktokRe.FindStringSubmatch(rawURL); m != nil {
		return entities.NewVideoReference(rawURL, entities.PlatformTikTok, m[1]), nil
	}
	if m := youtubeRe.FindStringSubmatch(rawURL); m != nil {
		return entities.NewVideoReference(rawURL, entities.PlatformYouTube, m[1]), nil
	}
	return entities.VideoReference{
		SourceURL: rawURL,
		Platform:  entities.PlatformUnknown,
	}, apperrors.ErrUnsupportedPlatform(rawURL)
}

func metadataCacheKey(ref entities.VideoReference) string {
	return fmt.Sprintf("video:meta:%s:%s", ref.Platform, ref.PlatformID)
}

// GetMetadata resolves the URL and fetches platform metadata, consulting
// the cache first. Cache failures are logged and ignored.
func (s *videoService) GetMetadata(ctx context.Context, rawURL string) (*entities.VideoAsset, error) {
	ref, err := s.Resolve(rawURL)
	if err != nil {
		return nil, err
	}

	key := metadataCacheKey(ref)
	if s.store != nil {
		if cached, ok, cerr := s.store.Get(ctx, key); cerr == nil && ok {
			var asset entities.VideoAsset
			if err := json.Unmarshal([]byte(cached), &asset); err == nil {
				return &asset, nil
			}
		} else if cerr != nil && s.logger != nil {
			s.logger.Warn("metadata cache read failed", zap.Error(cerr))
		}
	}

	var asset *entities.VideoAsset
	switch ref.Platform {
	case entities.PlatformTikTok:
		asset, err = s.fetcher.FetchTikTokMetadata(ctx, ref)
	case entities.PlatformYouTube:
		asset, err = s.fetcher.FetchYouTubeMetadata(ctx, ref)
	default:
		return nil, apperrors.ErrUnsupportedPlatform(rawURL)
	}
	if err != nil {
		if s.logger != nil {
			s.logger.Error("❌ Metadata fetch failed",
				zap.String("platform", string(ref.Platform)),
				zap.String("platform_id", ref.PlatformID),
				zap.Error(err),
			)
		}
		return nil, apperrors.ErrMetadataFetchFailed(string(ref.Platform), err)
	}

	if s.store != nil {
		if b, err := json.Marshal(asset); err == nil {
			if cerr := s.store.Set(ctx, key, string(b), s.cfg.MetadataCacheTTL); cerr != nil && s.logger != nil {
				s.logger.Warn("metadata cache write failed", zap.Error(cerr))
			}
		}
	}

	if s.logger != nil {
		s.logger.Info("✅ Video metadata resolved",
			zap.String("platform", string(ref.Platform)),
			zap.String("platform_id", ref.PlatformID),
			zap.Int("duration_seconds", asset.DurationSeconds),
		)
	}
	return asset, nil
}

// ValidateForPipeline fetches metadata and enforces the duration gate.
// Videos whose reported duration exceeds the limit are rejected before any
// downstream stage spends money on them. Unknown durations (0) pass.
func (s *videoService) ValidateForPipeline(ctx context.Context, rawURL string) (*entities.VideoAsset, error) {
	asset, err := s.GetMetadata(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	max := s.cfg.MaxVideoDurationSeconds
	if asset.DurationSeconds > max {
		if s.logger != nil {
			s.logger.Warn("⚠️ Video exceeds duration limit",
				zap.String("url", rawURL),
				zap.Int("duration_seconds", asset.DurationSeconds),
				zap.Int("max_seconds", max),
			)
		}
		return nil, apperrors.ErrVideoTooLong(asset.DurationSeconds, max)
	}
	return asset, nil
}
