// Package mediafetch resolves platform video pages into direct media URLs
// and downloads audio tracks through the RapidAPI downloader services.
package mediafetch

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/agrireel/content-remix/errors"
	"github.com/agrireel/content-remix/pkg/config"
)

const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Client calls the RapidAPI media downloader hosts
type Client struct {
	apiKey           string
	youtubeBaseURL   string
	youtubeVideoBase string
	tiktokBaseURL    string
	client           *http.Client
}

// NewClient creates a media fetch client from config
func NewClient(cfg *config.RapidAPIConfig) *Client {
	return &Client{
		apiKey:           cfg.APIKey,
		youtubeBaseURL:   cfg.YouTubeBaseURL,
		youtubeVideoBase: cfg.YouTubeVideoBaseURL,
		tiktokBaseURL:    cfg.TikTokBaseURL,
		client:           &http.Client{Timeout: 120 * time.Second},
	}
}

func (c *Client) rapidGet(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return nil, err
	}
	if u, err := url.Parse(rawURL); err == nil {
		req.Header.Set("x-rapidapi-host", u.Host)
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		resp.Body.Close()
		return nil, apperrors.ErrExternalAPIFailed("media downloader", fmt.Errorf("status %d", resp.StatusCode))
	}
	return resp, nil
}

// DownloadYouTubeAudio fetches the low-quality mp3 track for a video id
func (c *Client) DownloadYouTubeAudio(ctx context.Context, videoID string) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/download-mp3/%s?quality=low", c.youtubeBaseURL, videoID)
	resp, err := c.rapidGet(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("empty audio for youtube video %s", videoID)
	}
	return audio, nil
}

type youtubeVideoResponse struct {
	File string `json:"file"`
}

// ResolveYouTubeVideo returns a direct video file URL for a video id
func (c *Client) ResolveYouTubeVideo(ctx context.Context, videoID string) (string, error) {
	endpoint := fmt.Sprintf("%s/download_video/%s?quality=247", c.youtubeVideoBase, videoID)
	resp, err := c.rapidGet(ctx, endpoint)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var vr youtubeVideoResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return "", err
	}
	if vr.File == "" {
		return "", fmt.Errorf("no video file in response for %s", videoID)
	}
	return vr.File, nil
}

// TikTokMedia holds the direct media URLs resolved for a TikTok page URL
type TikTokMedia struct {
	VideoURL string
	AudioURL string
}

type tiktokResponse struct {
	DownloadLinks struct {
		Video string `json:"video"`
		Audio string `json:"audio"`
	} `json:"download_links"`
}

// ResolveTikTokMedia resolves a TikTok page URL to direct media URLs.
// The downloader wraps real URLs in a base64 redirect; both links are
// unwrapped before returning.
func (c *Client) ResolveTikTokMedia(ctx context.Context, pageURL string) (*TikTokMedia, error) {
	endpoint := fmt.Sprintf("%s/json?url=%s", c.tiktokBaseURL, url.QueryEscape(pageURL))
	resp, err := c.rapidGet(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var tr tiktokResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, err
	}

	media := &TikTokMedia{
		VideoURL: ExtractDirectURL(tr.DownloadLinks.Video),
		AudioURL: ExtractDirectURL(tr.DownloadLinks.Audio),
	}
	if media.VideoURL == "" && media.AudioURL == "" {
		return nil, fmt.Errorf("no media links found for %s", pageURL)
	}
	return media, nil
}

// DownloadTikTokAudio resolves and downloads the audio track of a TikTok URL
func (c *Client) DownloadTikTokAudio(ctx context.Context, pageURL string) ([]byte, error) {
	media, err := c.ResolveTikTokMedia(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	if media.AudioURL == "" {
		return nil, fmt.Errorf("no audio link for %s", pageURL)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", media.AudioURL, nil)
	if err != nil {
		return nil, err
	}
	// The CDN rejects requests without a browser user agent
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("audio download returned status %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("empty audio from %s", media.AudioURL)
	}
	return audio, nil
}

// ExtractDirectURL unwraps the downloader's /dlUrl/ redirect links. The
// path segment after /dlUrl/ is a base64-encoded URL whose "url" query
// parameter is the real media location. Returns "" when the link does not
// follow that shape.
func ExtractDirectURL(downloadURL string) string {
	if downloadURL == "" {
		return ""
	}
	parts := strings.SplitN(downloadURL, "/dlUrl/", 2)
	if len(parts) < 2 || parts[1] == "" {
		return ""
	}

	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return ""
	}
	u, err := url.Parse(string(decoded))
	if err != nil {
		return ""
	}
	return u.Query().Get("url")
}
