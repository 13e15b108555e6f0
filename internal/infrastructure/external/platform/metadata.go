// Package platform fetches public video metadata straight from the
// platforms: TikTok's oEmbed endpoint and the YouTube watch page. Neither
// needs an API key.
package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"github.com/agrireel/content-remix/internal/domain/entities"
)

const (
	defaultTikTokBaseURL  = "https://www.tiktok.com"
	defaultYouTubeBaseURL = "https://www.youtube.com"

	// TikTok's oEmbed response carries no duration
	tiktokDefaultDurationSeconds = 60

	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/127.0.0.0 Safari/537.36"
)

// Client fetches video metadata from platform endpoints
type Client struct {
	tiktokBaseURL  string
	youtubeBaseURL string
	client         *http.Client
}

// NewClient creates a metadata client. Empty base URLs select the real
// platform hosts.
func NewClient(tiktokBaseURL, youtubeBaseURL string) *Client {
	if tiktokBaseURL == "" {
		tiktokBaseURL = defaultTikTokBaseURL
	}
	if youtubeBaseURL == "" {
		youtubeBaseURL = defaultYouTubeBaseURL
	}
	return &Client{
		tiktokBaseURL:  tiktokBaseURL,
		youtubeBaseURL: youtubeBaseURL,
		client:         &http.Client{Timeout: 15 * time.Second},
	}
}

type oembedResponse struct {
	Title        string `json:"title"`
	AuthorName   string `json:"author_name"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// FetchTikTokMetadata asks TikTok's oEmbed endpoint about a video id
func (c *Client) FetchTikTokMetadata(ctx context.Context, ref entities.VideoReference) (*entities.VideoAsset, error) {
	videoURL := fmt.Sprintf("https://www.tiktok.com/video/%s", ref.PlatformID)
	endpoint := fmt.Sprintf("%s/oembed?url=%s", c.tiktokBaseURL, url.QueryEscape(videoURL))

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("tiktok oembed returned status %d", resp.StatusCode)
	}

	var or oembedResponse
	if err := json.NewDecoder(resp.Body).Decode(&or); err != nil {
		return nil, err
	}

	title := or.Title
	if title == "" {
		title = "TikTok Video"
	}

	return &entities.VideoAsset{
		Reference:       ref,
		Title:           title,
		ThumbnailURL:    or.ThumbnailURL,
		DurationSeconds: tiktokDefaultDurationSeconds,
		Author:          or.AuthorName,
	}, nil
}

var (
	metaTitleRe    = regexp.MustCompile(`<meta\s+name="title"\s+content="([^"]*)"`)
	metaDurationRe = regexp.MustCompile(`<meta\s+itemprop="duration"\s+content="([^"]*)"`)
	playerJSONRe   = regexp.MustCompile(`var ytInitialPlayerResponse = (\{[\s\S]*?\});`)
	isoDurationRe  = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)
)

type playerResponse struct {
	VideoDetails struct {
		Title         string `json:"title"`
		Author        string `json:"author"`
		LengthSeconds string `json:"lengthSeconds"`
	} `json:"videoDetails"`
}

// FetchYouTubeMetadata scrapes the watch page for title, author and
// duration. The structured meta tags are tried first; when they are absent
// the embedded player response JSON is parsed instead.
func (c *Client) FetchYouTubeMetadata(ctx context.Context, ref entities.VideoReference) (*entities.VideoAsset, error) {
	endpoint := fmt.Sprintf("%s/watch?v=%s", c.youtubeBaseURL, ref.PlatformID)

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	// Skip the cookie consent interstitial
	req.Header.Set("Cookie", "CONSENT=YES+1")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("youtube returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	page := string(body)

	title := "YouTube Video"
	if m := metaTitleRe.FindStringSubmatch(page); m != nil && m[1] != "" {
		title = m[1]
	}

	duration := 0
	if m := metaDurationRe.FindStringSubmatch(page); m != nil {
		duration = ParseISO8601Duration(m[1])
	}

	author := ""
	if duration == 0 || title == "YouTube Video" || author == "" {
		if m := playerJSONRe.FindStringSubmatch(page); m != nil {
			var pr playerResponse
			if err := json.Unmarshal([]byte(m[1]), &pr); err == nil {
				if pr.VideoDetails.Title != "" {
					title = pr.VideoDetails.Title
				}
				if pr.VideoDetails.Author != "" {
					author = pr.VideoDetails.Author
				}
				if secs, err := strconv.Atoi(pr.VideoDetails.LengthSeconds); err == nil && secs > 0 {
					duration = secs
				}
			}
		}
	}

	return &entities.VideoAsset{
		Reference:       ref,
		Title:           title,
		ThumbnailURL:    fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", ref.PlatformID),
		DurationSeconds: duration,
		Author:          author,
	}, nil
}

// ParseISO8601Duration converts an ISO 8601 duration like PT1H2M3S to
// seconds. Malformed input yields 0.
func ParseISO8601Duration(duration string) int {
	m := isoDurationRe.FindStringSubmatch(duration)
	if m == nil {
		return 0
	}
	hours, _ := strconv.Atoi(zeroIfEmpty(m[1]))
	minutes, _ := strconv.Atoi(zeroIfEmpty(m[2]))
	seconds, _ := strconv.Atoi(zeroIfEmpty(m[3]))
	return hours*3600 + minutes*60 + seconds
}

func zeroIfEmpty(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
