package mediafetch

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/agrireel/content-remix/pkg/config"
)

func wrapDirectURL(t *testing.T, direct string) string {
	t.Helper()
	inner := "https://redirect.example.com/go?url=" + url.QueryEscape(direct)
	return "https://dl.example.com/dlUrl/" + base64.StdEncoding.EncodeToString([]byte(inner))
}

func TestExtractDirectURL(t *testing.T) {
	wrapped := wrapDirectURL(t, "https://cdn.example.com/video.mp4")
	if got := ExtractDirectURL(wrapped); got != "https://cdn.example.com/video.mp4" {
		t.Fatalf("unexpected direct url %q", got)
	}
}

func TestExtractDirectURL_Malformed(t *testing.T) {
	cases := []string{
		"",
		"https://dl.example.com/plain/link.mp4",
		"https://dl.example.com/dlUrl/",
		"https://dl.example.com/dlUrl/%%not-base64%%",
	}
	for _, c := range cases {
		if got := ExtractDirectURL(c); got != "" {
			t.Fatalf("expected empty for %q, got %q", c, got)
		}
	}
}

func TestResolveTikTokMedia(t *testing.T) {
	video := wrapDirectURL(t, "https://cdn.example.com/v.mp4")
	audio := wrapDirectURL(t, "https://cdn.example.com/a.mp3")

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/json" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("x-rapidapi-key") != "test-key" {
			t.Fatalf("missing rapidapi key header")
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"download_links": map[string]string{"video": video, "audio": audio},
		})
	}))
	defer ts.Close()

	client := NewClient(&config.RapidAPIConfig{APIKey: "test-key", TikTokBaseURL: ts.URL})
	media, err := client.ResolveTikTokMedia(context.Background(), "https://www.tiktok.com/@user/video/123")
	if err != nil {
		t.Fatalf("ResolveTikTokMedia failed: %v", err)
	}
	if media.VideoURL != "https://cdn.example.com/v.mp4" {
		t.Fatalf("unexpected video url %q", media.VideoURL)
	}
	if media.AudioURL != "https://cdn.example.com/a.mp3" {
		t.Fatalf("unexpected audio url %q", media.AudioURL)
	}
}

func TestResolveTikTokMedia_NoLinks(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"download_links": map[string]string{},
		})
	}))
	defer ts.Close()

	client := NewClient(&config.RapidAPIConfig{APIKey: "k", TikTokBaseURL: ts.URL})
	if _, err := client.ResolveTikTokMedia(context.Background(), "https://www.tiktok.com/@u/video/1"); err == nil {
		t.Fatal("expected error when no links are present")
	}
}

func TestDownloadYouTubeAudio(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/download-mp3/abc123def45" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("quality") != "low" {
			t.Fatalf("expected low quality, got %q", r.URL.Query().Get("quality"))
		}
		w.Write([]byte("mp3-bytes"))
	}))
	defer ts.Close()

	client := NewClient(&config.RapidAPIConfig{APIKey: "k", YouTubeBaseURL: ts.URL})
	audio, err := client.DownloadYouTubeAudio(context.Background(), "abc123def45")
	if err != nil {
		t.Fatalf("DownloadYouTubeAudio failed: %v", err)
	}
	if string(audio) != "mp3-bytes" {
		t.Fatalf("unexpected audio %q", audio)
	}
}

func TestDownloadTikTokAudio(t *testing.T) {
	var cdn *httptest.Server
	cdn = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != browserUserAgent {
			t.Fatalf("expected browser user agent, got %q", r.Header.Get("User-Agent"))
		}
		w.Write([]byte("audio-bytes"))
	}))
	defer cdn.Close()

	resolver := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"download_links": map[string]string{"audio": wrapDirectURL(t, cdn.URL+"/a.mp3")},
		})
	}))
	defer resolver.Close()

	client := NewClient(&config.RapidAPIConfig{APIKey: "k", TikTokBaseURL: resolver.URL})
	audio, err := client.DownloadTikTokAudio(context.Background(), "https://www.tiktok.com/@u/video/1")
	if err != nil {
		t.Fatalf("DownloadTikTokAudio failed: %v", err)
	}
	if string(audio) != "audio-bytes" {
		t.Fatalf("unexpected audio %q", audio)
	}
}
