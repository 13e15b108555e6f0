package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agrireel/content-remix/internal/domain/entities"
)

func TestParseISO8601Duration(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"PT1H2M3S", 3723},
		{"PT15M33S", 933},
		{"PT45S", 45},
		{"PT2H", 7200},
		{"PT0S", 0},
		{"garbage", 0},
		{"", 0},
	}
	for _, c := range cases {
		if got := ParseISO8601Duration(c.in); got != c.want {
			t.Errorf("ParseISO8601Duration(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestFetchTikTokMetadata(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/oembed" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]string{
			"title":         "Rice planting hacks",
			"author_name":   "farmer_joe",
			"thumbnail_url": "https://p16.example.com/thumb.jpg",
		})
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "")
	ref := entities.NewVideoReference("https://www.tiktok.com/@farmer_joe/video/123", entities.PlatformTikTok, "123")
	asset, err := client.FetchTikTokMetadata(context.Background(), ref)
	if err != nil {
		t.Fatalf("FetchTikTokMetadata failed: %v", err)
	}
	if asset.Title != "Rice planting hacks" {
		t.Fatalf("unexpected title %q", asset.Title)
	}
	if asset.DurationSeconds != 60 {
		t.Fatalf("expected default duration 60, got %d", asset.DurationSeconds)
	}
	if asset.Author != "farmer_joe" {
		t.Fatalf("unexpected author %q", asset.Author)
	}
}

func TestFetchTikTokMetadata_EmptyTitleDefaults(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "")
	ref := entities.NewVideoReference("u", entities.PlatformTikTok, "1")
	asset, err := client.FetchTikTokMetadata(context.Background(), ref)
	if err != nil {
		t.Fatalf("FetchTikTokMetadata failed: %v", err)
	}
	if asset.Title != "TikTok Video" {
		t.Fatalf("expected default title, got %q", asset.Title)
	}
}

func TestFetchYouTubeMetadata_MetaTags(t *testing.T) {
	page := `<html><head>
		<meta name="title" content="How to plant rice">
		<meta itemprop="duration" content="PT0M45S">
	</head><body></body></html>`

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("v") != "abc123def45" {
			t.Fatalf("unexpected video id %q", r.URL.Query().Get("v"))
		}
		fmt.Fprint(w, page)
	}))
	defer ts.Close()

	client := NewClient("", ts.URL)
	ref := entities.NewVideoReference("u", entities.PlatformYouTube, "abc123def45")
	asset, err := client.FetchYouTubeMetadata(context.Background(), ref)
	if err != nil {
		t.Fatalf("FetchYouTubeMetadata failed: %v", err)
	}
	if asset.Title != "How to plant rice" {
		t.Fatalf("unexpected title %q", asset.Title)
	}
	if asset.DurationSeconds != 45 {
		t.Fatalf("unexpected duration %d", asset.DurationSeconds)
	}
	if asset.ThumbnailURL != "https://img.youtube.com/vi/abc123def45/maxresdefault.jpg" {
		t.Fatalf("unexpected thumbnail %q", asset.ThumbnailURL)
	}
}

func TestFetchYouTubeMetadata_PlayerResponseFallback(t *testing.T) {
	page := `<html><head></head><body>
	<script>var ytInitialPlayerResponse = {"videoDetails":{"title":"Pest control","author":"AgriChannel","lengthSeconds":"52"}};</script>
	</body></html>`

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, page)
	}))
	defer ts.Close()

	client := NewClient("", ts.URL)
	ref := entities.NewVideoReference("u", entities.PlatformYouTube, "xyz987wvu65")
	asset, err := client.FetchYouTubeMetadata(context.Background(), ref)
	if err != nil {
		t.Fatalf("FetchYouTubeMetadata failed: %v", err)
	}
	if asset.Title != "Pest control" {
		t.Fatalf("unexpected title %q", asset.Title)
	}
	if asset.Author != "AgriChannel" {
		t.Fatalf("unexpected author %q", asset.Author)
	}
	if asset.DurationSeconds != 52 {
		t.Fatalf("unexpected duration %d", asset.DurationSeconds)
	}
}
