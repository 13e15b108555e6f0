package transcription

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/agrireel/content-remix/internal/domain/entities"
	"github.com/agrireel/content-remix/internal/infrastructure/external/mediafetch"
	pkgai "github.com/agrireel/content-remix/pkg/ai"
)

type fakeResolver struct{}

func (fakeResolver) Resolve(rawURL string) (entities.VideoReference, error) {
	switch {
	case len(rawURL) > 8 && rawURL[8] == 'y': // https://y...
		return entities.NewVideoReference(rawURL, entities.PlatformYouTube, "vid11chars0"), nil
	case len(rawURL) > 8 && rawURL[8] == 't': // https://t...
		return entities.NewVideoReference(rawURL, entities.PlatformTikTok, "123"), nil
	}
	return entities.VideoReference{Platform: entities.PlatformUnknown}, errors.New("unsupported")
}

type fakeMedia struct {
	downloadErr error
	resolveErr  error
	audioURL    string
}

func (f *fakeMedia) DownloadYouTubeAudio(ctx context.Context, videoID string) ([]byte, error) {
	if f.downloadErr != nil {
		return nil, f.downloadErr
	}
	return []byte("mp3"), nil
}

func (f *fakeMedia) DownloadTikTokAudio(ctx context.Context, pageURL string) ([]byte, error) {
	if f.downloadErr != nil {
		return nil, f.downloadErr
	}
	return []byte("mp3"), nil
}

func (f *fakeMedia) ResolveTikTokMedia(ctx context.Context, pageURL string) (*mediafetch.TikTokMedia, error) {
	if f.resolveErr != nil {
		return nil, f.resolveErr
	}
	return &mediafetch.TikTokMedia{AudioURL: f.audioURL}, nil
}

type fakeWhisper struct {
	calls int64
	delay time.Duration
	err   error
	resp  *pkgai.TranscriptionResponse
}

func (f *fakeWhisper) TranscribeAudio(ctx context.Context, model, filename string, audio io.Reader) (*pkgai.TranscriptionResponse, error) {
	atomic.AddInt64(&f.calls, 1)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.err != nil {
		return nil, backoff.Permanent(f.err)
	}
	return f.resp, nil
}

type fakeURLTranscriber struct {
	calls  int64
	gotURL string
	result *entities.TranscriptionResult
	err    error
}

func (f *fakeURLTranscriber) TranscribeFromURL(ctx context.Context, audioURL string) (*entities.TranscriptionResult, error) {
	atomic.AddInt64(&f.calls, 1)
	f.gotURL = audioURL
	if f.err != nil {
		return nil, backoff.Permanent(f.err)
	}
	return f.result, nil
}

func whisperResp() *pkgai.TranscriptionResponse {
	return &pkgai.TranscriptionResponse{
		Text:     "planting rice on time improves yield",
		Language: "en",
		Segments: []pkgai.TranscriptionSegment{
			{Start: 0, End: 10, Text: "planting rice on time"},
			{Start: 10, End: 21.5, Text: "improves yield"},
		},
	}
}

func TestTranscribeYouTube(t *testing.T) {
	whisper := &fakeWhisper{resp: whisperResp()}
	svc := NewService(fakeResolver{}, &fakeMedia{}, whisper, nil, "whisper-1", nil, nil)

	result, err := svc.Transcribe(context.Background(), "https://youtu.be/vid11chars0", entities.LanguageEnglish)
	if err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}
	if result.Degraded {
		t.Fatal("successful transcription must not be degraded")
	}
	if result.Source != entities.TranscriptionSourceWhisper {
		t.Fatalf("unexpected source %s", result.Source)
	}
	// No reported duration: derived from the max segment end
	if result.DurationSeconds != 21.5 {
		t.Fatalf("unexpected duration %v", result.DurationSeconds)
	}
}

func TestTranscribeTikTokUsesResolvedAudioURL(t *testing.T) {
	urlT := &fakeURLTranscriber{result: &entities.TranscriptionResult{
		Text:   "neem oil works",
		Source: entities.TranscriptionSourceAssemblyAI,
		Segments: []entities.TranscriptSegment{
			{Start: 0, End: 8, Text: "neem oil works"},
		},
	}}
	svc := NewService(fakeResolver{}, &fakeMedia{audioURL: "https://cdn.example.com/a.mp3"}, nil, urlT, "whisper-1", nil, nil)

	result, err := svc.Transcribe(context.Background(), "https://tiktok.com/@u/video/123", entities.LanguageEnglish)
	if err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}
	if urlT.gotURL != "https://cdn.example.com/a.mp3" {
		t.Fatalf("expected resolved audio url, got %q", urlT.gotURL)
	}
	if result.Source != entities.TranscriptionSourceAssemblyAI {
		t.Fatalf("unexpected source %s", result.Source)
	}
}

func TestTranscribeTikTokWithoutURLBackendUsesWhisper(t *testing.T) {
	whisper := &fakeWhisper{resp: whisperResp()}
	svc := NewService(fakeResolver{}, &fakeMedia{}, whisper, nil, "whisper-1", nil, nil)

	result, err := svc.Transcribe(context.Background(), "https://tiktok.com/@u/video/123", entities.LanguageEnglish)
	if err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}
	if got := atomic.LoadInt64(&whisper.calls); got != 1 {
		t.Fatalf("expected one whisper call, got %d", got)
	}
	if result.Source != entities.TranscriptionSourceWhisper {
		t.Fatalf("unexpected source %s", result.Source)
	}
}

func TestTranscribeFallsBackOnBackendFailure(t *testing.T) {
	whisper := &fakeWhisper{err: errors.New("quota exceeded")}
	svc := NewService(fakeResolver{}, &fakeMedia{}, whisper, nil, "whisper-1", nil, nil)

	result, err := svc.Transcribe(context.Background(), "https://youtu.be/vid11chars0", entities.LanguageEnglish)
	if err != nil {
		t.Fatalf("fallback path must not return an error, got %v", err)
	}
	if !result.Degraded {
		t.Fatal("expected degraded result")
	}
	if result.Source != entities.TranscriptionSourceFallback {
		t.Fatalf("unexpected source %s", result.Source)
	}
	if result.DegradedCause == "" {
		t.Fatal("degraded result must carry a cause")
	}
	if result.Language != "en" || result.DurationSeconds != 30 {
		t.Fatalf("fallback shape wrong: lang=%q duration=%v", result.Language, result.DurationSeconds)
	}
	if result.Text == "" || len(result.Segments) == 0 {
		t.Fatal("fallback must carry usable content")
	}
}

func TestTranscribeFallsBackOnUnsupportedPlatform(t *testing.T) {
	svc := NewService(fakeResolver{}, &fakeMedia{}, &fakeWhisper{resp: whisperResp()}, nil, "whisper-1", nil, nil)

	result, err := svc.Transcribe(context.Background(), "https://vimeo.com/1", entities.LanguageEnglish)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Degraded {
		t.Fatal("expected degraded result for unsupported platform")
	}
}

func TestTranscribeDedupsConcurrentCalls(t *testing.T) {
	whisper := &fakeWhisper{resp: whisperResp(), delay: 100 * time.Millisecond}
	svc := NewService(fakeResolver{}, &fakeMedia{}, whisper, nil, "whisper-1", nil, nil)

	const callers = 5
	var wg sync.WaitGroup
	results := make([]*entities.TranscriptionResult, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := svc.Transcribe(context.Background(), "https://youtu.be/vid11chars0", entities.LanguageEnglish)
			if err != nil {
				t.Errorf("caller %d failed: %v", i, err)
				return
			}
			// Callers enrich their result in place; with a shared
			// instance these concurrent writes would race.
			r.Insights = []string{fmt.Sprintf("insight-%d", i)}
			results[i] = r
		}(i)
	}
	wg.Wait()

	if got := atomic.LoadInt64(&whisper.calls); got != 1 {
		t.Fatalf("expected a single backend call, got %d", got)
	}
	for i := 0; i < callers; i++ {
		if results[i].Text != results[0].Text {
			t.Fatalf("caller %d got different content", i)
		}
		if i > 0 && results[i] == results[0] {
			t.Fatalf("caller %d shares the originator's result instance", i)
		}
		want := fmt.Sprintf("insight-%d", i)
		if len(results[i].Insights) != 1 || results[i].Insights[0] != want {
			t.Fatalf("caller %d lost its own enrichment: %v", i, results[i].Insights)
		}
	}
}

func TestTranscribeDedupWindowClosesAfterSettle(t *testing.T) {
	whisper := &fakeWhisper{resp: whisperResp()}
	inflight := make(map[string]*InflightCall)
	svc := NewService(fakeResolver{}, &fakeMedia{}, whisper, nil, "whisper-1", inflight, nil)

	url := "https://youtu.be/vid11chars0"
	if _, err := svc.Transcribe(context.Background(), url, entities.LanguageEnglish); err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	if len(inflight) != 0 {
		t.Fatalf("inflight map must be empty after settle, has %d entries", len(inflight))
	}
	if _, err := svc.Transcribe(context.Background(), url, entities.LanguageEnglish); err != nil {
		t.Fatalf("second call failed: %v", err)
	}
	if got := atomic.LoadInt64(&whisper.calls); got != 2 {
		t.Fatalf("sequential calls must each hit the backend, got %d", got)
	}
}
