package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/agrireel/content-remix/pkg/config"
)

func TestGenerateText_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("unexpected auth header %q", got)
		}
		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Fatalf("unexpected messages %+v", req.Messages)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "hello world"}},
			},
		})
	}))
	defer ts.Close()

	client := NewOpenAIClient(&config.OpenAIConfig{APIKey: "test-key", BaseURL: ts.URL})
	got, err := client.GenerateText(context.Background(), "gpt-4.1-mini", "sys", "hi", 0.7, 100)
	if err != nil {
		t.Fatalf("GenerateText failed: %v", err)
	}
	if got != "hello world" {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestGenerateJSON_SetsResponseFormat(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if req.ResponseFormat == nil || req.ResponseFormat.Type != "json_object" {
			t.Fatalf("expected json_object response format, got %+v", req.ResponseFormat)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": `{"ok":true}`}},
			},
		})
	}))
	defer ts.Close()

	client := NewOpenAIClient(&config.OpenAIConfig{APIKey: "k", BaseURL: ts.URL})
	got, err := client.GenerateJSON(context.Background(), "gpt-4o-mini", "sys", "give json", 0.3, 500)
	if err != nil {
		t.Fatalf("GenerateJSON failed: %v", err)
	}
	if got != `{"ok":true}` {
		t.Fatalf("unexpected content %q", got)
	}
}

func TestGenerateText_EmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer ts.Close()

	client := NewOpenAIClient(&config.OpenAIConfig{APIKey: "k", BaseURL: ts.URL})
	if _, err := client.GenerateText(context.Background(), "m", "s", "p", 0, 0); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestTranscribeAudio_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/audio/transcriptions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("not multipart: %v", err)
		}
		if got := r.FormValue("response_format"); got != "verbose_json" {
			t.Fatalf("expected verbose_json, got %q", got)
		}
		json.NewEncoder(w).Encode(TranscriptionResponse{
			Text:     "planting rice is never fun",
			Language: "en",
			Duration: 12.5,
			Segments: []TranscriptionSegment{{Start: 0, End: 12.5, Text: "planting rice is never fun"}},
		})
	}))
	defer ts.Close()

	client := NewOpenAIClient(&config.OpenAIConfig{APIKey: "k", BaseURL: ts.URL})
	tr, err := client.TranscribeAudio(context.Background(), "whisper-1", "audio.mp3", strings.NewReader("fake-bytes"))
	if err != nil {
		t.Fatalf("TranscribeAudio failed: %v", err)
	}
	if tr.Duration != 12.5 || len(tr.Segments) != 1 {
		t.Fatalf("unexpected response %+v", tr)
	}
}

func TestNewOpenAIClientReadsConfigOnly(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "env-key")
	t.Setenv("OPENAI_API_URL", "http://env-url")

	client := NewOpenAIClient(&config.OpenAIConfig{})
	if client.apiKey != "" {
		t.Fatalf("api key must come from config, got %q", client.apiKey)
	}
	if client.baseURL != "https://api.openai.com" {
		t.Fatalf("unexpected base url %q", client.baseURL)
	}
}
