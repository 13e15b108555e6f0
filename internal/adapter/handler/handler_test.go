package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	apperrors "github.com/agrireel/content-remix/errors"
	"github.com/agrireel/content-remix/internal/domain/entities"
	"github.com/agrireel/content-remix/internal/infrastructure/external/elevenlabs"
	pkgvalidator "github.com/agrireel/content-remix/pkg/validator"
)

type fakeVideoService struct {
	asset *entities.VideoAsset
	err   error
}

func (f *fakeVideoService) Resolve(rawURL string) (entities.VideoReference, error) {
	return entities.VideoReference{}, nil
}

func (f *fakeVideoService) GetMetadata(ctx context.Context, rawURL string) (*entities.VideoAsset, error) {
	return f.asset, f.err
}

func (f *fakeVideoService) ValidateForPipeline(ctx context.Context, rawURL string) (*entities.VideoAsset, error) {
	return f.asset, f.err
}

type fakeSpeechService struct {
	result         *entities.SpeechResult
	voices         []entities.VoiceOption
	providerVoices []elevenlabs.Voice
	providerErr    error
	err            error
}

func (f *fakeSpeechService) Synthesize(ctx context.Context, text string, region entities.Region, opts *entities.SpeechOptions) (*entities.SpeechResult, error) {
	return f.result, f.err
}

func (f *fakeSpeechService) Voices() []entities.VoiceOption { return f.voices }

func (f *fakeSpeechService) ProviderVoices(ctx context.Context) ([]elevenlabs.Voice, error) {
	return f.providerVoices, f.providerErr
}

type fakeRenderService struct {
	job *entities.RenderJob
	err error
}

func (f *fakeRenderService) ResolveSources(ctx context.Context, refs []entities.VideoReference) []string {
	return nil
}

func (f *fakeRenderService) Render(ctx context.Context, videoURLs []string, audioURL string) (*entities.RenderJob, error) {
	return f.job, f.err
}

func (f *fakeRenderService) CheckStatus(ctx context.Context, renderID string) (*entities.RenderJob, error) {
	return f.job, f.err
}

func (f *fakeRenderService) RenderAndWait(ctx context.Context, videoURLs []string, audioURL string) (*entities.RenderJob, error) {
	return f.job, f.err
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = pkgvalidator.New()
	return e
}

func doJSON(e *echo.Echo, method, path, body string, h echo.HandlerFunc, pathParam ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if len(pathParam) == 2 {
		c.SetParamNames(pathParam[0])
		c.SetParamValues(pathParam[1])
	}
	_ = h(c)
	return rec
}

func TestGetMetadata(t *testing.T) {
	svc := &fakeVideoService{asset: &entities.VideoAsset{Title: "Rice tips", DurationSeconds: 45}}
	vc := NewVideoController(svc, nil)

	rec := doJSON(newEcho(), http.MethodPost, "/v1/videos/metadata",
		`{"url":"https://youtu.be/dQw4w9WgXcQ"}`, vc.GetMetadata)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Data entities.VideoAsset `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.Data.Title != "Rice tips" {
		t.Fatalf("unexpected data %+v", resp.Data)
	}
}

func TestGetMetadataRejectsBadURL(t *testing.T) {
	vc := NewVideoController(&fakeVideoService{}, nil)

	rec := doJSON(newEcho(), http.MethodPost, "/v1/videos/metadata",
		`{"url":"not a url"}`, vc.GetMetadata)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestValidateVideoTooLong(t *testing.T) {
	svc := &fakeVideoService{err: apperrors.ErrVideoTooLong(90, 60)}
	vc := NewVideoController(svc, nil)

	rec := doJSON(newEcho(), http.MethodPost, "/v1/videos/validate",
		`{"url":"https://youtu.be/dQw4w9WgXcQ"}`, vc.Validate)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Code int `json:"code"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body.Code != int(apperrors.ErrorCode_VIDEO_TOO_LONG) {
		t.Fatalf("unexpected code %d", body.Code)
	}
}

func TestListVoices(t *testing.T) {
	svc := &fakeSpeechService{voices: []entities.VoiceOption{{ID: "kael-filipino"}}}
	sc := NewSpeechController(svc, nil)

	rec := doJSON(newEcho(), http.MethodGet, "/v1/speech/voices", "", sc.ListVoices)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var resp struct {
		Data struct {
			Voices []entities.VoiceOption `json:"voices"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(resp.Data.Voices) != 1 || resp.Data.Voices[0].ID != "kael-filipino" {
		t.Fatalf("unexpected voices %+v", resp.Data.Voices)
	}
}

func TestListVoicesIncludesProviderInventory(t *testing.T) {
	svc := &fakeSpeechService{
		voices:         []entities.VoiceOption{{ID: "kael-filipino"}},
		providerVoices: []elevenlabs.Voice{{VoiceID: "abc", Name: "Extra"}},
	}
	sc := NewSpeechController(svc, nil)

	rec := doJSON(newEcho(), http.MethodGet, "/v1/speech/voices", "", sc.ListVoices)

	var resp struct {
		Data struct {
			Voices         []entities.VoiceOption `json:"voices"`
			ProviderVoices []elevenlabs.Voice     `json:"provider_voices"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(resp.Data.ProviderVoices) != 1 || resp.Data.ProviderVoices[0].Name != "Extra" {
		t.Fatalf("provider inventory missing: %+v", resp.Data)
	}
}

func TestListVoicesDegradesWithoutProvider(t *testing.T) {
	svc := &fakeSpeechService{
		voices:      []entities.VoiceOption{{ID: "kael-filipino"}},
		providerErr: apperrors.ErrSpeechProvider(context.DeadlineExceeded),
	}
	sc := NewSpeechController(svc, nil)

	rec := doJSON(newEcho(), http.MethodGet, "/v1/speech/voices", "", sc.ListVoices)

	if rec.Code != http.StatusOK {
		t.Fatalf("catalog must survive a provider outage, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "provider_voices") {
		t.Fatalf("unexpected provider inventory in %s", rec.Body.String())
	}
}

func TestSynthesizeRequiresText(t *testing.T) {
	sc := NewSpeechController(&fakeSpeechService{}, nil)

	rec := doJSON(newEcho(), http.MethodPost, "/v1/speech", `{"region":"philippines"}`, sc.Synthesize)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRenderStatus(t *testing.T) {
	svc := &fakeRenderService{job: &entities.RenderJob{
		RenderID: "r-1",
		Status:   entities.RenderStatusDone,
		VideoURL: "https://out/final.mp4",
	}}
	rc := NewRenderController(svc, nil)

	rec := doJSON(newEcho(), http.MethodGet, "/v1/renders/r-1", "", rc.Status, "id", "r-1")

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var resp struct {
		Data entities.RenderJob `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.Data.Status != entities.RenderStatusDone || resp.Data.VideoURL == "" {
		t.Fatalf("unexpected job %+v", resp.Data)
	}
}

func TestRenderSubmitRequiresSources(t *testing.T) {
	rc := NewRenderController(&fakeRenderService{}, nil)

	rec := doJSON(newEcho(), http.MethodPost, "/v1/renders", `{"video_urls":[]}`, rc.Submit)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
