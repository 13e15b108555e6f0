// Package shotstack is a minimal client for the Shotstack render API.
package shotstack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/agrireel/content-remix/pkg/config"
)

// Client calls the Shotstack edit API
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient creates a Shotstack client from config
func NewClient(cfg *config.ShotstackConfig) *Client {
	base := "https://api.shotstack.io/stage"
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
		if cfg.BaseURL != "" {
			base = cfg.BaseURL
		}
	}

	return &Client{
		apiKey:  apiKey,
		baseURL: base,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Asset is a clip's media source. Trim is always serialized, the renderer
// expects an explicit zero.
type Asset struct {
	Type string  `json:"type"`
	Src  string  `json:"src"`
	Trim float64 `json:"trim"`
}

// Transition controls how a clip enters and leaves
type Transition struct {
	In  string `json:"in,omitempty"`
	Out string `json:"out,omitempty"`
}

// Clip places an asset on the timeline
type Clip struct {
	Asset      Asset       `json:"asset"`
	Start      float64     `json:"start"`
	Length     float64     `json:"length"`
	Transition *Transition `json:"transition,omitempty"`
}

// Track is an ordered set of clips
type Track struct {
	Clips []Clip `json:"clips"`
}

// Soundtrack is the timeline's audio bed
type Soundtrack struct {
	Src    string  `json:"src"`
	Effect string  `json:"effect,omitempty"`
	Volume float64 `json:"volume,omitempty"`
}

// Timeline is the full edit description
type Timeline struct {
	Soundtrack *Soundtrack `json:"soundtrack,omitempty"`
	Tracks     []Track     `json:"tracks"`
}

// Output selects the render target format
type Output struct {
	Format      string `json:"format"`
	Resolution  string `json:"resolution"`
	AspectRatio string `json:"aspectRatio,omitempty"`
	FPS         int    `json:"fps,omitempty"`
	Quality     string `json:"quality,omitempty"`
}

// RenderRequest is the payload for POST /render
type RenderRequest struct {
	Timeline Timeline `json:"timeline"`
	Output   Output   `json:"output"`
}

type renderSubmitResponse struct {
	Success  bool `json:"success"`
	Response struct {
		ID string `json:"id"`
	} `json:"response"`
}

// RenderStatusResponse is the interesting part of GET /render/{id}
type RenderStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	URL    string `json:"url,omitempty"`
	Error  string `json:"error,omitempty"`
}

type renderGetResponse struct {
	Success  bool                 `json:"success"`
	Response RenderStatusResponse `json:"response"`
}

// SubmitRender queues a render and returns the render id
func (c *Client) SubmitRender(ctx context.Context, req RenderRequest) (string, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/render", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("shotstack returned status %d", resp.StatusCode)
	}

	var sr renderSubmitResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return "", err
	}
	if sr.Response.ID == "" {
		return "", fmt.Errorf("shotstack returned no render id")
	}
	return sr.Response.ID, nil
}

// GetRenderStatus fetches the current state of a render
func (c *Client) GetRenderStatus(ctx context.Context, renderID string) (*RenderStatusResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/render/"+renderID, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("x-api-key", c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("render %s not found", renderID)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("shotstack returned status %d", resp.StatusCode)
	}

	var gr renderGetResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return nil, err
	}
	return &gr.Response, nil
}
