package provider

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const stabilityDefaultURL = "https://api.stability.ai/v1/generation/stable-diffusion-xl-1024-v1-0/text-to-image"

// StabilityProvider renders via the Stability AI REST API. The response
// carries the image inline as base64, so the handle holds raw bytes.
type StabilityProvider struct {
	httpClient *http.Client
	apiKey     string
	endpoint   string
}

func NewStabilityProvider(httpClient *http.Client, apiKey string) *StabilityProvider {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 120 * time.Second}
	}
	return &StabilityProvider{
		httpClient: httpClient,
		apiKey:     apiKey,
		endpoint:   stabilityDefaultURL,
	}
}

func (p *StabilityProvider) Name() string {
	return "stability"
}

type stabilityRequest struct {
	TextPrompts []stabilityPrompt `json:"text_prompts"`
	CfgScale    int               `json:"cfg_scale"`
	Width       int               `json:"width"`
	Height      int               `json:"height"`
	Steps       int               `json:"steps"`
	Samples     int               `json:"samples"`
	StylePreset string            `json:"style_preset,omitempty"`
}

type stabilityPrompt struct {
	Text   string  `json:"text"`
	Weight float64 `json:"weight"`
}

type stabilityResponse struct {
	Artifacts []struct {
		Base64       string `json:"base64"`
		FinishReason string `json:"finish_reason"`
	} `json:"artifacts"`
}

func (p *StabilityProvider) Generate(ctx context.Context, req Request) (*ImageHandle, error) {
	weight := req.Chromatic
	if weight == 0 {
		weight = 1.0
	}

	body, err := json.Marshal(stabilityRequest{
		TextPrompts: []stabilityPrompt{{Text: req.Prompt, Weight: weight}},
		CfgScale:    7,
		Width:       req.Width,
		Height:      req.Height,
		Steps:       30,
		Samples:     1,
		StylePreset: req.StylePreset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal stability request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build stability request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("stability request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stability returned status %d", resp.StatusCode)
	}

	var stabilityResp stabilityResponse
	if err := json.NewDecoder(resp.Body).Decode(&stabilityResp); err != nil {
		return nil, fmt.Errorf("failed to decode stability response: %w", err)
	}
	if len(stabilityResp.Artifacts) == 0 {
		return nil, ErrEmptyResult
	}

	data, err := base64.StdEncoding.DecodeString(stabilityResp.Artifacts[0].Base64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode stability artifact: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyResult
	}

	return &ImageHandle{Data: data}, nil
}
