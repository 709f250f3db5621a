package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const openAIDefaultURL = "https://api.openai.com/v1/images/generations"

// OpenAIProvider renders via the OpenAI images API. DALL-E only supports
// a fixed set of sizes, so requested dimensions snap to the nearest
// supported orientation. The response carries a URL, not bytes.
type OpenAIProvider struct {
	httpClient *http.Client
	apiKey     string
	endpoint   string
}

func NewOpenAIProvider(httpClient *http.Client, apiKey string) *OpenAIProvider {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 120 * time.Second}
	}
	return &OpenAIProvider{
		httpClient: httpClient,
		apiKey:     apiKey,
		endpoint:   openAIDefaultURL,
	}
}

func (p *OpenAIProvider) Name() string {
	return "openai"
}

// snapSize maps arbitrary dimensions onto the sizes dall-e-3 accepts.
func snapSize(width, height int) string {
	switch {
	case width == height:
		return "1024x1024"
	case height > width:
		return "1024x1792"
	default:
		return "1792x1024"
	}
}

type openAIRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size"`
}

type openAIResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

func (p *OpenAIProvider) Generate(ctx context.Context, req Request) (*ImageHandle, error) {
	prompt := req.Prompt
	if req.StylePreset != "" {
		prompt = fmt.Sprintf("%s, in %s style", prompt, req.StylePreset)
	}

	body, err := json.Marshal(openAIRequest{
		Model:  "dall-e-3",
		Prompt: prompt,
		N:      1,
		Size:   snapSize(req.Width, req.Height),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal openai request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build openai request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openai returned status %d", resp.StatusCode)
	}

	var openAIResp openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&openAIResp); err != nil {
		return nil, fmt.Errorf("failed to decode openai response: %w", err)
	}
	if len(openAIResp.Data) == 0 || openAIResp.Data[0].URL == "" {
		return nil, ErrEmptyResult
	}

	return &ImageHandle{URL: openAIResp.Data[0].URL}, nil
}
