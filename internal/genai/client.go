package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"applykit/internal/config"
	"applykit/internal/domain"
	"applykit/internal/port"
)

// Client implements port.TextGenerator against the Gemini generateContent API.
// The API key and model are taken from each request; the client only holds the
// endpoint and HTTP transport. Every call is a single attempt with no retry
// and no response caching.
type Client struct {
	baseURL  string
	endpoint string
	client   *http.Client
}

// NewClient creates a Gemini text-generation client.
func NewClient(cfg *config.GeminiConfig) *Client {
	return newClient(cfg, "")
}

// NewClientWithEndpoint creates a client pointing at a fixed API endpoint
// regardless of model (for testing).
func NewClientWithEndpoint(cfg *config.GeminiConfig, endpoint string) *Client {
	return newClient(cfg, endpoint)
}

func newClient(cfg *config.GeminiConfig, endpoint string) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		baseURL:  baseURL,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// generateRequest models the generateContent request body.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// generateResponse models the generateContent response body.
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Generate sends a prompt to the Gemini API and returns the generated text.
func (c *Client) Generate(ctx context.Context, input port.GenerateInput) (string, error) {
	if input.APIKey == "" {
		return "", fmt.Errorf("%w: empty key", domain.ErrInvalidAPIKey)
	}

	reqBody := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: input.Prompt}}},
		},
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	endpoint := c.endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf("%s/%s:generateContent", c.baseURL, input.Model)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", input.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: calling gemini API: %v", domain.ErrUpstream, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", domain.ErrUpstream, err)
	}

	var out generateResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("%w: gemini API error (status %d): %s", domain.ErrUpstream, resp.StatusCode, truncate(string(respBody), 500))
	}

	if resp.StatusCode != http.StatusOK {
		msg := "no error details provided"
		if out.Error != nil && out.Error.Message != "" {
			msg = out.Error.Message
		}
		if strings.Contains(msg, "API key not valid") {
			return "", fmt.Errorf("%w: %s", domain.ErrInvalidAPIKey, msg)
		}
		return "", fmt.Errorf("%w: gemini API error (status %d): %s", domain.ErrUpstream, resp.StatusCode, msg)
	}

	if len(out.Candidates) == 0 {
		return "", fmt.Errorf("%w: empty response from API: no candidates", domain.ErrUpstream)
	}
	if len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty response from API: no parts", domain.ErrUpstream)
	}

	return out.Candidates[0].Content.Parts[0].Text, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
