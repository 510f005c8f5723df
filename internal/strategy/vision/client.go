package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"paxscan/internal/config"
	"paxscan/internal/domain"
	"paxscan/internal/port"
)

// Client calls an OpenAI-compatible chat-completions endpoint with the image
// attached as a base64 data URI.
type Client struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewClient creates a vision client from config.
func NewClient(cfg *config.VisionConfig) *Client {
	model := cfg.Model
	if model == "" {
		model = "gpt-4o"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		apiKey:   cfg.APIKey,
		model:    model,
		endpoint: cfg.Endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (c *Client) Infer(ctx context.Context, image domain.ImageInput, instructions string) (*port.VisionReply, error) {
	if !domain.AllowedContentTypes[image.ContentType] {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedContentType, image.ContentType)
	}
	dataURI := fmt.Sprintf("data:%s;base64,%s", image.ContentType, base64.StdEncoding.EncodeToString(image.Bytes))

	reqBody := map[string]interface{}{
		"model":                 c.model,
		"max_completion_tokens": 4096,
		"messages": []map[string]interface{}{
			{
				"role": "user",
				"content": []map[string]interface{}{
					{"type": "image_url", "image_url": map[string]interface{}{"url": dataURI}},
					{"type": "text", "text": instructions},
				},
			},
		},
		"response_format": map[string]interface{}{"type": "json_object"},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling vision API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vision API error (status %d): %s", resp.StatusCode, truncate(string(respBody), 500))
	}

	return parseAPIResponse(respBody, c.model)
}

// apiResponse models the chat-completions API envelope.
type apiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

func parseAPIResponse(body []byte, model string) (*port.VisionReply, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from API: no choices")
	}
	if resp.Choices[0].FinishReason == "length" {
		return nil, fmt.Errorf("output truncated (finish_reason: length)")
	}
	return &port.VisionReply{
		Body:   []byte(resp.Choices[0].Message.Content),
		Model:  model,
		Tokens: resp.Usage.TotalTokens,
	}, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
