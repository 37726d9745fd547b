// Package openai implements generation.Provider against an OpenAI-compatible
// chat completions endpoint with JSON-object response mode.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/scry-flashgen/internal/config"
	"github.com/phrazzld/scry-flashgen/internal/generation"
)

// Name identifies this provider in logs and errors.
const Name = "openai"

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []message      `json:"messages"`
	ResponseFormat responseFormat `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

// Client calls a chat completions API.
type Client struct {
	logger     *slog.Logger
	endpoint   string
	apiKey     string
	model      string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a Client for cfg.OpenAIBaseURL authenticated with cfg.OpenAIAPIKey.
func NewClient(logger *slog.Logger, cfg config.LLMConfig, opts ...Option) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.OpenAIBaseURL == "" {
		return nil, fmt.Errorf("%w: openai base URL cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("%w: openai API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	c := &Client{
		logger:     logger,
		endpoint:   strings.TrimRight(cfg.OpenAIBaseURL, "/") + "/chat/completions",
		apiKey:     cfg.OpenAIAPIKey,
		model:      cfg.ModelName,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Name implements generation.Provider.
func (c *Client) Name() string {
	return Name
}

// Generate implements generation.Provider and returns choices[0].message.content.
func (c *Client) Generate(ctx context.Context, prompt generation.Prompt) (string, error) {
	messages := make([]message, 0, 2)
	if prompt.System != "" {
		messages = append(messages, message{Role: "system", Content: prompt.System})
	}
	messages = append(messages, message{Role: "user", Content: prompt.User})

	payload, err := json.Marshal(chatRequest{
		Model:          c.model,
		Messages:       messages,
		ResponseFormat: responseFormat{Type: "json_object"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &generation.UpstreamError{Provider: Name, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &generation.UpstreamError{Provider: Name, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	c.logger.DebugContext(ctx, "openai response received",
		"status_code", resp.StatusCode,
		"model", c.model,
		"body_length", len(body))

	if resp.StatusCode != http.StatusOK {
		return "", &generation.UpstreamError{
			Provider:   Name,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var result chatResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("%w: failed to decode %s response: %v", generation.ErrInvalidResponse, Name, err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("%w: %s response contained no choices", generation.ErrInvalidResponse, Name)
	}

	return result.Choices[0].Message.Content, nil
}
