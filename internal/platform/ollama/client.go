// Package ollama implements generation.Provider against a locally hosted
// Ollama model runner using its non-streaming /api/generate endpoint.
package ollama

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
const Name = "ollama"

// generateRequest is the body of POST /api/generate.
type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	System string `json:"system,omitempty"`
	Stream bool   `json:"stream"`
}

// generateResponse is the subset of the /api/generate reply we read.
type generateResponse struct {
	Response string `json:"response"`
}

// Client talks to an Ollama server.
type Client struct {
	logger     *slog.Logger
	endpoint   string
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

// NewClient creates a Client for the server at cfg.OllamaURL using cfg.ModelName.
// The default HTTP client sets no timeout; callers bound requests through ctx.
func NewClient(logger *slog.Logger, cfg config.LLMConfig, opts ...Option) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.OllamaURL == "" {
		return nil, fmt.Errorf("%w: ollama URL cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	c := &Client{
		logger:     logger,
		endpoint:   strings.TrimRight(cfg.OllamaURL, "/") + "/api/generate",
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

// Generate implements generation.Provider. It returns the model's "response"
// text exactly as produced; fence stripping happens in generation.ParseFlashcards.
func (c *Client) Generate(ctx context.Context, prompt generation.Prompt) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt.User,
		System: prompt.System,
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &generation.UpstreamError{Provider: Name, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &generation.UpstreamError{Provider: Name, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	c.logger.DebugContext(ctx, "ollama response received",
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

	var result generateResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("%w: failed to decode %s response: %v", generation.ErrInvalidResponse, Name, err)
	}

	return result.Response, nil
}
