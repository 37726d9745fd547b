package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/scry-flashgen/internal/config"
	"github.com/phrazzld/scry-flashgen/internal/generation"
	"google.golang.org/genai"
)

// Generator implements generation.Provider using the Gemini API.
type Generator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// api issues generateContent calls
	api contentGenerator

	// model is the name of the Gemini model to use
	model string
}

// NewGenerator creates a Generator with a genai client for the Gemini API backend.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if err := validateConfig(ctx, logger, cfg); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	return newGenerator(logger, client.Models, cfg.ModelName), nil
}

func newGenerator(logger *slog.Logger, api contentGenerator, model string) *Generator {
	return &Generator{
		logger: logger,
		api:    api,
		model:  model,
	}
}

// Name implements generation.Provider.
func (g *Generator) Name() string {
	return Name
}

// Generate implements generation.Provider. It makes a single generateContent
// call and returns the concatenated text parts of the first candidate.
func (g *Generator) Generate(ctx context.Context, prompt generation.Prompt) (string, error) {
	if strings.TrimSpace(prompt.User) == "" {
		return "", ErrEmptyPrompt
	}

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}
	if prompt.System != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: prompt.System}},
		}
	}

	resp, err := g.api.GenerateContent(ctx, g.model, genai.Text(prompt.User), cfg)
	if err != nil {
		return "", toUpstreamError(err)
	}

	text, err := responseText(resp)
	if err != nil {
		return "", err
	}

	g.logger.DebugContext(ctx, "gemini response received",
		"model", g.model,
		"body_length", len(text))

	return text, nil
}

// responseText extracts the text of the first candidate, classifying
// blocked and empty responses.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked (%s)",
			generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: content blocked by safety filters", generation.ErrContentBlocked)
	}

	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("%w: response contained no text", generation.ErrInvalidResponse)
	}

	return sb.String(), nil
}

// toUpstreamError maps a genai client error onto generation.UpstreamError,
// keeping the HTTP status code when the API reported one.
func toUpstreamError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &generation.UpstreamError{
			Provider:   Name,
			StatusCode: apiErr.Code,
			Body:       apiErr.Message,
			Err:        err,
		}
	}

	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return &generation.UpstreamError{
			Provider:   Name,
			StatusCode: apiErrPtr.Code,
			Body:       apiErrPtr.Message,
			Err:        err,
		}
	}

	return &generation.UpstreamError{Provider: Name, Err: err}
}
