package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/scry-flashgen/internal/config"
	"github.com/phrazzld/scry-flashgen/internal/generation"
	"github.com/phrazzld/scry-flashgen/internal/platform/gemini"
	"github.com/phrazzld/scry-flashgen/internal/platform/ollama"
	"github.com/phrazzld/scry-flashgen/internal/platform/openai"
	"github.com/phrazzld/scry-flashgen/internal/service"
)

// application holds the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	provider         generation.Provider
	flashcardService service.FlashcardService
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config: cfg,
		logger: logger,
	}

	var err error
	app.provider, err = newProvider(ctx, cfg.LLM, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s provider: %w", cfg.LLM.Provider, err)
	}
	logger.Info("LLM provider initialized",
		"provider", app.provider.Name(),
		"model", cfg.LLM.ModelName)

	prompts, err := generation.NewPromptBuilder(cfg.LLM.PromptTemplatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load prompt template: %w", err)
	}
	if cfg.LLM.PromptTemplatePath != "" {
		logger.Info("Custom prompt template loaded", "path", cfg.LLM.PromptTemplatePath)
	}

	app.flashcardService, err = service.NewFlashcardService(
		app.provider,
		prompts,
		service.GenerationLimits{
			MaxNumCards:    cfg.Generation.MaxNumCards,
			RequestTimeout: time.Duration(cfg.LLM.RequestTimeoutSeconds) * time.Second,
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize flashcard service: %w", err)
	}

	return app, nil
}

// newProvider selects the generation.Provider named by cfg.Provider.
func newProvider(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (generation.Provider, error) {
	switch cfg.Provider {
	case config.ProviderOllama:
		return ollama.NewClient(logger, cfg)
	case config.ProviderOpenAI:
		return openai.NewClient(logger, cfg)
	case config.ProviderGemini:
		return gemini.NewGenerator(ctx, logger, cfg)
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", generation.ErrInvalidConfig, cfg.Provider)
	}
}
