package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/phrazzld/scry-flashgen/internal/domain"
	"github.com/phrazzld/scry-flashgen/internal/generation"
	"github.com/phrazzld/scry-flashgen/internal/platform/logger"
	"github.com/phrazzld/scry-flashgen/internal/redact"
)

// FlashcardService generates flashcards for a subject.
type FlashcardService interface {
	// GenerateFlashcards validates req, calls the language model once and
	// returns at most req.NumCards flashcards in model order.
	GenerateFlashcards(ctx context.Context, req domain.GenerationRequest) ([]domain.Flashcard, error)
}

// GenerationLimits bounds individual generation requests.
type GenerationLimits struct {
	// MaxNumCards caps req.NumCards; zero disables the cap
	MaxNumCards int
	// RequestTimeout bounds the upstream call; zero means no bound
	RequestTimeout time.Duration
}

// flashcardServiceImpl implements the FlashcardService interface
type flashcardServiceImpl struct {
	provider generation.Provider
	prompts  *generation.PromptBuilder
	limits   GenerationLimits
	logger   *slog.Logger
}

// NewFlashcardService creates a new FlashcardService.
// It returns an error if any of the required dependencies are nil.
func NewFlashcardService(
	provider generation.Provider,
	prompts *generation.PromptBuilder,
	limits GenerationLimits,
	logger *slog.Logger,
) (FlashcardService, error) {
	if provider == nil {
		return nil, &FlashcardServiceError{
			Operation: "create_service",
			Message:   "provider cannot be nil",
		}
	}
	if prompts == nil {
		return nil, &FlashcardServiceError{
			Operation: "create_service",
			Message:   "prompt builder cannot be nil",
		}
	}
	if limits.MaxNumCards < 0 || limits.RequestTimeout < 0 {
		return nil, &FlashcardServiceError{
			Operation: "create_service",
			Message:   "limits cannot be negative",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &flashcardServiceImpl{
		provider: provider,
		prompts:  prompts,
		limits:   limits,
		logger:   logger.With(slog.String("component", "flashcard_service")),
	}, nil
}

// GenerateFlashcards implements FlashcardService.
func (s *flashcardServiceImpl) GenerateFlashcards(
	ctx context.Context,
	req domain.GenerationRequest,
) ([]domain.Flashcard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := req.Validate(s.limits.MaxNumCards); err != nil {
		log.DebugContext(ctx, "rejected generation request", "error", err)
		return nil, err
	}

	prompt, err := s.prompts.Build(req)
	if err != nil {
		return nil, NewFlashcardServiceError("build_prompt", "failed to build prompt", err)
	}

	if s.limits.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.limits.RequestTimeout)
		defer cancel()
	}

	log.InfoContext(ctx, "generating flashcards",
		"provider", s.provider.Name(),
		"subject_length", len(req.Subject),
		"num_cards", req.NumCards)

	raw, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		log.ErrorContext(ctx, "language model call failed",
			"provider", s.provider.Name(),
			"error", redact.Error(err))
		return nil, NewFlashcardServiceError("call_provider", "language model request failed", err)
	}

	log.DebugContext(ctx, "raw model output received", "length", len(raw))

	cards, err := generation.ParseFlashcards(raw, req.NumCards)
	if err != nil {
		log.ErrorContext(ctx, "failed to parse model output",
			"provider", s.provider.Name(),
			"error", redact.Error(err))
		return nil, NewFlashcardServiceError("parse_response", "failed to parse model output", err)
	}

	if len(cards) < req.NumCards {
		log.InfoContext(ctx, "model returned fewer flashcards than requested",
			"requested", req.NumCards,
			"received", len(cards))
	}

	return cards, nil
}
