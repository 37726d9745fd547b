package mocks

import (
	"context"

	"github.com/phrazzld/scry-flashgen/internal/domain"
)

// MockFlashcardService implements service.FlashcardService for testing
type MockFlashcardService struct {
	// GenerateFlashcardsFn allows test cases to mock GenerateFlashcards
	GenerateFlashcardsFn func(ctx context.Context, req domain.GenerationRequest) ([]domain.Flashcard, error)

	// Default return values
	Cards        []domain.Flashcard
	DefaultError error

	// LastRequest holds the most recent request
	LastRequest *domain.GenerationRequest
}

// GenerateFlashcards implements the FlashcardService.GenerateFlashcards method
func (m *MockFlashcardService) GenerateFlashcards(
	ctx context.Context,
	req domain.GenerationRequest,
) ([]domain.Flashcard, error) {
	m.LastRequest = &req
	if m.GenerateFlashcardsFn != nil {
		return m.GenerateFlashcardsFn(ctx, req)
	}
	return m.Cards, m.DefaultError
}
