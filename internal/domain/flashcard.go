package domain

import (
	"fmt"
	"strings"
)

// DefaultNumCards is the number of flashcards generated when a request
// does not ask for a specific count.
const DefaultNumCards = 5

// Flashcard is a single question/answer pair produced by a language model.
// Flashcards only exist as members of an ordered sequence within one
// generation request; they carry no identity of their own.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// GenerationRequest asks for NumCards flashcards about Subject.
type GenerationRequest struct {
	Subject  string
	NumCards int
}

// NewGenerationRequest creates a GenerationRequest. When numCards is nil the
// count falls back to defaultNumCards, or to DefaultNumCards if that is not
// positive.
func NewGenerationRequest(subject string, numCards *int, defaultNumCards int) GenerationRequest {
	n := defaultNumCards
	if n < 1 {
		n = DefaultNumCards
	}
	if numCards != nil {
		n = *numCards
	}
	return GenerationRequest{
		Subject:  subject,
		NumCards: n,
	}
}

// Validate checks the request before any upstream model is contacted.
// The subject must contain non-whitespace text. NumCards must be positive
// and, when maxNumCards is greater than zero, no larger than maxNumCards.
func (r GenerationRequest) Validate(maxNumCards int) error {
	if strings.TrimSpace(r.Subject) == "" {
		return NewValidationError("subject", "is required", ErrSubjectRequired)
	}

	if r.NumCards < 1 || (maxNumCards > 0 && r.NumCards > maxNumCards) {
		return NewNumCardsError(maxNumCards)
	}

	return nil
}

// NewNumCardsError returns the validation error for a card count outside
// 1..maxNumCards. A maxNumCards of zero means there is no upper bound.
func NewNumCardsError(maxNumCards int) error {
	if maxNumCards > 0 {
		return NewValidationError(
			"numCards",
			fmt.Sprintf("must be between 1 and %d", maxNumCards),
			ErrInvalidNumCards,
		)
	}
	return NewValidationError("numCards", "must be a positive integer", ErrInvalidNumCards)
}
