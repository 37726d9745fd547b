package generation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/phrazzld/scry-flashgen/internal/domain"
)

// fencePattern matches an opening ``` (optionally tagged json) or a closing ```.
var fencePattern = regexp.MustCompile("^```(?i:json)?\\s*|\\s*```$")

// StripCodeFence removes a Markdown code fence wrapped around model output.
// Text that does not start with a fence is only trimmed of whitespace.
func StripCodeFence(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	return strings.TrimSpace(fencePattern.ReplaceAllString(text, ""))
}

// flashcardEnvelope is the object form of a model response.
type flashcardEnvelope struct {
	Flashcards []domain.Flashcard `json:"flashcards"`
}

// ParseFlashcards converts raw model output into at most limit flashcards,
// preserving the order the model produced them in. It accepts a JSON array
// of cards or an object with a "flashcards" array, either optionally wrapped
// in a Markdown code fence. Every returned card must have a question and an
// answer; cards past limit are dropped without being checked.
func ParseFlashcards(raw string, limit int) ([]domain.Flashcard, error) {
	text := StripCodeFence(raw)
	if text == "" {
		return nil, fmt.Errorf("%w: empty response", ErrInvalidResponse)
	}

	var cards []domain.Flashcard
	switch text[0] {
	case '[':
		if err := json.Unmarshal([]byte(text), &cards); err != nil {
			return nil, fmt.Errorf("%w: failed to parse JSON response: %v", ErrInvalidResponse, err)
		}
	case '{':
		var envelope flashcardEnvelope
		if err := json.Unmarshal([]byte(text), &envelope); err != nil {
			return nil, fmt.Errorf("%w: failed to parse JSON response: %v", ErrInvalidResponse, err)
		}
		if envelope.Flashcards == nil {
			return nil, fmt.Errorf("%w: no flashcards array in response", ErrInvalidResponse)
		}
		cards = envelope.Flashcards
	default:
		return nil, fmt.Errorf("%w: response is not JSON", ErrInvalidResponse)
	}

	cards = Truncate(cards, limit)
	for i, card := range cards {
		if strings.TrimSpace(card.Question) == "" {
			return nil, fmt.Errorf("%w: card %d missing question", ErrInvalidResponse, i)
		}
		if strings.TrimSpace(card.Answer) == "" {
			return nil, fmt.Errorf("%w: card %d missing answer", ErrInvalidResponse, i)
		}
	}

	return cards, nil
}

// Truncate returns at most the first n cards. Fewer cards than requested
// are returned as-is.
func Truncate(cards []domain.Flashcard, n int) []domain.Flashcard {
	if n < 0 {
		n = 0
	}
	if len(cards) <= n {
		return cards
	}
	return cards[:n]
}
