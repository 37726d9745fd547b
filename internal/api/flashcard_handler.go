package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/scry-flashgen/internal/api/shared"
	"github.com/phrazzld/scry-flashgen/internal/domain"
	"github.com/phrazzld/scry-flashgen/internal/service"
)

// GenerateFlashcardsRequest is the body of POST /api/generate-flashcards.
type GenerateFlashcardsRequest struct {
	Subject string `json:"subject" validate:"required"`
	// NumCards is optional; nil selects the configured default
	NumCards *int `json:"numCards" validate:"omitempty,gte=1"`
}

// GenerateFlashcardsResponse is the success body for every provider.
type GenerateFlashcardsResponse struct {
	Flashcards []domain.Flashcard `json:"flashcards"`
}

// FlashcardHandler handles flashcard generation requests
type FlashcardHandler struct {
	flashcardService service.FlashcardService
	defaultNumCards  int
	maxNumCards      int
}

// NewFlashcardHandler creates a new FlashcardHandler. maxNumCards only
// shapes the message for out-of-range counts; zero means no upper bound.
func NewFlashcardHandler(
	flashcardService service.FlashcardService,
	defaultNumCards int,
	maxNumCards int,
) *FlashcardHandler {
	if defaultNumCards < 1 {
		defaultNumCards = domain.DefaultNumCards
	}
	return &FlashcardHandler{
		flashcardService: flashcardService,
		defaultNumCards:  defaultNumCards,
		maxNumCards:      maxNumCards,
	}
}

// GenerateFlashcards handles POST /api/generate-flashcards requests
func (h *FlashcardHandler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	var req GenerateFlashcardsRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err)
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, h.requestValidationError(err))
		return
	}

	genReq := domain.NewGenerationRequest(req.Subject, req.NumCards, h.defaultNumCards)

	cards, err := h.flashcardService.GenerateFlashcards(r.Context(), genReq)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if cards == nil {
		cards = []domain.Flashcard{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateFlashcardsResponse{Flashcards: cards})
}

// requestValidationError converts struct tag failures into domain
// validation errors so they share messages with the service checks.
func (h *FlashcardHandler) requestValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		switch fieldErrs[0].StructField() {
		case "Subject":
			return domain.NewValidationError("subject", "is required", domain.ErrSubjectRequired)
		case "NumCards":
			return domain.NewNumCardsError(h.maxNumCards)
		}
	}
	return fmt.Errorf("%w: %v", domain.ErrValidation, err)
}
