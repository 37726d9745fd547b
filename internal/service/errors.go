package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/scry-flashgen/internal/domain"
)

// FlashcardServiceError wraps errors from the flashcard service with context.
type FlashcardServiceError struct {
	// Operation is the step that failed (e.g., "build_prompt", "call_provider")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for FlashcardServiceError.
func (e *FlashcardServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("flashcard service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("flashcard service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *FlashcardServiceError) Unwrap() error {
	return e.Err
}

// NewFlashcardServiceError creates a new FlashcardServiceError.
// Validation errors are returned unwrapped.
func NewFlashcardServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, domain.ErrValidation) {
		return err
	}

	return &FlashcardServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
