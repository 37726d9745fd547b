package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation package
var (
	// ErrUpstream is matched by every *UpstreamError
	ErrUpstream = errors.New("language model request failed")

	// ErrInvalidResponse is returned when the LLM response cannot be parsed or is malformed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// UpstreamError reports a failed call to a language model provider.
// StatusCode is zero when no HTTP response was received.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       string
	Err        error
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("%s error (status %d): %s", e.Provider, e.StatusCode, e.Body)
	case e.Err != nil:
		return fmt.Sprintf("%s error: %v", e.Provider, e.Err)
	default:
		return fmt.Sprintf("%s error", e.Provider)
	}
}

// Unwrap returns the underlying transport error, if any.
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrUpstream.
func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}
