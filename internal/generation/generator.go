package generation

import "context"

// Provider is the boundary between the application and an external
// language model. Implementations send the prompt exactly once and return
// the model's text unmodified; they never retry.
type Provider interface {
	// Name identifies the provider in logs and error messages.
	Name() string

	// Generate sends prompt to the model and returns its raw text output.
	// Transport failures and non-success responses are reported as
	// *UpstreamError.
	Generate(ctx context.Context, prompt Prompt) (string, error)
}
