// Package mocks provides centralized mock implementations for testing.
//
// Mocks use function fields for custom behavior with plain default return
// values as a fallback, and record calls so tests can assert how often an
// upstream model was contacted.
//
//	provider := &mocks.MockProvider{Response: `[{"question":"Q","answer":"A"}]`}
//	svc, _ := service.NewFlashcardService(provider, prompts, limits, logger)
//	...
//	assert.Equal(t, 1, provider.CallCount())
package mocks
