package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/scry-flashgen/internal/generation"
)

// MockProvider implements generation.Provider for testing
type MockProvider struct {
	// GenerateFn allows test cases to mock the Generate behavior
	GenerateFn func(ctx context.Context, prompt generation.Prompt) (string, error)

	// ProviderName is returned by Name; defaults to "mock"
	ProviderName string

	// Default response values
	Response string
	Err      error

	// mu protects the call tracking state
	mu      sync.Mutex
	prompts []generation.Prompt
}

// Name implements the generation.Provider interface
func (m *MockProvider) Name() string {
	if m.ProviderName == "" {
		return "mock"
	}
	return m.ProviderName
}

// Generate implements the generation.Provider interface
func (m *MockProvider) Generate(ctx context.Context, prompt generation.Prompt) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.GenerateFn != nil {
		return m.GenerateFn(ctx, prompt)
	}

	return m.Response, m.Err
}

// CallCount returns how many times Generate was called
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

// Prompts returns a copy of every prompt passed to Generate
func (m *MockProvider) Prompts() []generation.Prompt {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]generation.Prompt(nil), m.prompts...)
}

// NewMockProviderWithResponse creates a MockProvider that returns raw model text
func NewMockProviderWithResponse(response string) *MockProvider {
	return &MockProvider{Response: response}
}

// NewMockProviderWithError creates a MockProvider that returns err
func NewMockProviderWithError(err error) *MockProvider {
	return &MockProvider{Err: err}
}

// MockProviderWithContentBlocked creates a MockProvider that simulates a safety block
func MockProviderWithContentBlocked() *MockProvider {
	return &MockProvider{Err: generation.ErrContentBlocked}
}
