package mocks_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/phrazzld/scry-flashgen/internal/generation"
	"github.com/phrazzld/scry-flashgen/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProviderDefaults(t *testing.T) {
	m := mocks.NewMockProviderWithResponse("[]")
	assert.Equal(t, "mock", m.Name())

	text, err := m.Generate(context.Background(), generation.Prompt{User: "u"})
	require.NoError(t, err)
	assert.Equal(t, "[]", text)
	assert.Equal(t, 1, m.CallCount())
	assert.Equal(t, []generation.Prompt{{User: "u"}}, m.Prompts())
}

func TestMockProviderErrors(t *testing.T) {
	boom := errors.New("boom")
	_, err := mocks.NewMockProviderWithError(boom).Generate(context.Background(), generation.Prompt{})
	assert.ErrorIs(t, err, boom)

	_, err = mocks.MockProviderWithContentBlocked().Generate(context.Background(), generation.Prompt{})
	assert.ErrorIs(t, err, generation.ErrContentBlocked)
}

func TestMockProviderConcurrentCalls(t *testing.T) {
	m := &mocks.MockProvider{
		ProviderName: "custom",
		GenerateFn: func(ctx context.Context, prompt generation.Prompt) (string, error) {
			return prompt.User, nil
		},
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = m.Generate(context.Background(), generation.Prompt{User: "x"})
		}()
	}
	wg.Wait()

	assert.Equal(t, "custom", m.Name())
	assert.Equal(t, 10, m.CallCount())
}
