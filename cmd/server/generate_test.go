package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/phrazzld/scry-flashgen/internal/api"
	"github.com/phrazzld/scry-flashgen/internal/platform/logger"
	"github.com/phrazzld/scry-flashgen/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunGenerate(t *testing.T) {
	upstream := testutils.NewFakeOllama(t, http.StatusOK, photosynthesisCards)
	log, _ := logger.GetTestLogger(t)

	n := 2
	var out bytes.Buffer
	err := runGenerate(context.Background(), testConfig(upstream.URL()), log, "Photosynthesis", &n, &out)

	require.NoError(t, err)
	var resp api.GenerateFlashcardsResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Len(t, resp.Flashcards, 2)
	assert.Equal(t, 1, upstream.Calls())
}

func TestRunGenerateDefaultsAndErrors(t *testing.T) {
	upstream := testutils.NewFakeOllama(t, http.StatusOK, photosynthesisCards)
	log, _ := logger.GetTestLogger(t)

	var out bytes.Buffer
	require.NoError(t, runGenerate(context.Background(), testConfig(upstream.URL()), log, "Photosynthesis", nil, &out))
	var resp api.GenerateFlashcardsResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Len(t, resp.Flashcards, 5)

	out.Reset()
	err := runGenerate(context.Background(), testConfig(upstream.URL()), log, "  ", nil, &out)
	assert.EqualError(t, err, "Subject is required")
	assert.Empty(t, out.String())
	assert.Equal(t, 1, upstream.Calls())
}
