// Package testutils provides testing utilities shared by the HTTP and
// command packages.
//
// This package contains helpers for:
// 1. Starting fake language model upstreams (Ollama, OpenAI-compatible)
// 2. Executing JSON requests against test servers
// 3. Asserting error responses
//
//	upstream := testutils.NewFakeOllama(t, http.StatusOK, `[{"question":"Q","answer":"A"}]`)
//	cfg.LLM.OllamaURL = upstream.URL()
//	...
//	assert.Equal(t, 1, upstream.Calls())
package testutils
