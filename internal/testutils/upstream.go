package testutils

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"testing"
)

// FakeUpstream is a fake language model server that records request bodies.
type FakeUpstream struct {
	url string

	mu     sync.Mutex
	bodies []map[string]interface{}
}

// URL returns the base URL of the fake server.
func (f *FakeUpstream) URL() string {
	return f.url
}

// Calls returns the number of requests received.
func (f *FakeUpstream) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bodies)
}

// LastRequest returns the most recent decoded request body, or nil.
func (f *FakeUpstream) LastRequest() map[string]interface{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.bodies) == 0 {
		return nil
	}
	return f.bodies[len(f.bodies)-1]
}

func (f *FakeUpstream) record(r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	var body map[string]interface{}
	_ = json.Unmarshal(raw, &body)

	f.mu.Lock()
	f.bodies = append(f.bodies, body)
	f.mu.Unlock()
}

func newFakeUpstream(
	t *testing.T,
	path string,
	status int,
	errorBody string,
	success func(w http.ResponseWriter),
) *FakeUpstream {
	t.Helper()
	f := &FakeUpstream{}
	server := CreateTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.record(r)
		if r.URL.Path != path {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(errorBody))
			return
		}
		success(w)
	}))
	f.url = server.URL
	return f
}

// NewFakeOllama starts a fake Ollama server. With status 200 the model
// output is wrapped in a /api/generate reply; otherwise output is sent as
// the raw error body.
func NewFakeOllama(t *testing.T, status int, output string) *FakeUpstream {
	t.Helper()
	return newFakeUpstream(t, "/api/generate", status, output, func(w http.ResponseWriter) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"model":    "fake",
			"response": output,
			"done":     true,
		})
	})
}

// NewFakeOpenAI starts a fake chat completions server. With status 200 the
// model output becomes choices[0].message.content; otherwise output is sent
// as the raw error body.
func NewFakeOpenAI(t *testing.T, status int, output string) *FakeUpstream {
	t.Helper()
	return newFakeUpstream(t, "/chat/completions", status, output, func(w http.ResponseWriter) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": output}},
			},
		})
	})
}
