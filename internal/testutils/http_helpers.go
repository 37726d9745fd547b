package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/scry-flashgen/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateTestServer creates a httptest server with the given handler.
// Automatically registers cleanup via t.Cleanup() so callers don't need to manually close the server.
func CreateTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

// CleanupResponseBody registers a cleanup function to close the response body
// to prevent resource leaks.
func CleanupResponseBody(t *testing.T, resp *http.Response) {
	t.Helper()
	if resp != nil && resp.Body != nil {
		t.Cleanup(func() {
			if err := resp.Body.Close(); err != nil {
				t.Logf("Warning: failed to close response body: %v", err)
			}
		})
	}
}

// ExecuteRawRequest sends body verbatim as JSON to baseURL+path.
// Automatically registers cleanup for the response body.
func ExecuteRawRequest(t *testing.T, baseURL, method, path, body string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, baseURL+path, bytes.NewBufferString(body))
	require.NoError(t, err, "Failed to create request")
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err, "Request failed")
	CleanupResponseBody(t, resp)

	return resp
}

// ExecuteJSONRequest marshals body and sends it to baseURL+path.
func ExecuteJSONRequest(t *testing.T, baseURL, method, path string, body interface{}) *http.Response {
	t.Helper()

	bodyBytes, err := json.Marshal(body)
	require.NoError(t, err, "Failed to marshal request body")

	return ExecuteRawRequest(t, baseURL, method, path, string(bodyBytes))
}

// ExecuteInvalidJSONRequest sends a malformed JSON body to test error handling.
func ExecuteInvalidJSONRequest(t *testing.T, baseURL, method, path string) *http.Response {
	t.Helper()
	return ExecuteRawRequest(t, baseURL, method, path, `{"subject": "Go",`)
}

// DecodeJSONResponse reads resp's body into v.
func DecodeJSONResponse(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")
	require.NoError(t, json.Unmarshal(body, v), "Failed to unmarshal response: %s", string(body))
}

// AssertErrorResponse checks that a response contains an error with the
// expected status code and message fragment, and returns the decoded body.
func AssertErrorResponse(
	t *testing.T,
	resp *http.Response,
	expectedStatus int,
	expectedErrorMsgPart string,
) shared.ErrorResponse {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode,
		"Expected status code %d but got %d", expectedStatus, resp.StatusCode)

	var errResp shared.ErrorResponse
	DecodeJSONResponse(t, resp, &errResp)

	assert.Contains(t, errResp.Error, expectedErrorMsgPart,
		"Error message should contain '%s' but got '%s'", expectedErrorMsgPart, errResp.Error)

	return errResp
}
