package testutils

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateTestServer creates a httptest server with the given handler.
// Automatically registers cleanup via t.Cleanup() so callers don't need to manually close the server.
func CreateTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(func() {
		server.Close()
	})
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

// ExecuteGenerateRequest posts body to /api/email/generate on server.
// Automatically registers cleanup for the response body.
func ExecuteGenerateRequest(t *testing.T, server *httptest.Server, body string) (*http.Response, error) {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, server.URL+"/api/email/generate", strings.NewReader(body))
	require.NoError(t, err, "Failed to create request")
	req.Header.Set("Content-Type", "application/json")

	resp, err := server.Client().Do(req)
	if err == nil {
		CleanupResponseBody(t, resp)
	}
	return resp, err
}

// ReadBody reads the whole response body as a string.
func ReadBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")
	return string(body)
}

// AssertTextResponse checks the status code, the plain-text content type and
// the exact body of resp.
func AssertTextResponse(t *testing.T, resp *http.Response, expectedStatus int, expectedBody string) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode,
		"Expected status code %d but got %d", expectedStatus, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/plain"),
		"Expected text/plain content type, got %q", resp.Header.Get("Content-Type"))
	assert.Equal(t, expectedBody, ReadBody(t, resp))
}

// AssertTextResponsePrefix is AssertTextResponse for bodies whose tail varies.
func AssertTextResponsePrefix(t *testing.T, resp *http.Response, expectedStatus int, expectedPrefix string) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode,
		"Expected status code %d but got %d", expectedStatus, resp.StatusCode)
	body := ReadBody(t, resp)
	assert.True(t, strings.HasPrefix(body, expectedPrefix),
		"Expected body to start with %q but got %q", expectedPrefix, body)
}
