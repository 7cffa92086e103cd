package gemini

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/phrazzld/emailwriter/internal/config"
)

const (
	testAPIKey = "test-api-key-123456"
	testModel  = "gemini-2.0-flash"
)

// createTestConfig returns an LLMConfig pointed at baseURL.
func createTestConfig(baseURL string) config.LLMConfig {
	return config.LLMConfig{
		GeminiAPIKey: testAPIKey,
		BaseURL:      baseURL,
		ModelName:    testModel,
		APIVersion:   "v1beta",
		Backend:      BackendREST,
		Timeout:      5 * time.Second,
	}
}

// startUpstream starts a fake generateContent server closed at test cleanup.
func startUpstream(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

// respondWith returns a handler writing a fixed status and body.
func respondWith(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}
