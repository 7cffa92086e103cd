package testutils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// RecordedRequest is one request received by a FakeUpstream.
type RecordedRequest struct {
	Method      string
	Path        string
	APIKey      string
	ContentType string
	Body        []byte
}

// FakeUpstream is an httptest server standing in for the Gemini
// generateContent endpoint. It replies with a fixed status and body and
// records every request.
type FakeUpstream struct {
	server *httptest.Server
	status int
	body   string

	mu       sync.Mutex
	requests []RecordedRequest
}

// NewFakeUpstream starts a FakeUpstream closed at test cleanup.
func NewFakeUpstream(t *testing.T, status int, body string) *FakeUpstream {
	t.Helper()

	f := &FakeUpstream{status: status, body: body}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.server.Close)
	return f
}

func (f *FakeUpstream) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.requests = append(f.requests, RecordedRequest{
		Method:      r.Method,
		Path:        r.URL.Path,
		APIKey:      r.Header.Get("x-goog-api-key"),
		ContentType: r.Header.Get("Content-Type"),
		Body:        body,
	})
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(f.status)
	_, _ = w.Write([]byte(f.body))
}

// URL returns the base URL of the fake upstream.
func (f *FakeUpstream) URL() string {
	return f.server.URL
}

// Requests returns a copy of the requests received so far.
func (f *FakeUpstream) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]RecordedRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

// PromptText decodes the prompt from a recorded generateContent request body.
func (r RecordedRequest) PromptText() (string, error) {
	var decoded struct {
		Contents []struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"contents"`
	}
	if err := json.Unmarshal(r.Body, &decoded); err != nil {
		return "", err
	}
	if len(decoded.Contents) == 0 || len(decoded.Contents[0].Parts) == 0 {
		return "", nil
	}
	return decoded.Contents[0].Parts[0].Text, nil
}

// GeminiResponseBody returns a generateContent response with a single
// candidate whose first part is text.
func GeminiResponseBody(text string) string {
	encoded, _ := json.Marshal(text)
	return `{"candidates":[{"content":{"parts":[{"text":` + string(encoded) + `}],"role":"model"},"finishReason":"STOP"}]}`
}
