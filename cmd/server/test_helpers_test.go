package main

import (
	"testing"
	"time"

	"github.com/phrazzld/emailwriter/internal/config"
	"github.com/phrazzld/emailwriter/internal/generation"
	"github.com/phrazzld/emailwriter/internal/platform/logger"
)

// CreateMinimalTestConfig returns a valid configuration pointed at upstreamURL.
func CreateMinimalTestConfig(t *testing.T, upstreamURL string) *config.Config {
	t.Helper()
	return &config.Config{
		Server: config.ServerConfig{
			Port:            0,
			LogLevel:        "debug",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    5 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		LLM: config.LLMConfig{
			GeminiAPIKey: "test-api-key-123456",
			BaseURL:      upstreamURL,
			ModelName:    "gemini-2.0-flash",
			APIVersion:   "v1beta",
			Backend:      "rest",
			Timeout:      2 * time.Second,
		},
		CORS: config.CORSConfig{AllowedOrigins: []string{"*"}},
	}
}

// newTestApplication builds an application around generator without
// touching the network.
func newTestApplication(t *testing.T, generator generation.Generator) (*application, *logger.TestLogBuffer) {
	t.Helper()
	l, buf := logger.NewTestLogger(t)
	return &application{
		config:    CreateMinimalTestConfig(t, "http://localhost"),
		logger:    l,
		generator: generator,
	}, buf
}

