package gemini

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/phrazzld/emailwriter/internal/config"
	"github.com/phrazzld/emailwriter/internal/generation"
	"github.com/phrazzld/emailwriter/internal/redact"
)

const (
	// apiKeyHeader carries the API key on every upstream request
	apiKeyHeader = "x-goog-api-key"

	// maxResponseBytes caps how much of an upstream body is read
	maxResponseBytes = 4 << 20

	// maxLoggedBodyLength caps upstream bodies written to logs
	maxLoggedBodyLength = 1024
)

// Option customizes a generator at construction time.
type Option func(*options)

type options struct {
	httpClient *http.Client
}

// WithHTTPClient replaces the shared HTTP client used for upstream calls.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

func buildOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.httpClient == nil {
		o.httpClient = newHTTPClient()
	}
	return o
}

// newHTTPClient returns a pooled client. Deadlines come from the request
// context, so the client itself carries no timeout.
func newHTTPClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = 16
	return &http.Client{Transport: transport}
}

// RESTGenerator implements the generation.Generator interface by posting a
// hand-built generateContent request to the Gemini REST API.
type RESTGenerator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// config contains LLM-specific configuration
	config config.LLMConfig

	// client is shared by all requests for connection reuse
	client *http.Client

	// endpoint is the fully-qualified generateContent URL
	endpoint string
}

// NewRESTGenerator creates a RESTGenerator for the configured model.
func NewRESTGenerator(logger *slog.Logger, cfg config.LLMConfig, opts ...Option) (*RESTGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if err := validateConfig(context.Background(), logger, cfg); err != nil {
		return nil, err
	}

	o := buildOptions(opts)

	return &RESTGenerator{
		logger:   logger.With("component", "gemini_rest"),
		config:   cfg,
		client:   o.httpClient,
		endpoint: Endpoint(cfg),
	}, nil
}

// Endpoint returns the generateContent URL for cfg.
func Endpoint(cfg config.LLMConfig) string {
	return fmt.Sprintf("%s/%s/models/%s:generateContent",
		strings.TrimRight(cfg.BaseURL, "/"), cfg.APIVersion, cfg.ModelName)
}

// RequestBody wraps an escaped prompt in the generateContent request shape.
func RequestBody(prompt string) string {
	return `{"contents":[{"parts":[{"text":"` + generation.EscapeJSONString(prompt) + `"}]}]}`
}

// Generate implements generation.Generator. It makes exactly one upstream
// call bounded by the configured timeout.
func (g *RESTGenerator) Generate(ctx context.Context, req generation.Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	prompt := generation.BuildPrompt(req)

	ctx, cancel := context.WithTimeout(ctx, g.config.Timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, strings.NewReader(RequestBody(prompt)))
	if err != nil {
		return "", generation.NewUpstreamError(generation.ErrUpstreamTransport, 0, "", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(apiKeyHeader, g.config.GeminiAPIKey)

	g.logger.DebugContext(ctx, "Making Gemini API call",
		"model", g.config.ModelName,
		"prompt_length", len(prompt))

	start := time.Now()
	resp, err := g.client.Do(httpReq)
	if err != nil {
		return "", g.transportError(ctx, err, start)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", g.transportError(ctx, err, start)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		g.logger.ErrorContext(ctx, "Gemini API returned error status",
			"status_code", resp.StatusCode,
			"body", redact.Truncate(redact.String(string(body)), maxLoggedBodyLength),
			"duration_ms", time.Since(start).Milliseconds())
		return "", generation.NewUpstreamError(generation.ErrUpstreamStatus, resp.StatusCode, string(body), nil)
	}

	text, err := extractText(body)
	if err != nil {
		g.logger.ErrorContext(ctx, "Failed to extract text from Gemini response",
			"error", redact.Error(err),
			"body", redact.Truncate(redact.String(string(body)), maxLoggedBodyLength))
		return "", err
	}

	g.logger.InfoContext(ctx, "Gemini API call successful",
		"duration_ms", time.Since(start).Milliseconds(),
		"text_length", len(text))

	return text, nil
}

func (g *RESTGenerator) transportError(ctx context.Context, err error, start time.Time) error {
	reason := generation.ErrUpstreamTransport
	if isTimeout(err) {
		reason = generation.ErrUpstreamTimeout
	}

	g.logger.ErrorContext(ctx, "Gemini API call failed",
		"error", redact.Error(err),
		"timeout", reason == generation.ErrUpstreamTimeout,
		"duration_ms", time.Since(start).Milliseconds())

	return generation.NewUpstreamError(reason, 0, "", err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

var _ generation.Generator = (*RESTGenerator)(nil)
