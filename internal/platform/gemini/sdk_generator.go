package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/emailwriter/internal/config"
	"github.com/phrazzld/emailwriter/internal/generation"
	"github.com/phrazzld/emailwriter/internal/redact"
	"google.golang.org/genai"
)

// SDKGenerator implements the generation.Generator interface using the
// genai client library.
type SDKGenerator struct {
	logger *slog.Logger
	config config.LLMConfig
	client *genai.Client
}

// NewSDKGenerator creates an SDKGenerator. The genai client is pointed at the
// configured base URL and API version and shares the generator's HTTP client.
func NewSDKGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig, opts ...Option) (*SDKGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if err := validateConfig(ctx, logger, cfg); err != nil {
		return nil, err
	}

	o := buildOptions(opts)

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.GeminiAPIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: o.httpClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    cfg.BaseURL,
			APIVersion: cfg.APIVersion,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return &SDKGenerator{
		logger: logger.With("component", "gemini_sdk"),
		config: cfg,
		client: client,
	}, nil
}

// Generate implements generation.Generator.
func (g *SDKGenerator) Generate(ctx context.Context, req generation.Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	prompt := generation.BuildPrompt(req)

	ctx, cancel := context.WithTimeout(ctx, g.config.Timeout)
	defer cancel()

	g.logger.DebugContext(ctx, "Making Gemini API call",
		"model", g.config.ModelName,
		"prompt_length", len(prompt))

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.config.ModelName, genai.Text(prompt), nil)
	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini API call failed",
			"error", redact.Error(err),
			"duration_ms", time.Since(start).Milliseconds())
		return "", classifySDKError(err)
	}

	text, err := extractSDKText(resp)
	if err != nil {
		g.logger.ErrorContext(ctx, "Failed to extract text from Gemini response", "error", redact.Error(err))
		return "", err
	}

	g.logger.InfoContext(ctx, "Gemini API call successful",
		"duration_ms", time.Since(start).Milliseconds(),
		"text_length", len(text))

	return text, nil
}

var _ generation.Generator = (*SDKGenerator)(nil)

// classifySDKError maps a genai client error onto the generation taxonomy.
// Upstream messages and bodies stay out of the returned error's message.
func classifySDKError(err error) error {
	if isTimeout(err) {
		return generation.NewUpstreamError(generation.ErrUpstreamTimeout, 0, "", err)
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return generation.NewUpstreamError(generation.ErrUpstreamStatus, apiErr.Code, apiErr.Message, nil)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return generation.NewUpstreamError(generation.ErrUpstreamStatus, apiErrPtr.Code, apiErrPtr.Message, nil)
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return generation.NewParseError(syntaxErr)
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return generation.NewParseError(typeErr)
	}

	return generation.NewUpstreamError(generation.ErrUpstreamTransport, 0, "", err)
}
