package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/emailwriter/internal/config"
	"github.com/phrazzld/emailwriter/internal/generation"
)

// Backend names accepted in LLMConfig.Backend.
const (
	BackendREST = "rest"
	BackendSDK  = "sdk"
)

// NewGenerator creates the generator selected by cfg.Backend. An empty
// backend selects REST.
func NewGenerator(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.LLMConfig,
	opts ...Option,
) (generation.Generator, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	logger.InfoContext(ctx, "Initializing Gemini generator",
		"backend", cfg.Backend,
		"model", cfg.ModelName,
		"api_version", cfg.APIVersion,
		"timeout", cfg.Timeout.String())

	var (
		generator generation.Generator
		err       error
	)

	// Assign through typed variables so a failed constructor yields a nil interface
	switch cfg.Backend {
	case BackendREST, "":
		var g *RESTGenerator
		g, err = NewRESTGenerator(logger, cfg, opts...)
		generator = g
	case BackendSDK:
		var g *SDKGenerator
		g, err = NewSDKGenerator(ctx, logger, cfg, opts...)
		generator = g
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", generation.ErrInvalidConfig, cfg.Backend)
	}

	if err != nil {
		return nil, err
	}
	return generator, nil
}
