package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/phrazzld/emailwriter/internal/config"
	"github.com/phrazzld/emailwriter/internal/generation"
)

// validateConfig checks the settings every backend needs before any request
// is made, so a misconfigured service fails at startup.
func validateConfig(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) error {
	if cfg.GeminiAPIKey == "" {
		logger.ErrorContext(ctx, "Missing Gemini API key")
		return fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.BaseURL == "" {
		logger.ErrorContext(ctx, "Missing Gemini base URL")
		return fmt.Errorf("%w: base URL cannot be empty", generation.ErrInvalidConfig)
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		logger.ErrorContext(ctx, "Invalid Gemini base URL")
		return fmt.Errorf("%w: base URL must be an absolute URL", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.APIVersion == "" {
		return fmt.Errorf("%w: API version cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive, got %s", generation.ErrInvalidConfig, cfg.Timeout)
	}

	return nil
}
