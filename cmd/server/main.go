// Package main implements the entry point for the email writer API server,
// which turns a short brief into a drafted email using an upstream
// generative-text API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/phrazzld/emailwriter/internal/config"
	"github.com/phrazzld/emailwriter/internal/platform/logger"
)

// main loads configuration, sets up logging, wires the application and
// serves until SIGINT or SIGTERM. Missing required configuration prevents
// startup.
func main() {
	ctx := context.Background()

	cfg, l, err := initializeApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	app, err := newApplication(ctx, cfg, l)
	if err != nil {
		l.Error("Failed to create application", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		l.Error("Application exited with error", "error", err)
		os.Exit(1)
	}
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := loadAppConfig()
	if err != nil {
		return nil, nil, err
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"llm_backend", cfg.LLM.Backend,
		"llm_model", cfg.LLM.ModelName,
		"llm_timeout", cfg.LLM.Timeout.String(),
		"cors_origins", cfg.CORS.AllowedOrigins)
	l.Debug("LLM configuration", "api_key_present", cfg.LLM.GeminiAPIKey != "")

	return cfg, l, nil
}

// loadAppConfig loads the application configuration from environment
// variables or config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
