package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/emailwriter/internal/config"
	"github.com/phrazzld/emailwriter/internal/generation"
	"github.com/phrazzld/emailwriter/internal/metrics"
	"github.com/phrazzld/emailwriter/internal/platform/gemini"
)

// application holds the shared application dependencies.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger    *slog.Logger
	generator generation.Generator
}

// newApplication creates the upstream generator selected by configuration
// and wraps it with metrics instrumentation.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	opts ...gemini.Option,
) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	generator, err := gemini.NewGenerator(ctx, logger.With("component", "llm_generator"), cfg.LLM, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}

	backend := cfg.LLM.Backend
	if backend == "" {
		backend = gemini.BackendREST
	}

	app := &application{
		config:    cfg,
		logger:    logger,
		generator: metrics.InstrumentGenerator(generator, backend),
	}

	logger.Info("Application initialized successfully", "llm_backend", backend)
	return app, nil
}

// Run starts the HTTP server and blocks until ctx is canceled or a shutdown
// signal arrives.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup releases application resources after the server has stopped.
// The generator holds only a pooled HTTP client, so there is nothing to close.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed")
}
