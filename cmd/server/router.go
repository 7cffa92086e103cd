package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/emailwriter/internal/api"
	apiMiddleware "github.com/phrazzld/emailwriter/internal/api/middleware"
	"github.com/phrazzld/emailwriter/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.NewCORSMiddleware(app.config.CORS))
	r.Use(metrics.HTTPMiddleware)

	emailHandler := api.NewEmailHandler(app.generator, app.logger)

	r.Route("/api/email", func(r chi.Router) {
		r.Post("/generate", emailHandler.GenerateEmail)
		r.Get("/health", emailHandler.Health)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
