package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/phrazzld/emailwriter/internal/config"
)

// NewCORSMiddleware allows browser calls from the configured origins.
// A "*" entry admits any origin.
func NewCORSMiddleware(cfg config.CORSConfig) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Trace-ID"},
		ExposedHeaders: []string{"X-Trace-ID"},
		MaxAge:         300,
	})
}
