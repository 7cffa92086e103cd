package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/emailwriter/internal/api/shared"
	"github.com/phrazzld/emailwriter/internal/platform/logger"
)

// NewTraceMiddleware returns middleware that adds a trace ID to the request
// context and response headers, and stores a logger carrying that ID in the
// context. An incoming X-Trace-ID header is reused when well-formed.
// It should be applied early in the chain so every later handler sees the ID.
func NewTraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.WithTraceID(r.Context(), r.Header.Get(shared.TraceIDHeader))
			traceID := shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			w.Header().Set(shared.TraceIDHeader, traceID)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
