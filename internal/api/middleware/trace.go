// Package middleware contains HTTP middleware shared by the API routes.
package middleware

import (
	"log/slog"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/scry-flashgen/internal/api/shared"
	"github.com/phrazzld/scry-flashgen/internal/platform/logger"
)

// TraceIDHeader carries the trace ID back to the client.
const TraceIDHeader = "X-Trace-ID"

// TraceMiddleware adds a trace ID and a request-scoped logger to the request
// context. Apply it after chi's RequestID middleware so the request ID is
// attached to the logger as well.
func TraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			attrs := []any{slog.String("trace_id", traceID)}
			if requestID := chimiddleware.GetReqID(ctx); requestID != "" {
				ctx = logger.WithRequestID(ctx, requestID)
				attrs = append(attrs, slog.String("request_id", requestID))
			}

			log := base.With(attrs...)
			ctx = logger.WithLogger(ctx, log)

			log.DebugContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			w.Header().Set(TraceIDHeader, traceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
