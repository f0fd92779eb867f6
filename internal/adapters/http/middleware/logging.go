package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/action-items/internal/platform/logging"
)

// Logging returns middleware that writes one completion entry per request at
// info (warn for 5xx). The child logger it stores via logging.WithLogger
// carries the request and correlation IDs, so service-layer logs for the
// request carry them too. At debug level a start entry with the redacted
// headers is written as well. Bodies are never logged.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			if child.Enabled(ctx, slog.LevelDebug) {
				child.LogAttrs(ctx, slog.LevelDebug, "request started",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Int64("content_length", r.ContentLength),
					slog.Attr{Key: "headers", Value: slog.GroupValue(RedactHeaders(r.Header)...)},
				)
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			level := slog.LevelInfo
			if rw.statusCode >= http.StatusInternalServerError {
				level = slog.LevelWarn
			}
			child.LogAttrs(ctx, level, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(r)),
				slog.Int("status", rw.statusCode),
				slog.Int64("bytes", rw.written),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}
