package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/action-items/internal/adapters/http/dto"
)

// panicDetail is what clients see for a recovered panic. The panic value and
// stack go to the log only.
const panicDetail = "an unexpected error occurred"

// Recovery returns middleware that turns a panic in a downstream handler into
// an RFC 9457 500 response. The panic value and stack trace are logged. If the
// response has already started, only the log entry is emitted.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				// http.ErrAbortHandler is the sanctioned way to abort a response.
				if v == http.ErrAbortHandler {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", RequestIDFromContext(r.Context())),
				)

				if !rw.headerWritten {
					dto.WriteProblem(rw, r, http.StatusInternalServerError, panicDetail)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
