package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/prize2pride-backend/pkg/ctxutil"
)

// Recovery turns a panic into a JSON 500 and logs it with the stack. It runs
// outside RequestID, so the request ID is read back from the response header.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.ErrorContext(r.Context(), "panic recovered",
						slog.Any("error", err),
						slog.String("stack", string(debug.Stack())),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.String("request_id", requestIDOf(w, r)),
					)
					writeError(w, http.StatusInternalServerError, "internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func requestIDOf(w http.ResponseWriter, r *http.Request) string {
	if id := ctxutil.RequestIDFromCtx(r.Context()); id != "" {
		return id
	}
	return w.Header().Get(RequestIDHeader)
}
