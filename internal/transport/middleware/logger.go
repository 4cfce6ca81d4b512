package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/prize2pride-backend/pkg/ctxutil"
)

// probePaths are polled by orchestrators; successful hits log at Debug.
var probePaths = map[string]bool{"/live": true, "/ready": true, "/health": true}

// requestLog is filled in by inner middleware so the access line can name
// the authenticated caller.
type requestLog struct {
	userID string
	role   string
}

type requestLogKey struct{}

func noteCaller(ctx context.Context, userID, role string) {
	if rl, ok := ctx.Value(requestLogKey{}).(*requestLog); ok {
		rl.userID, rl.role = userID, role
	}
}

// Logger writes one "http.request" line per request. 5xx responses log at
// Error, 4xx at Warn, successful probes at Debug and everything else at Info.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			rl := &requestLog{}

			next.ServeHTTP(rw, r.WithContext(context.WithValue(r.Context(), requestLogKey{}, rl)))

			attrs := make([]slog.Attr, 0, 9)
			attrs = append(attrs,
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rw.status),
				slog.Int64("bytes", rw.written),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			)
			if r.URL.RawQuery != "" {
				attrs = append(attrs, slog.String("query", r.URL.RawQuery))
			}
			if rl.userID != "" {
				attrs = append(attrs, slog.String("user_id", rl.userID), slog.String("role", rl.role))
			}

			logger.LogAttrs(r.Context(), levelFor(r.URL.Path, rw.status), "http.request", attrs...)
		})
	}
}

func levelFor(path string, status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	case probePaths[path]:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// responseRecorder captures the status code and body size.
type responseRecorder struct {
	http.ResponseWriter
	status      int
	written     int64
	wroteHeader bool
}

func (w *responseRecorder) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseRecorder) Write(b []byte) (int, error) {
	w.wroteHeader = true
	n, err := w.ResponseWriter.Write(b)
	w.written += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *responseRecorder) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
