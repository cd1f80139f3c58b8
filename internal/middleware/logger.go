package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// statusRecorder remembers the status and body size written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (sr *statusRecorder) WriteHeader(status int) {
	sr.status = status
	sr.ResponseWriter.WriteHeader(status)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	n, err := sr.ResponseWriter.Write(b)
	sr.size += n
	return n, err
}

// Logger returns a middleware that logs one line per request. Header events
// arrive on every click, so successful ones are logged at debug level.
func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sr, r)

			logger.Log(r.Context(), requestLevel(r, sr.status), "request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sr.status,
				"size", sr.size,
				"duration", time.Since(start),
				"ip", r.RemoteAddr,
				"request_id", chimiddleware.GetReqID(r.Context()),
			)
		})
	}
}

func requestLevel(r *http.Request, status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	case r.Method != http.MethodGet:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
