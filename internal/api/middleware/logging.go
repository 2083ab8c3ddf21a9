package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

type responseWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	w.status = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriter) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(p)
	w.bytes += n
	return n, err
}

// RequestLogging emits one line per request. It runs inside
// CorrelationID, so the request ID is attached when the header or
// middleware set one.
func RequestLogging(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w}

			next.ServeHTTP(rw, r)

			status := rw.status
			if status == 0 {
				// Handler never wrote; net/http sends a 200.
				status = http.StatusOK
			}

			event := logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("remote", clientKey(r)).
				Int("status", status).
				Int("bytes", rw.bytes).
				Dur("duration", time.Since(start))
			if id := GetRequestID(r.Context()); id != "" {
				event = event.Str("request_id", id)
			}
			event.Msg("request")
		})
	}
}
