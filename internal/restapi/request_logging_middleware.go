package restapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"metro.transit.dev/internal/logging"
)

type requestNotesKey struct{}

// requestNotes collects what handlers learn while serving a request so the
// access log line can report it.
type requestNotes struct {
	upstreamError string
}

// noteUpstreamError records how the Metro API call behind r failed. It is a
// no-op outside the request logging middleware.
func noteUpstreamError(r *http.Request, class string) {
	if notes, ok := r.Context().Value(requestNotesKey{}).(*requestNotes); ok {
		notes.upstreamError = class
	}
}

// statusRecorder captures the status code and body size of a response.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	n, err := sr.ResponseWriter.Write(b)
	sr.bytes += n
	return n, err
}

// NewRequestLoggingMiddleware writes one http_request line per request with
// the response size on the wire and, when the handler reached the Metro API
// and failed, the upstream error class. logger is also put into the request
// context for handlers.
func NewRequestLoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			notes := &requestNotes{}
			ctx := logging.WithLogger(r.Context(), logger)
			r = r.WithContext(context.WithValue(ctx, requestNotesKey{}, notes))
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r)

			attrs := []slog.Attr{
				slog.Int("bytes", recorder.bytes),
				slog.String("user_agent", r.Header.Get("User-Agent")),
				slog.String("component", "http_server"),
			}
			if notes.upstreamError != "" {
				attrs = append(attrs, slog.String("upstream_error", notes.upstreamError))
			}

			logging.LogHTTPRequest(logger,
				r.Method,
				r.URL.Path,
				recorder.status,
				float64(time.Since(start).Nanoseconds())/1e6,
				attrs...)
		})
	}
}
