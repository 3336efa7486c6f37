package providers

import (
	"context"
	"net/http"
	"time"
)

// UnmatchedEndpoint labels requests that no registered route served.
const UnmatchedEndpoint = "other"

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

type routeLabelKey struct{}

type routeLabel struct {
	url string
}

// markRoute records the route that matched r, if r passes through
// MetricsMiddleware.
func markRoute(r *http.Request, url string) {
	if label, ok := r.Context().Value(routeLabelKey{}).(*routeLabel); ok {
		label.url = url
	}
}

// MetricsMiddleware counts requests per registered route. The label is the
// route url, never the raw request path, so unknown paths share one series.
func MetricsMiddleware(metrics MetricsProviderInterface, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		label := &routeLabel{url: UnmatchedEndpoint}

		next.ServeHTTP(sw, r.WithContext(context.WithValue(r.Context(), routeLabelKey{}, label)))

		duration := time.Since(start)
		metrics.IncRequestsTotal(label.url, sw.status)
		metrics.ObserveRequestDuration(label.url, duration)
	})
}
