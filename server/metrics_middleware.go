package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gallery_http_requests_total",
			Help: "Total number of HTTP requests handled by the gallery server",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gallery_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// MetricsMiddleware records a request counter and a duration histogram per
// route. Paths carrying a filename are normalised to keep label cardinality
// bounded.
func (s *Server) MetricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := newStatusResponseWriter(w)

		next(wrapped, r)

		path := normalizePath(r.URL.Path)
		httpRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.statusCode)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	}
}

// normalizePath collapses per-file path segments into a placeholder so every
// stored image does not become its own metric series.
func normalizePath(path string) string {
	const deletePrefix = "/api/delete/"
	if strings.HasPrefix(path, deletePrefix) {
		return deletePrefix + "{filename}"
	}
	if strings.HasPrefix(path, RouteUploads) && path != RouteUploads {
		return RouteUploads + "{filename}"
	}
	return path
}
