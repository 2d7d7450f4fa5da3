// Package telemetry exposes prometheus metrics for the HTTP surface and the
// news collection pipeline, plus the middleware that records per-request
// counts and latencies.
package telemetry

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aiatlas_http_requests_total",
		Help: "HTTP requests by method and status code.",
	}, []string{"method", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "aiatlas_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})

	FeedsFetched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aiatlas_feeds_fetched_total",
		Help: "Feeds fetched and parsed successfully.",
	})

	FeedFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aiatlas_feed_failures_total",
		Help: "Feeds skipped due to fetch or parse failures.",
	})

	ItemsCollected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aiatlas_news_items_collected_total",
		Help: "News items extracted across all collection runs.",
	})

	EnrichmentFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aiatlas_enrichment_fallbacks_total",
		Help: "Items that received deterministic fallback enrichment.",
	})
)

// Middleware wraps the provided handler and records request counts and
// durations.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		srw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(srw, r)
		requestsTotal.WithLabelValues(r.Method, strconv.Itoa(srw.status)).Inc()
		requestDuration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
	})
}

// statusRecorder captures the response status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
