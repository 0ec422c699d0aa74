// metrics/metrics.go

// Package metrics exposes Prometheus instrumentation for the feed engine.
//
// Feed cache:
//   - feed_cache_lookups_total{result="hit|miss|error"}
//   - feed_cache_write_errors_total{op="set|delete"}
//
// Recomputation:
//   - feed_recompute_duration_seconds
//   - feed_recompute_failures_total
//   - feed_recompute_queue_depth
//
// Invalidation:
//   - feed_invalidation_events_total{type}
//
// HTTP:
//   - http_requests_total{method,route,status}
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FeedCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_cache_lookups_total",
			Help: "Feed cache lookups by result",
		},
		[]string{"result"},
	)

	FeedCacheWriteErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_cache_write_errors_total",
			Help: "Feed cache writes that failed and were dropped",
		},
		[]string{"op"},
	)

	FeedRecomputeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "feed_recompute_duration_seconds",
			Help:    "Time to recompute and store one user's feed",
			Buckets: []float64{.005, .01, .05, .1, .25, .5, 1, 2.5, 5},
		},
	)

	FeedRecomputeFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feed_recompute_failures_total",
			Help: "Per-user feed recomputations that failed",
		},
	)

	RecomputeQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "feed_recompute_queue_depth",
			Help: "Recomputation jobs waiting for a worker",
		},
	)

	InvalidationEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_invalidation_events_total",
			Help: "Invalidation events published on the bus",
		},
		[]string{"type"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)
)

const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// RecordCacheLookup counts one feed cache lookup.
func RecordCacheLookup(result string) {
	FeedCacheLookups.WithLabelValues(result).Inc()
}

// RecordRecompute observes one recomputation.
func RecordRecompute(duration time.Duration, err error) {
	FeedRecomputeDuration.Observe(duration.Seconds())
	if err != nil {
		FeedRecomputeFailures.Inc()
	}
}

// RecordHTTPRequest counts one served request.
func RecordHTTPRequest(method, route string, status int) {
	if route == "" {
		route = "unmatched"
	}
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}
