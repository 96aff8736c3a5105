// Package observability provides Prometheus collectors and OpenTelemetry
// tracing setup for the application.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aesn_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// AuthFailures counts failed identity resolutions by kind. The two kinds
	// (invalid_token, user_not_found) both surface as 401 to clients but are
	// tracked separately here.
	AuthFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "aesn_auth_failures_total",
		Help: "Total number of authentication failures by kind",
	}, []string{"kind"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "aesn_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// MediaBytesWritten counts bytes persisted to the media store.
	MediaBytesWritten = promauto.NewCounter(prometheus.CounterOpts{
		Name: "aesn_media_bytes_written_total",
		Help: "Total number of bytes written to the media store",
	})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
