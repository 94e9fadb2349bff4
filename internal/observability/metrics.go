// Package observability provides metrics and tracing for the application.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillswap_redis_error_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "skillswap_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// SwapRequestsTotal counts swap request lifecycle outcomes.
	SwapRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skillswap_swap_requests_total",
		Help: "Total swap request lifecycle events by outcome",
	}, []string{"outcome"})

	// ChatMessagesTotal counts chat messages persisted.
	ChatMessagesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skillswap_chat_messages_total",
		Help: "Total chat messages persisted",
	})

	// NotificationFanoutTotal counts notifications created as chat fan-out.
	NotificationFanoutTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skillswap_notification_fanout_total",
		Help: "Total notifications created as a side effect of chat messages",
	})
)

// DatabaseMetrics wraps DB access for recording query latency.
type DatabaseMetrics struct{}

// NewDatabaseMetrics returns a new DatabaseMetrics instance.
func NewDatabaseMetrics() *DatabaseMetrics {
	return &DatabaseMetrics{}
}

// ObserveQuery records the latency of a database query.
func (m *DatabaseMetrics) ObserveQuery(operation, table string, start time.Time) {
	latency := time.Since(start).Seconds()
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(latency)
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func (m *DatabaseMetrics) TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		m.ObserveQuery(operation, table, start)
	}
}
