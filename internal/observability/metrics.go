// Package observability provides metrics and tracing.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Auth rejection reasons. Logged and counted, never sent to the client.
const (
	ReasonMissing   = "missing"
	ReasonMalformed = "malformed"
	ReasonInvalid   = "invalid"
	ReasonExpired   = "expired"
)

// Stats cache results.
const (
	CacheHit    = "hit"
	CacheMiss   = "miss"
	CacheBypass = "bypass"
)

var (
	// AuthRejections counts requests turned away by the auth guard.
	AuthRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smartlife_auth_rejections_total",
		Help: "Total number of requests rejected by the auth guard by reason",
	}, []string{"reason"})

	// StatsCache counts stats cache lookups by result.
	StatsCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smartlife_stats_cache_total",
		Help: "Total number of stats cache lookups by result",
	}, []string{"result"})

	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smartlife_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "smartlife_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})
)
