package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	InteractionsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "community_feed_interactions_recorded_total",
			Help: "Total number of recorded user interactions",
		},
		[]string{"action"},
	)

	RecommendationsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "community_feed_recommendations_served_total",
			Help: "Total number of recommended posts returned, by reason",
		},
		[]string{"reason"},
	)

	TrendingCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "community_feed_trending_cache_lookups_total",
			Help: "Trending topics cache lookups by result",
		},
		[]string{"result"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "community_feed_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method", "status"},
	)
)

// Trending cache lookup results.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)
