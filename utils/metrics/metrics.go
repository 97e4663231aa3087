// Package metrics exposes Prometheus counters for the search subsystem.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SearchesTotal counts executed searches by entity type and match mode.
	SearchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mise_searches_total",
		Help: "Number of search requests executed, by entity type and match mode.",
	}, []string{"entity_type", "mode"})

	// SearchErrorsTotal counts failed searches by entity type.
	SearchErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mise_search_errors_total",
		Help: "Number of search requests that failed, by entity type.",
	}, []string{"entity_type"})

	// AnalyticsEventsDropped counts query-log events discarded because the
	// analytics queue was full.
	AnalyticsEventsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mise_analytics_events_dropped_total",
		Help: "Number of search analytics events dropped due to a full queue.",
	})

	// TrendingCacheHits counts trending responses served from cache.
	TrendingCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mise_trending_cache_hits_total",
		Help: "Number of trending requests served from the Redis cache.",
	})

	// TrendingCacheMisses counts trending responses computed from storage.
	TrendingCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mise_trending_cache_misses_total",
		Help: "Number of trending requests that fell through to the database.",
	})
)

// ModeLabel returns the metrics label for a search mode.
func ModeLabel(fuzzy bool) string {
	if fuzzy {
		return "fuzzy"
	}
	return "exact"
}
