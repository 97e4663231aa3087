package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeLabel(t *testing.T) {
	assert.Equal(t, "fuzzy", ModeLabel(true))
	assert.Equal(t, "exact", ModeLabel(false))
}

func TestCountersRegistered(t *testing.T) {
	assert.NotPanics(t, func() {
		SearchesTotal.WithLabelValues("recipes", "exact").Inc()
		SearchErrorsTotal.WithLabelValues("recipes").Inc()
		AnalyticsEventsDropped.Inc()
		TrendingCacheHits.Inc()
		TrendingCacheMisses.Inc()
	})
}
