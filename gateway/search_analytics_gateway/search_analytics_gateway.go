package search_analytics_gateway

import (
	"context"

	"mise/driver/mise_db"
	"mise/port/search_analytics_port"
	"mise/utils/errors"
	"mise/utils/logger"
	"mise/validation"
)

// SearchAnalyticsGateway appends events to the query log. Callers treat
// failures as best-effort; the returned error exists only so the worker
// can log it.
type SearchAnalyticsGateway struct {
	repository *mise_db.MiseDBRepository
}

func NewSearchAnalyticsGateway(repository *mise_db.MiseDBRepository) *SearchAnalyticsGateway {
	return &SearchAnalyticsGateway{repository: repository}
}

func (g *SearchAnalyticsGateway) RecordSearch(ctx context.Context, event search_analytics_port.Event) error {
	// Queries reach the database as bind parameters, so stripping markup
	// here protects the query log and anything that echoes it back.
	query := validation.SanitizeInput(ctx, event.Query)
	if err := g.repository.InsertSearchQuery(ctx, query, event.Scope, event.ResultCount, event.UserID); err != nil {
		dbErr := errors.StorageError("failed to record search event", err, map[string]interface{}{
			"gateway": "SearchAnalyticsGateway",
			"scope":   string(event.Scope),
		})
		errors.LogError(logger.Logger, dbErr, "record_search")
		return dbErr
	}
	return nil
}
