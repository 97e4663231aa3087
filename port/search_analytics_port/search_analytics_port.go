package search_analytics_port

import (
	"context"

	"mise/domain"

	"github.com/google/uuid"
)

// Event is one query/result-count pair destined for the query log.
type Event struct {
	Query       string
	Scope       domain.EntityType
	ResultCount int
	UserID      *uuid.UUID
}

// RecordPort persists one event into the append-only query log.
type RecordPort interface {
	RecordSearch(ctx context.Context, event Event) error
}

// EnqueuePort hands an event to the background analytics worker. The
// call never blocks and never fails; a full queue drops the event.
type EnqueuePort interface {
	Enqueue(event Event)
}
