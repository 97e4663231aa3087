package suggestion_port

import (
	"context"

	"mise/domain"
)

// SuggestionPort produces autocomplete candidates per entity type. Each
// method applies its own similarity threshold at the storage layer.
type SuggestionPort interface {
	SuggestRecipeTitles(ctx context.Context, partial string, threshold float64, limit int) ([]string, error)
	SuggestIngredientNames(ctx context.Context, partial string, threshold float64, limit int) ([]string, error)
	SuggestCuisines(ctx context.Context, partial string, threshold float64, limit int) ([]string, error)
	SuggestTags(ctx context.Context, partial string, threshold float64, limit int) ([]string, error)
}

// QueryLogPort reads the popularity projections of the append-only
// query log.
type QueryLogPort interface {
	FetchPopularQueries(ctx context.Context, limit int) ([]*domain.PopularQuery, error)
	FetchRelatedQueries(ctx context.Context, partial string, threshold float64, limit int) ([]*domain.PopularQuery, error)
}
