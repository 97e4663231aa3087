package trending_port

import (
	"context"

	"mise/domain"
)

// TrendingPort computes the time-windowed aggregates. All three reads
// are independent projections; none mutate state.
type TrendingPort interface {
	FetchTrendingRecipes(ctx context.Context, windowDays, limit int) ([]*domain.TrendingRecipe, error)
	FetchTrendingIngredients(ctx context.Context, windowDays, limit int) ([]*domain.TrendingIngredient, error)
	FetchTrendingCuisines(ctx context.Context, windowDays, limit int) ([]*domain.TrendingCuisine, error)
}

// TrendingCachePort serves cached trending responses. A miss returns
// (false, nil); cache failures degrade to a direct storage read.
type TrendingCachePort interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}
