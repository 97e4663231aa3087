package trending_gateway

import (
	"context"

	"mise/domain"
	"mise/driver/mise_db"
	"mise/utils/errors"
	"mise/utils/logger"
)

// TrendingGateway implements the TrendingPort interface
type TrendingGateway struct {
	repository *mise_db.MiseDBRepository
}

func NewTrendingGateway(repository *mise_db.MiseDBRepository) *TrendingGateway {
	return &TrendingGateway{repository: repository}
}

func (g *TrendingGateway) FetchTrendingRecipes(ctx context.Context, windowDays, limit int) ([]*domain.TrendingRecipe, error) {
	recipes, err := g.repository.FetchTrendingRecipes(ctx, windowDays, limit)
	if err != nil {
		return nil, g.wrap(err, "FetchTrendingRecipes", windowDays)
	}
	return recipes, nil
}

func (g *TrendingGateway) FetchTrendingIngredients(ctx context.Context, windowDays, limit int) ([]*domain.TrendingIngredient, error) {
	ingredients, err := g.repository.FetchTrendingIngredients(ctx, windowDays, limit)
	if err != nil {
		return nil, g.wrap(err, "FetchTrendingIngredients", windowDays)
	}
	return ingredients, nil
}

func (g *TrendingGateway) FetchTrendingCuisines(ctx context.Context, windowDays, limit int) ([]*domain.TrendingCuisine, error) {
	cuisines, err := g.repository.FetchTrendingCuisines(ctx, windowDays, limit)
	if err != nil {
		return nil, g.wrap(err, "FetchTrendingCuisines", windowDays)
	}
	return cuisines, nil
}

func (g *TrendingGateway) wrap(err error, method string, windowDays int) error {
	dbErr := errors.StorageError("failed to fetch trending aggregates", err, map[string]interface{}{
		"gateway":     "TrendingGateway",
		"method":      method,
		"window_days": windowDays,
	})
	errors.LogError(logger.Logger, dbErr, "fetch_trending")
	return dbErr
}
