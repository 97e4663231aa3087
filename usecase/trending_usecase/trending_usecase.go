package trending_usecase

import (
	"context"
	"fmt"

	"mise/domain"
	"mise/port/trending_port"
	"mise/utils/errors"
	"mise/utils/logger"
	"mise/utils/metrics"
)

const (
	defaultLimit = 10
	maxLimit     = 50
)

// TrendingResult groups the three time-windowed aggregates.
type TrendingResult struct {
	Recipes     []*domain.TrendingRecipe     `json:"recipes"`
	Ingredients []*domain.TrendingIngredient `json:"ingredients"`
	Cuisines    []*domain.TrendingCuisine    `json:"cuisines"`
	WindowDays  int                          `json:"window_days"`
}

// TrendingUsecase computes trend aggregates, serving from the Redis
// cache when a fresh copy exists. Cache failures fall through to the
// database; they are logged and never surfaced.
type TrendingUsecase struct {
	trendingPort trending_port.TrendingPort
	cache        trending_port.TrendingCachePort
}

func NewTrendingUsecase(trendingPort trending_port.TrendingPort, cache trending_port.TrendingCachePort) *TrendingUsecase {
	return &TrendingUsecase{trendingPort: trendingPort, cache: cache}
}

// Execute computes the combined trending view over a 1-30 day window.
func (u *TrendingUsecase) Execute(ctx context.Context, windowDays, limit int) (*TrendingResult, error) {
	windowDays, limit, err := normalize(windowDays, limit, domain.MaxTrendWindowDays)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("trending:all:%d:%d", windowDays, limit)
	if u.cache != nil {
		var cached TrendingResult
		if hit, err := u.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
			metrics.TrendingCacheHits.Inc()
			return &cached, nil
		} else if err != nil {
			logger.SafeError("trending cache read failed", "error", err)
		}
	}
	metrics.TrendingCacheMisses.Inc()

	recipes, err := u.trendingPort.FetchTrendingRecipes(ctx, windowDays, limit)
	if err != nil {
		return nil, err
	}
	ingredients, err := u.trendingPort.FetchTrendingIngredients(ctx, windowDays, limit)
	if err != nil {
		return nil, err
	}
	cuisines, err := u.trendingPort.FetchTrendingCuisines(ctx, windowDays, limit)
	if err != nil {
		return nil, err
	}

	result := &TrendingResult{
		Recipes:     recipes,
		Ingredients: ingredients,
		Cuisines:    cuisines,
		WindowDays:  windowDays,
	}

	if u.cache != nil {
		if err := u.cache.Set(ctx, cacheKey, result); err != nil {
			logger.SafeError("trending cache write failed", "error", err)
		}
	}

	return result, nil
}

// ExecuteIngredients computes the ingredient aggregate alone, which
// allows the wider 1-365 day window.
func (u *TrendingUsecase) ExecuteIngredients(ctx context.Context, windowDays, limit int) ([]*domain.TrendingIngredient, error) {
	windowDays, limit, err := normalize(windowDays, limit, domain.MaxIngredientTrendWindowDays)
	if err != nil {
		return nil, err
	}
	return u.trendingPort.FetchTrendingIngredients(ctx, windowDays, limit)
}

// ExecuteCuisines computes the cuisine aggregate alone over the wider
// 1-365 day window.
func (u *TrendingUsecase) ExecuteCuisines(ctx context.Context, windowDays, limit int) ([]*domain.TrendingCuisine, error) {
	windowDays, limit, err := normalize(windowDays, limit, domain.MaxIngredientTrendWindowDays)
	if err != nil {
		return nil, err
	}
	return u.trendingPort.FetchTrendingCuisines(ctx, windowDays, limit)
}

func normalize(windowDays, limit, maxWindow int) (int, int, error) {
	if windowDays == 0 {
		windowDays = domain.DefaultTrendWindowDays
	}
	if windowDays < 1 || windowDays > maxWindow {
		return 0, 0, errors.ValidationError(
			fmt.Sprintf("window must be between 1 and %d days", maxWindow),
			map[string]interface{}{"field": "days", "value": windowDays},
		)
	}
	if limit == 0 {
		limit = defaultLimit
	}
	if limit < 1 || limit > maxLimit {
		return 0, 0, errors.ValidationError(
			fmt.Sprintf("limit must be between 1 and %d", maxLimit),
			map[string]interface{}{"field": "limit", "value": limit},
		)
	}
	return windowDays, limit, nil
}
