package search_recipe_usecase

import (
	"context"

	"mise/domain"
	"mise/port/search_analytics_port"
	"mise/port/search_port"
	"mise/utils/errors"
	"mise/utils/metrics"
	"mise/utils/pagination"

	"github.com/google/uuid"
)

// AdvancedSearchResult is a filtered, ranked, paginated recipe page.
type AdvancedSearchResult struct {
	Recipes []*domain.ScoredRecipe `json:"recipes"`
	Page    pagination.Page        `json:"pagination"`
}

// AdvancedRecipeSearchUsecase runs the filter-compiled recipe search.
type AdvancedRecipeSearchUsecase struct {
	searchPort search_port.RecipeSearchPort
	analytics  search_analytics_port.EnqueuePort
}

func NewAdvancedRecipeSearchUsecase(searchPort search_port.RecipeSearchPort, analytics search_analytics_port.EnqueuePort) *AdvancedRecipeSearchUsecase {
	return &AdvancedRecipeSearchUsecase{searchPort: searchPort, analytics: analytics}
}

// Execute validates the filter spec and pagination before any storage
// access, then runs the compiled query.
func (u *AdvancedRecipeSearchUsecase) Execute(ctx context.Context, query string, fuzzy bool, search domain.RecipeSearchQuery, userID *uuid.UUID) (*AdvancedSearchResult, error) {
	if err := pagination.Validate(search.Limit, search.Offset); err != nil {
		return nil, err
	}
	if err := domain.ValidateRecipeFilters(search.Filters); err != nil {
		return nil, errors.ValidationError(err.Error(), map[string]interface{}{
			"field": "filters",
		})
	}

	recipes, total, err := u.searchPort.SearchRecipesAdvanced(ctx, query, fuzzy, search)
	if err != nil {
		metrics.SearchErrorsTotal.WithLabelValues(string(domain.EntityRecipes)).Inc()
		return nil, err
	}

	metrics.SearchesTotal.WithLabelValues(string(domain.EntityRecipes), metrics.ModeLabel(fuzzy)).Inc()

	if u.analytics != nil && query != "" {
		u.analytics.Enqueue(search_analytics_port.Event{
			Query:       query,
			Scope:       domain.EntityRecipes,
			ResultCount: total,
			UserID:      userID,
		})
	}

	return &AdvancedSearchResult{
		Recipes: recipes,
		Page:    pagination.NewPage(total, search.Limit, search.Offset, len(recipes)),
	}, nil
}
