package search_gateway

import (
	"context"

	"mise/domain"
	"mise/driver/mise_db"
	"mise/utils/errors"
	"mise/utils/logger"
)

// SearchGateway implements the per-entity search ports on top of the
// database repository.
type SearchGateway struct {
	repository *mise_db.MiseDBRepository
}

func NewSearchGateway(repository *mise_db.MiseDBRepository) *SearchGateway {
	return &SearchGateway{repository: repository}
}

func (g *SearchGateway) SearchRecipes(ctx context.Context, query string, fuzzy bool, limit, offset int) ([]*domain.ScoredRecipe, int, error) {
	recipes, total, err := g.repository.SearchRecipes(ctx, query, fuzzy, limit, offset)
	if err != nil {
		return nil, 0, g.wrap(err, "SearchRecipes", query)
	}
	return recipes, total, nil
}

func (g *SearchGateway) SearchRecipesAdvanced(ctx context.Context, query string, fuzzy bool, search domain.RecipeSearchQuery) ([]*domain.ScoredRecipe, int, error) {
	recipes, total, err := g.repository.SearchRecipesAdvanced(ctx, query, fuzzy, search)
	if err != nil {
		return nil, 0, g.wrap(err, "SearchRecipesAdvanced", query)
	}
	return recipes, total, nil
}

func (g *SearchGateway) SearchIngredients(ctx context.Context, query string, fuzzy bool, limit, offset int) ([]*domain.ScoredIngredient, int, error) {
	ingredients, total, err := g.repository.SearchIngredients(ctx, query, fuzzy, limit, offset)
	if err != nil {
		return nil, 0, g.wrap(err, "SearchIngredients", query)
	}
	return ingredients, total, nil
}

func (g *SearchGateway) SearchUsers(ctx context.Context, query string, fuzzy bool, limit, offset int) ([]*domain.ScoredUser, int, error) {
	users, total, err := g.repository.SearchUsers(ctx, query, fuzzy, limit, offset)
	if err != nil {
		return nil, 0, g.wrap(err, "SearchUsers", query)
	}
	return users, total, nil
}

func (g *SearchGateway) wrap(err error, method, query string) error {
	dbErr := errors.StorageError("search query failed", err, map[string]interface{}{
		"gateway": "SearchGateway",
		"method":  method,
		"query":   query,
	})
	errors.LogError(logger.Logger, dbErr, "search")
	return dbErr
}
