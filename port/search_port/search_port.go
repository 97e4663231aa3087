package search_port

import (
	"context"

	"mise/domain"
)

// RecipeSearchPort runs the compiled recipe search. The int return is
// the total match count ignoring pagination.
type RecipeSearchPort interface {
	SearchRecipes(ctx context.Context, query string, fuzzy bool, limit, offset int) ([]*domain.ScoredRecipe, int, error)
	SearchRecipesAdvanced(ctx context.Context, query string, fuzzy bool, search domain.RecipeSearchQuery) ([]*domain.ScoredRecipe, int, error)
}

type IngredientSearchPort interface {
	SearchIngredients(ctx context.Context, query string, fuzzy bool, limit, offset int) ([]*domain.ScoredIngredient, int, error)
}

type UserSearchPort interface {
	SearchUsers(ctx context.Context, query string, fuzzy bool, limit, offset int) ([]*domain.ScoredUser, int, error)
}
