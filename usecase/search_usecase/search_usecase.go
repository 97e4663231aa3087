package search_usecase

import (
	"context"

	"mise/domain"
	"mise/port/search_analytics_port"
	"mise/port/search_port"
	"mise/utils/logger"
	"mise/utils/metrics"
	"mise/utils/pagination"

	"github.com/google/uuid"
)

// RecipeBucket is one entity type's slice of a federated response. Each
// bucket paginates independently with the same offset/limit pair; there
// is no global pagination across entity types.
type RecipeBucket struct {
	Results []*domain.ScoredRecipe `json:"results"`
	Page    pagination.Page        `json:"pagination"`
}

type IngredientBucket struct {
	Results []*domain.ScoredIngredient `json:"results"`
	Page    pagination.Page            `json:"pagination"`
}

type UserBucket struct {
	Results []*domain.ScoredUser `json:"results"`
	Page    pagination.Page      `json:"pagination"`
}

// FederatedSearchResult groups per-type buckets under one envelope.
// CombinedCount sums the per-type totals and exists for analytics only.
type FederatedSearchResult struct {
	Recipes       *RecipeBucket     `json:"recipes,omitempty"`
	Ingredients   *IngredientBucket `json:"ingredients,omitempty"`
	Users         *UserBucket       `json:"users,omitempty"`
	CombinedCount int               `json:"-"`
}

// FederatedSearchUsecase fans a query out to the per-entity search
// functions and merges the buckets.
type FederatedSearchUsecase struct {
	recipePort     search_port.RecipeSearchPort
	ingredientPort search_port.IngredientSearchPort
	userPort       search_port.UserSearchPort
	analytics      search_analytics_port.EnqueuePort
}

func NewFederatedSearchUsecase(
	recipePort search_port.RecipeSearchPort,
	ingredientPort search_port.IngredientSearchPort,
	userPort search_port.UserSearchPort,
	analytics search_analytics_port.EnqueuePort,
) *FederatedSearchUsecase {
	return &FederatedSearchUsecase{
		recipePort:     recipePort,
		ingredientPort: ingredientPort,
		userPort:       userPort,
		analytics:      analytics,
	}
}

// Execute runs the search across the requested scope. In "all" scope
// each type is capped at PerTypeSearchCap regardless of the requested
// limit, so a combined response stays bounded.
func (u *FederatedSearchUsecase) Execute(ctx context.Context, query domain.SearchQuery, userID *uuid.UUID) (*FederatedSearchResult, error) {
	if err := pagination.Validate(query.Limit, query.Offset); err != nil {
		return nil, err
	}

	limit := query.Limit
	if query.Scope == domain.EntityAll && limit > domain.PerTypeSearchCap {
		limit = domain.PerTypeSearchCap
	}

	result := &FederatedSearchResult{}

	if query.Scope == domain.EntityAll || query.Scope == domain.EntityRecipes {
		recipes, total, err := u.recipePort.SearchRecipes(ctx, query.Query, query.Fuzzy, limit, query.Offset)
		if err != nil {
			metrics.SearchErrorsTotal.WithLabelValues(string(domain.EntityRecipes)).Inc()
			return nil, err
		}
		result.Recipes = &RecipeBucket{
			Results: recipes,
			Page:    pagination.NewPage(total, limit, query.Offset, len(recipes)),
		}
		result.CombinedCount += total
	}

	if query.Scope == domain.EntityAll || query.Scope == domain.EntityIngredients {
		ingredients, total, err := u.ingredientPort.SearchIngredients(ctx, query.Query, query.Fuzzy, limit, query.Offset)
		if err != nil {
			metrics.SearchErrorsTotal.WithLabelValues(string(domain.EntityIngredients)).Inc()
			return nil, err
		}
		result.Ingredients = &IngredientBucket{
			Results: ingredients,
			Page:    pagination.NewPage(total, limit, query.Offset, len(ingredients)),
		}
		result.CombinedCount += total
	}

	if query.Scope == domain.EntityAll || query.Scope == domain.EntityUsers {
		users, total, err := u.userPort.SearchUsers(ctx, query.Query, query.Fuzzy, limit, query.Offset)
		if err != nil {
			metrics.SearchErrorsTotal.WithLabelValues(string(domain.EntityUsers)).Inc()
			return nil, err
		}
		result.Users = &UserBucket{
			Results: users,
			Page:    pagination.NewPage(total, limit, query.Offset, len(users)),
		}
		result.CombinedCount += total
	}

	metrics.SearchesTotal.WithLabelValues(string(query.Scope), metrics.ModeLabel(query.Fuzzy)).Inc()

	if u.analytics != nil && query.Query != "" {
		// Fire-and-forget: the enqueue never blocks and its outcome
		// never affects the response.
		u.analytics.Enqueue(search_analytics_port.Event{
			Query:       query.Query,
			Scope:       query.Scope,
			ResultCount: result.CombinedCount,
			UserID:      userID,
		})
	}

	logger.SafeInfo("federated search completed",
		"query", query.Query,
		"scope", string(query.Scope),
		"fuzzy", query.Fuzzy,
		"combined_count", result.CombinedCount)

	return result, nil
}
