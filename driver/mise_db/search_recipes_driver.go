package mise_db

import (
	"context"
	"errors"
	"fmt"

	"mise/domain"
	"mise/utils/logger"
)

const recipeSelectColumns = `r.id, r.title, COALESCE(r.description, ''), COALESCE(r.cuisine, ''), COALESCE(r.difficulty, ''), r.spice_level,
		r.cooking_time_minutes, r.prep_time_minutes, COALESCE(r.average_rating, 0), r.save_count, r.created_at,
		COALESCE((SELECT array_agg(rt.tag ORDER BY rt.tag) FROM recipe_tags rt WHERE rt.recipe_id = r.id), '{}'),
		COALESCE((SELECT array_agg(i.name ORDER BY i.name) FROM recipe_ingredients ri JOIN ingredients i ON i.id = ri.ingredient_id WHERE ri.recipe_id = r.id), '{}')`

// SearchRecipesAdvanced executes a compiled filter + ranking query and
// returns the page along with the total match count ignoring pagination.
func (r *MiseDBRepository) SearchRecipesAdvanced(ctx context.Context, query string, fuzzy bool, search domain.RecipeSearchQuery) ([]*domain.ScoredRecipe, int, error) {
	if r == nil || r.pool == nil {
		return nil, 0, errors.New("database connection pool is nil")
	}

	builder := newPredicateBuilder()
	compileRecipeTextGate(builder, query, fuzzy)
	if err := compileRecipeFilters(builder, search.Filters); err != nil {
		logger.SafeError("failed to compile recipe filters", "error", err)
		return nil, 0, fmt.Errorf("compile filters: %w", err)
	}

	where := builder.whereClause()

	countSQL := "SELECT COUNT(*) FROM recipes r" + where
	countArgs := builder.snapshotArgs()

	var total int
	if err := r.pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.SafeError("failed to count recipe search results", "error", err)
		return nil, 0, fmt.Errorf("count recipes: %w", err)
	}

	scoreExpr := recipeScoreExpr(builder, query, fuzzy)
	limitIdx := builder.bind(search.Limit)
	offsetIdx := builder.bind(search.Offset)

	pageSQL := fmt.Sprintf(
		"SELECT %s,\n\t\t%s AS relevance\n\tFROM recipes r%s%s LIMIT $%d OFFSET $%d",
		recipeSelectColumns,
		scoreExpr,
		where,
		recipeOrderBy(search.SortBy, search.SortOrder, query != ""),
		limitIdx,
		offsetIdx,
	)

	rows, err := r.pool.Query(ctx, pageSQL, builder.args...)
	if err != nil {
		logger.SafeError("failed to search recipes", "error", err, "query", query)
		return nil, 0, fmt.Errorf("search recipes: %w", err)
	}
	defer rows.Close()

	recipes := []*domain.ScoredRecipe{}
	for rows.Next() {
		var recipe domain.ScoredRecipe
		if err := rows.Scan(
			&recipe.ID,
			&recipe.Title,
			&recipe.Description,
			&recipe.Cuisine,
			&recipe.Difficulty,
			&recipe.SpiceLevel,
			&recipe.CookingTimeMinutes,
			&recipe.PrepTimeMinutes,
			&recipe.AverageRating,
			&recipe.SaveCount,
			&recipe.CreatedAt,
			&recipe.Tags,
			&recipe.Ingredients,
			&recipe.Relevance,
		); err != nil {
			logger.SafeError("failed to scan recipe row", "error", err)
			return nil, 0, fmt.Errorf("scan recipe: %w", err)
		}
		recipes = append(recipes, &recipe)
	}

	if err := rows.Err(); err != nil {
		logger.SafeError("error iterating recipe rows", "error", err)
		return nil, 0, fmt.Errorf("iterate recipes: %w", err)
	}

	logger.SafeInfo("recipe search completed",
		"query", query,
		"fuzzy", fuzzy,
		"total", total,
		"returned", len(recipes))

	return recipes, total, nil
}

// SearchRecipes runs the text-only recipe search used by the federated
// dispatcher. Filters are empty; ordering is relevance-first.
func (r *MiseDBRepository) SearchRecipes(ctx context.Context, query string, fuzzy bool, limit, offset int) ([]*domain.ScoredRecipe, int, error) {
	return r.SearchRecipesAdvanced(ctx, query, fuzzy, domain.RecipeSearchQuery{
		Filters:   domain.FilterSpec{},
		SortBy:    domain.SortRelevance,
		SortOrder: domain.SortDesc,
		Limit:     limit,
		Offset:    offset,
	})
}
