package mise_db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mise/domain"
	"mise/utils/logger"
	sqlutil "mise/utils/sql"
)

// FetchTrendingRecipes returns the most-saved recipes within the window.
// The inner join on saves means a recipe needs at least one save in the
// window to appear at all.
func (r *MiseDBRepository) FetchTrendingRecipes(ctx context.Context, windowDays, limit int) ([]*domain.TrendingRecipe, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection pool is nil")
	}

	query := fmt.Sprintf(`SELECT %s, COUNT(s.recipe_id) AS window_saves
	FROM recipes r
	JOIN recipe_saves s ON s.recipe_id = r.id AND s.created_at >= NOW() - make_interval(days => $1)
	GROUP BY r.id
	ORDER BY window_saves DESC, r.created_at DESC, r.id DESC
	LIMIT $2`, recipeSelectColumns)

	rows, err := r.pool.Query(ctx, query, windowDays, limit)
	if err != nil {
		logger.SafeError("failed to fetch trending recipes", "error", err, "window_days", windowDays)
		return nil, fmt.Errorf("fetch trending recipes: %w", err)
	}
	defer rows.Close()

	recipes := []*domain.TrendingRecipe{}
	for rows.Next() {
		var recipe domain.TrendingRecipe
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
			&recipe.WindowSaves,
		); err != nil {
			logger.SafeError("failed to scan trending recipe row", "error", err)
			return nil, fmt.Errorf("scan trending recipe: %w", err)
		}
		recipes = append(recipes, &recipe)
	}

	if err := rows.Err(); err != nil {
		logger.SafeError("error iterating trending recipe rows", "error", err)
		return nil, fmt.Errorf("iterate trending recipes: %w", err)
	}

	return recipes, nil
}

// FetchTrendingIngredients returns ingredient usage across recipes created
// in the window. The usage percentage denominator is floored at 1 so an
// empty window cannot divide by zero.
func (r *MiseDBRepository) FetchTrendingIngredients(ctx context.Context, windowDays, limit int) ([]*domain.TrendingIngredient, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection pool is nil")
	}

	query := `WITH window_recipes AS (
		SELECT id FROM recipes WHERE created_at >= NOW() - make_interval(days => $1)
	)
	SELECT i.name, COUNT(ri.recipe_id) AS window_uses,
		COUNT(ri.recipe_id)::float / GREATEST((SELECT COUNT(*) FROM window_recipes), 1) AS usage_percentage
	FROM ingredients i
	JOIN recipe_ingredients ri ON ri.ingredient_id = i.id
	JOIN window_recipes wr ON wr.id = ri.recipe_id
	GROUP BY i.name
	ORDER BY window_uses DESC, i.name ASC
	LIMIT $2`

	rows, err := r.pool.Query(ctx, query, windowDays, limit)
	if err != nil {
		logger.SafeError("failed to fetch trending ingredients", "error", err, "window_days", windowDays)
		return nil, fmt.Errorf("fetch trending ingredients: %w", err)
	}
	defer rows.Close()

	ingredients := []*domain.TrendingIngredient{}
	for rows.Next() {
		var ingredient domain.TrendingIngredient
		if err := rows.Scan(&ingredient.Name, &ingredient.WindowUses, &ingredient.UsagePercentage); err != nil {
			logger.SafeError("failed to scan trending ingredient row", "error", err)
			return nil, fmt.Errorf("scan trending ingredient: %w", err)
		}
		ingredients = append(ingredients, &ingredient)
	}

	if err := rows.Err(); err != nil {
		logger.SafeError("error iterating trending ingredient rows", "error", err)
		return nil, fmt.Errorf("iterate trending ingredients: %w", err)
	}

	return ingredients, nil
}

// FetchTrendingCuisines returns cuisines ranked by recipe count in the
// window, with average rating as the secondary key.
func (r *MiseDBRepository) FetchTrendingCuisines(ctx context.Context, windowDays, limit int) ([]*domain.TrendingCuisine, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection pool is nil")
	}

	query := `SELECT r.cuisine, COUNT(*) AS recipe_count, AVG(NULLIF(r.average_rating, 0)) AS average_rating
	FROM recipes r
	WHERE r.cuisine IS NOT NULL AND r.cuisine <> '' AND r.created_at >= NOW() - make_interval(days => $1)
	GROUP BY r.cuisine
	ORDER BY recipe_count DESC, average_rating DESC NULLS LAST, r.cuisine ASC
	LIMIT $2`

	rows, err := r.pool.Query(ctx, query, windowDays, limit)
	if err != nil {
		logger.SafeError("failed to fetch trending cuisines", "error", err, "window_days", windowDays)
		return nil, fmt.Errorf("fetch trending cuisines: %w", err)
	}
	defer rows.Close()

	cuisines := []*domain.TrendingCuisine{}
	for rows.Next() {
		var cuisine domain.TrendingCuisine
		var avgRating sql.NullFloat64
		if err := rows.Scan(&cuisine.Cuisine, &cuisine.RecipeCount, &avgRating); err != nil {
			logger.SafeError("failed to scan trending cuisine row", "error", err)
			return nil, fmt.Errorf("scan trending cuisine: %w", err)
		}
		cuisine.AverageRating = sqlutil.NullFloatOr(avgRating, 0)
		cuisines = append(cuisines, &cuisine)
	}

	if err := rows.Err(); err != nil {
		logger.SafeError("error iterating trending cuisine rows", "error", err)
		return nil, fmt.Errorf("iterate trending cuisines: %w", err)
	}

	return cuisines, nil
}
