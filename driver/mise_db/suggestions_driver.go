package mise_db

import (
	"context"
	"errors"
	"fmt"

	"mise/utils/logger"
)

// SuggestRecipeTitles returns autocomplete candidates from recipe titles.
// A candidate qualifies by trigram similarity above the recipe threshold
// or by substring containment; ranking is similarity first, then
// alphabetical so equal scores stay stable.
func (r *MiseDBRepository) SuggestRecipeTitles(ctx context.Context, partial string, threshold float64, limit int) ([]string, error) {
	query := `SELECT DISTINCT r.title, similarity(r.title, $1) AS sim
	FROM recipes r
	WHERE similarity(r.title, $1) > $2 OR r.title ILIKE $3
	ORDER BY sim DESC, r.title ASC
	LIMIT $4`
	return r.suggestValues(ctx, query, partial, threshold, limit)
}

// SuggestIngredientNames returns autocomplete candidates from ingredient names.
func (r *MiseDBRepository) SuggestIngredientNames(ctx context.Context, partial string, threshold float64, limit int) ([]string, error) {
	query := `SELECT DISTINCT i.name, similarity(i.name, $1) AS sim
	FROM ingredients i
	WHERE similarity(i.name, $1) > $2 OR i.name ILIKE $3
	ORDER BY sim DESC, i.name ASC
	LIMIT $4`
	return r.suggestValues(ctx, query, partial, threshold, limit)
}

// SuggestCuisines returns autocomplete candidates from distinct cuisines.
func (r *MiseDBRepository) SuggestCuisines(ctx context.Context, partial string, threshold float64, limit int) ([]string, error) {
	query := `SELECT DISTINCT r.cuisine, similarity(r.cuisine, $1) AS sim
	FROM recipes r
	WHERE r.cuisine <> '' AND (similarity(r.cuisine, $1) > $2 OR r.cuisine ILIKE $3)
	ORDER BY sim DESC, r.cuisine ASC
	LIMIT $4`
	return r.suggestValues(ctx, query, partial, threshold, limit)
}

// SuggestTags returns autocomplete candidates from distinct recipe tags.
func (r *MiseDBRepository) SuggestTags(ctx context.Context, partial string, threshold float64, limit int) ([]string, error) {
	query := `SELECT DISTINCT rt.tag, similarity(rt.tag, $1) AS sim
	FROM recipe_tags rt
	WHERE similarity(rt.tag, $1) > $2 OR rt.tag ILIKE $3
	ORDER BY sim DESC, rt.tag ASC
	LIMIT $4`
	return r.suggestValues(ctx, query, partial, threshold, limit)
}

func (r *MiseDBRepository) suggestValues(ctx context.Context, query, partial string, threshold float64, limit int) ([]string, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection pool is nil")
	}

	rows, err := r.pool.Query(ctx, query, partial, threshold, "%"+partial+"%", limit)
	if err != nil {
		logger.SafeError("failed to fetch suggestions", "error", err, "partial", partial)
		return nil, fmt.Errorf("fetch suggestions: %w", err)
	}
	defer rows.Close()

	values := []string{}
	for rows.Next() {
		var value string
		var sim float64
		if err := rows.Scan(&value, &sim); err != nil {
			logger.SafeError("failed to scan suggestion row", "error", err)
			return nil, fmt.Errorf("scan suggestion: %w", err)
		}
		values = append(values, value)
	}

	if err := rows.Err(); err != nil {
		logger.SafeError("error iterating suggestion rows", "error", err)
		return nil, fmt.Errorf("iterate suggestions: %w", err)
	}

	return values, nil
}
