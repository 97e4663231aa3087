package mise_db

import (
	"context"
	"errors"
	"fmt"

	"mise/domain"
	"mise/utils/logger"
)

const ingredientDocument = "to_tsvector('english', i.name)"

// SearchIngredients searches ingredient names with the same exact/fuzzy
// semantics as recipes. Ties rank more-used ingredients first.
func (r *MiseDBRepository) SearchIngredients(ctx context.Context, query string, fuzzy bool, limit, offset int) ([]*domain.ScoredIngredient, int, error) {
	if r == nil || r.pool == nil {
		return nil, 0, errors.New("database connection pool is nil")
	}

	builder := newPredicateBuilder()
	if query != "" {
		q := builder.bind(query)
		if fuzzy {
			builder.addClause(fmt.Sprintf(
				"(similarity(i.name, $%d) > %g OR %s @@ plainto_tsquery('english', $%d))",
				q, domain.FuzzyTitleThreshold, ingredientDocument, q,
			))
		} else {
			sub := builder.bind("%" + query + "%")
			builder.addClause(fmt.Sprintf(
				"(%s @@ plainto_tsquery('english', $%d) OR i.name ILIKE $%d)",
				ingredientDocument, q, sub,
			))
		}
	}

	where := builder.whereClause()

	var total int
	countArgs := builder.snapshotArgs()
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM ingredients i"+where, countArgs...).Scan(&total); err != nil {
		logger.SafeError("failed to count ingredient search results", "error", err)
		return nil, 0, fmt.Errorf("count ingredients: %w", err)
	}

	scoreExpr := neutralScoreExpr
	if query != "" {
		q := builder.bind(query)
		rank := fmt.Sprintf("LEAST(ts_rank(%s, plainto_tsquery('english', $%d)), 1.0)", ingredientDocument, q)
		if fuzzy {
			scoreExpr = fmt.Sprintf("GREATEST(similarity(i.name, $%d), %s)", q, rank)
		} else {
			scoreExpr = rank
		}
	}

	limitIdx := builder.bind(limit)
	offsetIdx := builder.bind(offset)

	pageSQL := fmt.Sprintf(
		`SELECT i.id, i.name, COALESCE(i.category, ''), i.usage_count, i.created_at, %s AS relevance
	FROM ingredients i%s ORDER BY relevance DESC, i.usage_count DESC, i.name ASC LIMIT $%d OFFSET $%d`,
		scoreExpr, where, limitIdx, offsetIdx,
	)

	rows, err := r.pool.Query(ctx, pageSQL, builder.args...)
	if err != nil {
		logger.SafeError("failed to search ingredients", "error", err, "query", query)
		return nil, 0, fmt.Errorf("search ingredients: %w", err)
	}
	defer rows.Close()

	ingredients := []*domain.ScoredIngredient{}
	for rows.Next() {
		var ingredient domain.ScoredIngredient
		if err := rows.Scan(
			&ingredient.ID,
			&ingredient.Name,
			&ingredient.Category,
			&ingredient.UsageCount,
			&ingredient.CreatedAt,
			&ingredient.Relevance,
		); err != nil {
			logger.SafeError("failed to scan ingredient row", "error", err)
			return nil, 0, fmt.Errorf("scan ingredient: %w", err)
		}
		ingredients = append(ingredients, &ingredient)
	}

	if err := rows.Err(); err != nil {
		logger.SafeError("error iterating ingredient rows", "error", err)
		return nil, 0, fmt.Errorf("iterate ingredients: %w", err)
	}

	return ingredients, total, nil
}
