package mise_db

import (
	"context"
	"errors"
	"fmt"

	"mise/domain"
	"mise/utils/logger"
)

const userDocument = "to_tsvector('english', u.username || ' ' || COALESCE(u.display_name, '') || ' ' || COALESCE(u.bio, ''))"

// SearchUsers searches user profiles. Username and display name play the
// title role for fuzzy gating; bio plays the description role.
func (r *MiseDBRepository) SearchUsers(ctx context.Context, query string, fuzzy bool, limit, offset int) ([]*domain.ScoredUser, int, error) {
	if r == nil || r.pool == nil {
		return nil, 0, errors.New("database connection pool is nil")
	}

	builder := newPredicateBuilder()
	if query != "" {
		q := builder.bind(query)
		if fuzzy {
			builder.addClause(fmt.Sprintf(
				"(similarity(u.username, $%d) > %g OR similarity(COALESCE(u.display_name, ''), $%d) > %g OR similarity(COALESCE(u.bio, ''), $%d) > %g OR %s @@ plainto_tsquery('english', $%d))",
				q, domain.FuzzyTitleThreshold,
				q, domain.FuzzyTitleThreshold,
				q, domain.FuzzyDescriptionThreshold,
				userDocument, q,
			))
		} else {
			sub := builder.bind("%" + query + "%")
			builder.addClause(fmt.Sprintf(
				"(%s @@ plainto_tsquery('english', $%d) OR u.username ILIKE $%d OR u.display_name ILIKE $%d)",
				userDocument, q, sub, sub,
			))
		}
	}

	where := builder.whereClause()

	var total int
	countArgs := builder.snapshotArgs()
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM users u"+where, countArgs...).Scan(&total); err != nil {
		logger.SafeError("failed to count user search results", "error", err)
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	scoreExpr := neutralScoreExpr
	if query != "" {
		q := builder.bind(query)
		rank := fmt.Sprintf("LEAST(ts_rank(%s, plainto_tsquery('english', $%d)), 1.0)", userDocument, q)
		if fuzzy {
			scoreExpr = fmt.Sprintf(
				"GREATEST(similarity(u.username, $%d), similarity(COALESCE(u.display_name, ''), $%d), %s)",
				q, q, rank,
			)
		} else {
			scoreExpr = rank
		}
	}

	limitIdx := builder.bind(limit)
	offsetIdx := builder.bind(offset)

	pageSQL := fmt.Sprintf(
		`SELECT u.id, u.username, COALESCE(u.display_name, ''), COALESCE(u.bio, ''),
		(SELECT COUNT(*) FROM recipes r WHERE r.author_id = u.id), u.created_at, %s AS relevance
	FROM users u%s ORDER BY relevance DESC, u.created_at DESC, u.id DESC LIMIT $%d OFFSET $%d`,
		scoreExpr, where, limitIdx, offsetIdx,
	)

	rows, err := r.pool.Query(ctx, pageSQL, builder.args...)
	if err != nil {
		logger.SafeError("failed to search users", "error", err, "query", query)
		return nil, 0, fmt.Errorf("search users: %w", err)
	}
	defer rows.Close()

	users := []*domain.ScoredUser{}
	for rows.Next() {
		var user domain.ScoredUser
		if err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.DisplayName,
			&user.Bio,
			&user.RecipeCount,
			&user.CreatedAt,
			&user.Relevance,
		); err != nil {
			logger.SafeError("failed to scan user row", "error", err)
			return nil, 0, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		logger.SafeError("error iterating user rows", "error", err)
		return nil, 0, fmt.Errorf("iterate users: %w", err)
	}

	return users, total, nil
}
