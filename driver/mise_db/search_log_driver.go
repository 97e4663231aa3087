package mise_db

import (
	"context"
	"errors"
	"fmt"

	"mise/domain"
	"mise/utils/logger"
	sqlutil "mise/utils/sql"

	"github.com/google/uuid"
)

const maxLoggedQueryBytes = 512

// InsertSearchQuery appends one entry to the query log. The user ID is
// optional; anonymous searches log with a null attribution.
func (r *MiseDBRepository) InsertSearchQuery(ctx context.Context, query string, entityType domain.EntityType, resultCount int, userID *uuid.UUID) error {
	if r == nil || r.pool == nil {
		return errors.New("database connection pool is nil")
	}

	normalized := sqlutil.NormalizeQueryText(sqlutil.ClampText(query, maxLoggedQueryBytes))
	if normalized == "" {
		return nil
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO search_queries (query, entity_type, result_count, user_id) VALUES ($1, $2, $3, $4)`,
		normalized, string(entityType), resultCount, userID,
	)
	if err != nil {
		logger.SafeError("failed to insert search query log entry", "error", err)
		return fmt.Errorf("insert search query: %w", err)
	}

	return nil
}

// FetchPopularQueries returns the most frequent historical queries.
func (r *MiseDBRepository) FetchPopularQueries(ctx context.Context, limit int) ([]*domain.PopularQuery, error) {
	query := `SELECT sq.query, COUNT(*) AS frequency
	FROM search_queries sq
	GROUP BY sq.query
	ORDER BY frequency DESC, sq.query ASC
	LIMIT $1`
	return r.fetchQueryAggregates(ctx, query, limit)
}

// FetchRelatedQueries returns historical queries similar to the partial
// input, ranked by frequency.
func (r *MiseDBRepository) FetchRelatedQueries(ctx context.Context, partial string, threshold float64, limit int) ([]*domain.PopularQuery, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection pool is nil")
	}

	query := `SELECT sq.query, COUNT(*) AS frequency
	FROM search_queries sq
	WHERE similarity(sq.query, $1) > $2
	GROUP BY sq.query
	ORDER BY frequency DESC, sq.query ASC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, sqlutil.NormalizeQueryText(partial), threshold, limit)
	if err != nil {
		logger.SafeError("failed to fetch related queries", "error", err, "partial", partial)
		return nil, fmt.Errorf("fetch related queries: %w", err)
	}
	defer rows.Close()

	return scanPopularQueries(rows)
}

func (r *MiseDBRepository) fetchQueryAggregates(ctx context.Context, query string, limit int) ([]*domain.PopularQuery, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("database connection pool is nil")
	}

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		logger.SafeError("failed to fetch popular queries", "error", err)
		return nil, fmt.Errorf("fetch popular queries: %w", err)
	}
	defer rows.Close()

	return scanPopularQueries(rows)
}

func scanPopularQueries(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]*domain.PopularQuery, error) {
	queries := []*domain.PopularQuery{}
	for rows.Next() {
		var entry domain.PopularQuery
		if err := rows.Scan(&entry.Query, &entry.Frequency); err != nil {
			logger.SafeError("failed to scan popular query row", "error", err)
			return nil, fmt.Errorf("scan popular query: %w", err)
		}
		queries = append(queries, &entry)
	}

	if err := rows.Err(); err != nil {
		logger.SafeError("error iterating popular query rows", "error", err)
		return nil, fmt.Errorf("iterate popular queries: %w", err)
	}

	return queries, nil
}
