package mise_db

import (
	"context"
	"fmt"
	"time"

	"mise/config"
	"mise/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// InitDBConnection opens the pgx connection pool used by all search
// queries. A statement timeout bounds long-running fuzzy comparisons at
// the storage layer; a tripped timeout surfaces as a query error, never
// as a silently-empty result.
func InitDBConnection(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(buildConnectionString(cfg))
	if err != nil {
		logger.SafeError("failed to parse database config", "error", err)
		return nil, fmt.Errorf("parse database config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.Database.MaxConns)
	poolConfig.MinConns = int32(cfg.Database.MinConns)
	poolConfig.MaxConnLifetime = cfg.Database.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.SafeError("failed to create connection pool", "error", err)
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		logger.SafeError("failed to ping database", "error", err)
		return nil, fmt.Errorf("ping database: %w", err)
	}

	logger.SafeInfo("connected to database", "database", cfg.Database.Name)

	return pool, nil
}

func buildConnectionString(cfg *config.Config) string {
	statementTimeoutMs := int(cfg.Database.QueryTimeout / time.Millisecond)
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s options='-c statement_timeout=%d'",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		statementTimeoutMs,
	)
}
