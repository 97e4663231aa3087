package mise_db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBPool is the subset of pgxpool.Pool the repository uses. Keeping it
// an interface lets driver tests substitute a pgxmock pool.
type DBPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// MiseDBRepository executes the compiled search queries against PostgreSQL.
type MiseDBRepository struct {
	pool DBPool
}

func NewMiseDBRepository(pool DBPool) *MiseDBRepository {
	if pool == nil {
		return nil
	}
	return &MiseDBRepository{pool: pool}
}

// CheckHealth verifies the database is reachable.
func (r *MiseDBRepository) CheckHealth(ctx context.Context) error {
	var one int
	return r.pool.QueryRow(ctx, "SELECT 1").Scan(&one)
}
