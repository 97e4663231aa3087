package search_gateway

import (
	"context"
	"testing"

	"mise/driver/mise_db"
	"mise/utils/errors"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchRecipes_StatementTimeoutMapsTo504(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	gateway := NewSearchGateway(mise_db.NewMiseDBRepository(mock))

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM recipes r`).
		WithArgs("tacos", "%tacos%").
		WillReturnError(&pgconn.PgError{Code: "57014", Message: "canceling statement due to statement timeout"})

	_, _, err = gateway.SearchRecipes(context.Background(), "tacos", false, 20, 0)

	require.Error(t, err)
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrCodeTimeout, appErr.Code)
	assert.Equal(t, 504, appErr.HTTPStatusCode())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchRecipes_DeadlineExceededMapsToTimeout(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	gateway := NewSearchGateway(mise_db.NewMiseDBRepository(mock))

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM recipes r`).
		WithArgs("tacos", "%tacos%").
		WillReturnError(context.DeadlineExceeded)

	_, _, err = gateway.SearchRecipes(context.Background(), "tacos", false, 20, 0)

	require.Error(t, err)
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrCodeTimeout, appErr.Code)
}

func TestSearchRecipes_QueryErrorMapsToDatabaseError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	gateway := NewSearchGateway(mise_db.NewMiseDBRepository(mock))

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM recipes r`).
		WithArgs("tacos", "%tacos%").
		WillReturnError(&pgconn.PgError{Code: "42P01", Message: "relation does not exist"})

	_, _, err = gateway.SearchRecipes(context.Background(), "tacos", false, 20, 0)

	require.Error(t, err)
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrCodeDatabase, appErr.Code)
	assert.Equal(t, 500, appErr.HTTPStatusCode())
}
