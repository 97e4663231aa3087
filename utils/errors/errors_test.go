package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "with cause",
			err:  DatabaseError("query failed", errors.New("connection refused"), nil),
			want: "DATABASE_ERROR: query failed (caused by: connection refused)",
		},
		{
			name: "without cause",
			err:  ValidationError("limit out of range", nil),
			want: "VALIDATION_ERROR: limit out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := TimeoutError("query timed out", cause, nil)

	assert.True(t, errors.Is(err, cause))
}

func TestAppError_HTTPStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"validation maps to 400", ValidationError("bad input", nil), http.StatusBadRequest},
		{"timeout maps to 504", TimeoutError("slow", nil, nil), http.StatusGatewayTimeout},
		{"database maps to 500", DatabaseError("down", nil, nil), http.StatusInternalServerError},
		{"cache maps to 500", CacheError("miss", nil, nil), http.StatusInternalServerError},
		{"unknown maps to 500", UnknownError("what", nil, nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatusCode())
		})
	}
}

func TestAppError_ToHTTPResponse(t *testing.T) {
	err := ValidationError("unknown filter dimension", map[string]interface{}{
		"dimension": "color",
	})

	resp := err.ToHTTPResponse()

	assert.Equal(t, "error", resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Code)
	assert.Equal(t, "unknown filter dimension", resp.Message)
	assert.Equal(t, "color", resp.Context["dimension"])
}

func TestStorageError_Classification(t *testing.T) {
	tests := []struct {
		name       string
		cause      error
		wantCode   ErrorCode
		wantStatus int
	}{
		{
			name:       "deadline exceeded maps to timeout",
			cause:      fmt.Errorf("search recipes: %w", context.DeadlineExceeded),
			wantCode:   ErrCodeTimeout,
			wantStatus: http.StatusGatewayTimeout,
		},
		{
			name:       "statement_timeout cancellation maps to timeout",
			cause:      fmt.Errorf("count recipes: %w", &pgconn.PgError{Code: "57014"}),
			wantCode:   ErrCodeTimeout,
			wantStatus: http.StatusGatewayTimeout,
		},
		{
			name:       "other pg error stays a database error",
			cause:      &pgconn.PgError{Code: "42P01"},
			wantCode:   ErrCodeDatabase,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "plain error stays a database error",
			cause:      errors.New("connection refused"),
			wantCode:   ErrCodeDatabase,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := StorageError("storage failure", tt.cause, nil)
			assert.Equal(t, tt.wantCode, err.Code)
			assert.Equal(t, tt.wantStatus, err.HTTPStatusCode())
			assert.True(t, errors.Is(err, tt.cause))
		})
	}
}

func TestLogError_NilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		LogError(nil, DatabaseError("query failed", nil, nil), "test_op")
	})
}
