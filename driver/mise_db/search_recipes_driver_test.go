package mise_db

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"mise/domain"
	"mise/utils/logger"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Initialize logger for tests
	var buf bytes.Buffer
	testLogger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	logger.Logger = testLogger
}

func recipeRows(count int) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{
		"id", "title", "description", "cuisine", "difficulty", "spice_level",
		"cooking_time_minutes", "prep_time_minutes", "average_rating", "save_count",
		"created_at", "tags", "ingredients", "relevance",
	})
	for i := 0; i < count; i++ {
		cookingTime := 30
		rows.AddRow(
			uuid.New(), "Spicy Chicken Tacos", "Crispy tacos with chipotle chicken", "mexican", "easy", 3,
			&cookingTime, nil, 4.5, 12,
			time.Now().Add(-time.Duration(i)*time.Hour), []string{"quick", "spicy"}, []string{"chicken", "tortilla"}, 0.82,
		)
	}
	return rows
}

func TestSearchRecipesAdvanced_Success(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &MiseDBRepository{pool: mock}
	minRating := 4.0

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM recipes r`).
		WithArgs([]string{"mexican"}, minRating).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(`SELECT r\.id, r\.title`).
		WithArgs([]string{"mexican"}, minRating, 20, 0).
		WillReturnRows(recipeRows(1))

	recipes, total, err := repo.SearchRecipesAdvanced(context.Background(), "", false, domain.RecipeSearchQuery{
		Filters: domain.FilterSpec{
			"cuisine":   domain.Set{Values: []string{"mexican"}},
			"minRating": domain.Range{Min: &minRating},
		},
		SortBy: domain.SortRating,
		Limit:  20,
		Offset: 0,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Spicy Chicken Tacos", recipes[0].Title)
	assert.Equal(t, 4.5, recipes[0].AverageRating)
	assert.Contains(t, recipes[0].Tags, "spicy")
	require.NotNil(t, recipes[0].CookingTimeMinutes)
	assert.Equal(t, 30, *recipes[0].CookingTimeMinutes)
	assert.Nil(t, recipes[0].PrepTimeMinutes)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchRecipesAdvanced_FuzzyQueryBindsSimilarity(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &MiseDBRepository{pool: mock}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM recipes r WHERE \(similarity\(r\.title, \$1\) > 0\.3`).
		WithArgs("chiken tacos").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(`GREATEST\(similarity\(r\.title, \$2\)`).
		WithArgs("chiken tacos", "chiken tacos", 10, 0).
		WillReturnRows(recipeRows(1))

	recipes, total, err := repo.SearchRecipes(context.Background(), "chiken tacos", true, 10, 0)

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Spicy Chicken Tacos", recipes[0].Title)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchRecipesAdvanced_ExactQueryMisspellingReturnsEmpty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &MiseDBRepository{pool: mock}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM recipes r`).
		WithArgs("chiken tacos", "%chiken tacos%").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectQuery(`SELECT r\.id, r\.title`).
		WithArgs("chiken tacos", "%chiken tacos%", "chiken tacos", 10, 0).
		WillReturnRows(recipeRows(0))

	recipes, total, err := repo.SearchRecipes(context.Background(), "chiken tacos", false, 10, 0)

	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Empty(t, recipes, "empty result set is a success outcome")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchRecipesAdvanced_CountQueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &MiseDBRepository{pool: mock}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM recipes r`).
		WillReturnError(assert.AnError)

	_, _, err = repo.SearchRecipes(context.Background(), "", false, 20, 0)
	assert.Error(t, err)
}

func TestSearchRecipesAdvanced_UnknownDimensionFailsBeforeStorage(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &MiseDBRepository{pool: mock}

	_, _, err = repo.SearchRecipesAdvanced(context.Background(), "", false, domain.RecipeSearchQuery{
		Filters: domain.FilterSpec{"color": domain.Equality{Value: "red"}},
		Limit:   20,
	})

	require.Error(t, err)
	// No query was ever issued.
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchRecipesAdvanced_NilPool(t *testing.T) {
	repo := NewMiseDBRepository(nil)
	assert.Nil(t, repo, "repository should be nil when pool is nil")

	var nilRepo *MiseDBRepository
	_, _, err := nilRepo.SearchRecipes(context.Background(), "tacos", false, 10, 0)
	assert.Error(t, err)
}
