package mise_db

import (
	"context"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func suggestionRows(values ...string) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"value", "sim"})
	sim := 0.9
	for _, v := range values {
		rows.AddRow(v, sim)
		sim -= 0.1
	}
	return rows
}

func TestSuggestRecipeTitles(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &MiseDBRepository{pool: mock}

	mock.ExpectQuery(`SELECT DISTINCT r\.title, similarity\(r\.title, \$1\)`).
		WithArgs("chick", 0.3, "%chick%", 10).
		WillReturnRows(suggestionRows("Chicken Tacos", "Chickpea Curry"))

	titles, err := repo.SuggestRecipeTitles(context.Background(), "chick", 0.3, 10)

	require.NoError(t, err)
	assert.Equal(t, []string{"Chicken Tacos", "Chickpea Curry"}, titles)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSuggestIngredientNames(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &MiseDBRepository{pool: mock}

	mock.ExpectQuery(`SELECT DISTINCT i\.name, similarity\(i\.name, \$1\)`).
		WithArgs("tom", 0.4, "%tom%", 5).
		WillReturnRows(suggestionRows("tomato"))

	names, err := repo.SuggestIngredientNames(context.Background(), "tom", 0.4, 5)

	require.NoError(t, err)
	assert.Equal(t, []string{"tomato"}, names)
}

func TestSuggestCuisines_ExcludesEmptyCuisine(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &MiseDBRepository{pool: mock}

	mock.ExpectQuery(`r\.cuisine <> ''`).
		WithArgs("ital", 0.4, "%ital%", 5).
		WillReturnRows(suggestionRows("italian"))

	cuisines, err := repo.SuggestCuisines(context.Background(), "ital", 0.4, 5)

	require.NoError(t, err)
	assert.Equal(t, []string{"italian"}, cuisines)
}

func TestSuggestTags_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &MiseDBRepository{pool: mock}

	mock.ExpectQuery(`SELECT DISTINCT rt\.tag`).
		WithArgs("xyz", 0.4, "%xyz%", 5).
		WillReturnRows(suggestionRows())

	tags, err := repo.SuggestTags(context.Background(), "xyz", 0.4, 5)

	require.NoError(t, err)
	assert.Empty(t, tags)
}

func TestSuggestValues_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &MiseDBRepository{pool: mock}

	mock.ExpectQuery(`SELECT DISTINCT r\.title`).
		WillReturnError(assert.AnError)

	_, err = repo.SuggestRecipeTitles(context.Background(), "chick", 0.3, 10)
	assert.Error(t, err)
}
