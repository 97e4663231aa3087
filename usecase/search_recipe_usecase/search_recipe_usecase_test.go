package search_recipe_usecase

import (
	"context"
	"testing"

	"mise/domain"
	"mise/port/search_analytics_port"
	"mise/utils/errors"
	"mise/utils/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitLogger()
}

type stubRecipeSearch struct {
	results    []*domain.ScoredRecipe
	total      int
	err        error
	lastSearch domain.RecipeSearchQuery
	calls      int
}

func (s *stubRecipeSearch) SearchRecipes(ctx context.Context, query string, fuzzy bool, limit, offset int) ([]*domain.ScoredRecipe, int, error) {
	return s.results, s.total, s.err
}

func (s *stubRecipeSearch) SearchRecipesAdvanced(ctx context.Context, query string, fuzzy bool, search domain.RecipeSearchQuery) ([]*domain.ScoredRecipe, int, error) {
	s.calls++
	s.lastSearch = search
	return s.results, s.total, s.err
}

type recordingEnqueuer struct {
	events []search_analytics_port.Event
}

func (r *recordingEnqueuer) Enqueue(event search_analytics_port.Event) {
	r.events = append(r.events, event)
}

func TestAdvancedRecipeSearchUsecase_Execute_Success(t *testing.T) {
	search := &stubRecipeSearch{
		results: []*domain.ScoredRecipe{
			{Recipe: domain.Recipe{ID: uuid.New(), Title: "Chicken Tikka"}, Relevance: 0.9},
		},
		total: 1,
	}
	analytics := &recordingEnqueuer{}
	usecase := NewAdvancedRecipeSearchUsecase(search, analytics)

	query := domain.RecipeSearchQuery{
		Filters: domain.FilterSpec{
			"cuisine":   domain.Set{Values: []string{"indian"}},
			"minRating": domain.Range{Min: float64Ptr(4.0)},
		},
		SortBy: domain.SortRelevance,
		Limit:  20,
		Offset: 0,
	}

	result, err := usecase.Execute(context.Background(), "tikka", false, query, nil)

	require.NoError(t, err)
	require.Len(t, result.Recipes, 1)
	assert.Equal(t, "Chicken Tikka", result.Recipes[0].Title)
	assert.Equal(t, 1, result.Page.Total)
	assert.False(t, result.Page.HasMore)
	require.Len(t, analytics.events, 1)
	assert.Equal(t, "tikka", analytics.events[0].Query)
	assert.Equal(t, 1, analytics.events[0].ResultCount)
}

func TestAdvancedRecipeSearchUsecase_Execute_UnknownDimensionRejected(t *testing.T) {
	search := &stubRecipeSearch{}
	usecase := NewAdvancedRecipeSearchUsecase(search, nil)

	query := domain.RecipeSearchQuery{
		Filters: domain.FilterSpec{
			"caloriesBelow": domain.Range{Max: float64Ptr(500)},
		},
		Limit: 20,
	}

	_, err := usecase.Execute(context.Background(), "", false, query, nil)

	require.Error(t, err)
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrCodeValidation, appErr.Code)

	// Validation failures never reach storage.
	assert.Equal(t, 0, search.calls)
}

func TestAdvancedRecipeSearchUsecase_Execute_PaginationRejectedBeforeFilters(t *testing.T) {
	search := &stubRecipeSearch{}
	usecase := NewAdvancedRecipeSearchUsecase(search, nil)

	query := domain.RecipeSearchQuery{
		Filters: domain.FilterSpec{
			"bogus": domain.Equality{Value: "x"},
		},
		Limit: 0,
	}

	_, err := usecase.Execute(context.Background(), "", false, query, nil)

	require.Error(t, err)
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrCodeValidation, appErr.Code)
	assert.Equal(t, 0, search.calls)
}

func TestAdvancedRecipeSearchUsecase_Execute_StorageError(t *testing.T) {
	search := &stubRecipeSearch{err: errors.DatabaseError("query failed", nil, nil)}
	analytics := &recordingEnqueuer{}
	usecase := NewAdvancedRecipeSearchUsecase(search, analytics)

	result, err := usecase.Execute(context.Background(), "soup", true, domain.RecipeSearchQuery{Limit: 10}, nil)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Empty(t, analytics.events)
}

func TestAdvancedRecipeSearchUsecase_Execute_EmptyQueryNotLogged(t *testing.T) {
	search := &stubRecipeSearch{total: 12}
	analytics := &recordingEnqueuer{}
	usecase := NewAdvancedRecipeSearchUsecase(search, analytics)

	query := domain.RecipeSearchQuery{
		Filters: domain.FilterSpec{
			"cuisine": domain.Set{Values: []string{"thai"}},
		},
		Limit: 10,
	}

	_, err := usecase.Execute(context.Background(), "", false, query, nil)

	require.NoError(t, err)
	assert.Empty(t, analytics.events)
}

func float64Ptr(v float64) *float64 {
	return &v
}
