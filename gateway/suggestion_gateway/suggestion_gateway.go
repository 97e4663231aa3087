package suggestion_gateway

import (
	"context"

	"mise/domain"
	"mise/driver/mise_db"
	"mise/utils/errors"
	"mise/utils/logger"
)

// SuggestionGateway implements the suggestion and query-log ports.
type SuggestionGateway struct {
	repository *mise_db.MiseDBRepository
}

func NewSuggestionGateway(repository *mise_db.MiseDBRepository) *SuggestionGateway {
	return &SuggestionGateway{repository: repository}
}

func (g *SuggestionGateway) SuggestRecipeTitles(ctx context.Context, partial string, threshold float64, limit int) ([]string, error) {
	values, err := g.repository.SuggestRecipeTitles(ctx, partial, threshold, limit)
	if err != nil {
		return nil, g.wrap(err, "SuggestRecipeTitles", partial)
	}
	return values, nil
}

func (g *SuggestionGateway) SuggestIngredientNames(ctx context.Context, partial string, threshold float64, limit int) ([]string, error) {
	values, err := g.repository.SuggestIngredientNames(ctx, partial, threshold, limit)
	if err != nil {
		return nil, g.wrap(err, "SuggestIngredientNames", partial)
	}
	return values, nil
}

func (g *SuggestionGateway) SuggestCuisines(ctx context.Context, partial string, threshold float64, limit int) ([]string, error) {
	values, err := g.repository.SuggestCuisines(ctx, partial, threshold, limit)
	if err != nil {
		return nil, g.wrap(err, "SuggestCuisines", partial)
	}
	return values, nil
}

func (g *SuggestionGateway) SuggestTags(ctx context.Context, partial string, threshold float64, limit int) ([]string, error) {
	values, err := g.repository.SuggestTags(ctx, partial, threshold, limit)
	if err != nil {
		return nil, g.wrap(err, "SuggestTags", partial)
	}
	return values, nil
}

func (g *SuggestionGateway) FetchPopularQueries(ctx context.Context, limit int) ([]*domain.PopularQuery, error) {
	queries, err := g.repository.FetchPopularQueries(ctx, limit)
	if err != nil {
		return nil, g.wrap(err, "FetchPopularQueries", "")
	}
	return queries, nil
}

func (g *SuggestionGateway) FetchRelatedQueries(ctx context.Context, partial string, threshold float64, limit int) ([]*domain.PopularQuery, error) {
	queries, err := g.repository.FetchRelatedQueries(ctx, partial, threshold, limit)
	if err != nil {
		return nil, g.wrap(err, "FetchRelatedQueries", partial)
	}
	return queries, nil
}

func (g *SuggestionGateway) wrap(err error, method, partial string) error {
	dbErr := errors.StorageError("suggestion query failed", err, map[string]interface{}{
		"gateway": "SuggestionGateway",
		"method":  method,
		"partial": partial,
	})
	errors.LogError(logger.Logger, dbErr, "suggest")
	return dbErr
}
