package suggest_usecase

import (
	"context"

	"mise/domain"
	"mise/port/suggestion_port"
	"mise/utils/logger"
)

// Bucket names in the suggestion response.
const (
	BucketRecipes     = "recipes"
	BucketIngredients = "ingredients"
	BucketCuisines    = "cuisines"
	BucketTags        = "tags"
)

// Suggestions maps bucket names to ranked candidates. Buckets for types
// that were not requested are absent from the map, not empty. Popular is
// nil when the caller opted out of the popularity bucket.
type Suggestions struct {
	Buckets map[string][]string
	Popular []*domain.PopularQuery
}

// SuggestUsecase produces autocomplete candidates per entity type, with
// a historical-popularity fallback bucket.
type SuggestUsecase struct {
	suggestionPort suggestion_port.SuggestionPort
	queryLogPort   suggestion_port.QueryLogPort
}

func NewSuggestUsecase(suggestionPort suggestion_port.SuggestionPort, queryLogPort suggestion_port.QueryLogPort) *SuggestUsecase {
	return &SuggestUsecase{suggestionPort: suggestionPort, queryLogPort: queryLogPort}
}

// Execute builds the requested buckets. A partial query below the
// minimum length yields only the popularity bucket; no per-type
// candidate generation runs at all.
func (u *SuggestUsecase) Execute(ctx context.Context, query domain.SuggestionQuery) (*Suggestions, error) {
	limit := query.Limit
	if limit < 1 {
		limit = 10
	}
	if limit > domain.MaxSuggestionLimit {
		limit = domain.MaxSuggestionLimit
	}

	suggestions := &Suggestions{Buckets: map[string][]string{}}

	if len(query.Partial) < domain.MinSuggestionQueryLen {
		if query.IncludePopular {
			popular, err := u.queryLogPort.FetchPopularQueries(ctx, limit)
			if err != nil {
				return nil, err
			}
			suggestions.Popular = popular
		}
		return suggestions, nil
	}

	if query.Scope == domain.EntityAll || query.Scope == domain.EntityRecipes {
		recipes, err := u.suggestionPort.SuggestRecipeTitles(ctx, query.Partial, domain.SuggestRecipeThreshold, limit)
		if err != nil {
			return nil, err
		}
		suggestions.Buckets[BucketRecipes] = recipes

		cuisines, err := u.suggestionPort.SuggestCuisines(ctx, query.Partial, domain.SuggestCuisineThreshold, limit)
		if err != nil {
			return nil, err
		}
		suggestions.Buckets[BucketCuisines] = cuisines

		tags, err := u.suggestionPort.SuggestTags(ctx, query.Partial, domain.SuggestTagThreshold, limit)
		if err != nil {
			return nil, err
		}
		suggestions.Buckets[BucketTags] = tags
	}

	if query.Scope == domain.EntityAll || query.Scope == domain.EntityIngredients {
		ingredients, err := u.suggestionPort.SuggestIngredientNames(ctx, query.Partial, domain.SuggestIngredientThreshold, limit)
		if err != nil {
			return nil, err
		}
		suggestions.Buckets[BucketIngredients] = ingredients
	}

	if query.IncludePopular {
		popular, err := u.queryLogPort.FetchRelatedQueries(ctx, query.Partial, domain.SuggestPopularThreshold, limit)
		if err != nil {
			return nil, err
		}
		suggestions.Popular = popular
	}

	logger.SafeInfo("suggestions computed",
		"partial", query.Partial,
		"scope", string(query.Scope),
		"buckets", len(suggestions.Buckets))

	return suggestions, nil
}
