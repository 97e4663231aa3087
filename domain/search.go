package domain

import (
	"fmt"
	"strings"
)

// EntityType scopes a search to one record family, or all of them.
type EntityType string

const (
	EntityAll         EntityType = "all"
	EntityRecipes     EntityType = "recipes"
	EntityIngredients EntityType = "ingredients"
	EntityUsers       EntityType = "users"
)

// ParseEntityType validates a raw type parameter. An empty value means "all".
func ParseEntityType(raw string) (EntityType, error) {
	switch EntityType(strings.ToLower(strings.TrimSpace(raw))) {
	case "", EntityAll:
		return EntityAll, nil
	case EntityRecipes:
		return EntityRecipes, nil
	case EntityIngredients:
		return EntityIngredients, nil
	case EntityUsers:
		return EntityUsers, nil
	default:
		return "", fmt.Errorf("unsupported entity type: %s", raw)
	}
}

// SortField names the primary sort key of a recipe search.
type SortField string

const (
	SortRelevance   SortField = "relevance"
	SortRating      SortField = "rating"
	SortCookingTime SortField = "cookingTime"
	SortPrepTime    SortField = "prepTime"
	SortRecent      SortField = "recent"
	SortPopular     SortField = "popular"
)

// ParseSortField validates a raw sortBy parameter. Empty defaults to relevance.
func ParseSortField(raw string) (SortField, error) {
	switch SortField(strings.TrimSpace(raw)) {
	case "", SortRelevance:
		return SortRelevance, nil
	case SortRating:
		return SortRating, nil
	case SortCookingTime:
		return SortCookingTime, nil
	case SortPrepTime:
		return SortPrepTime, nil
	case SortRecent:
		return SortRecent, nil
	case SortPopular:
		return SortPopular, nil
	default:
		return "", fmt.Errorf("unsupported sort field: %s", raw)
	}
}

// SortOrder is the sort direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder validates a raw sort order. Empty means "use the field default".
func ParseSortOrder(raw string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(raw))) {
	case "":
		return "", nil
	case SortAsc:
		return SortAsc, nil
	case SortDesc:
		return SortDesc, nil
	default:
		return "", fmt.Errorf("unsupported sort order: %s", raw)
	}
}

// Fuzzy-match thresholds. Title matches are gated more permissively than
// description matches.
const (
	FuzzyTitleThreshold       = 0.3
	FuzzyDescriptionThreshold = 0.2

	SuggestRecipeThreshold     = 0.3
	SuggestIngredientThreshold = 0.4
	SuggestCuisineThreshold    = 0.4
	SuggestTagThreshold        = 0.4
	SuggestPopularThreshold    = 0.3

	// MinSuggestionQueryLen is the partial-query length below which only
	// the popularity bucket is returned.
	MinSuggestionQueryLen = 2

	// MaxSuggestionLimit caps autocomplete candidates per bucket.
	MaxSuggestionLimit = 20

	// PerTypeSearchCap bounds each bucket when searching all entity types,
	// regardless of the requested limit. The advertised limit is therefore
	// not honored uniformly in "all" scope; this is deliberate.
	PerTypeSearchCap = 10
)

// Trend window bounds in days.
const (
	MaxTrendWindowDays           = 30
	MaxIngredientTrendWindowDays = 365
	DefaultTrendWindowDays       = 7
)

// SearchQuery is the validated input of a federated search.
type SearchQuery struct {
	Query  string
	Scope  EntityType
	Fuzzy  bool
	Limit  int
	Offset int
}

// RecipeSearchQuery is the validated input of an advanced recipe search.
type RecipeSearchQuery struct {
	Filters   FilterSpec
	SortBy    SortField
	SortOrder SortOrder
	Limit     int
	Offset    int
}

// SuggestionQuery is the validated input of an autocomplete request.
type SuggestionQuery struct {
	Partial        string
	Scope          EntityType
	Limit          int
	IncludePopular bool
}
