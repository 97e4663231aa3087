package rest

import "mise/domain"

type SearchPayload struct {
	Query  string `json:"query"`
	Type   string `json:"type"`
	Fuzzy  bool   `json:"fuzzy"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

type RecipeSearchPayload struct {
	Query     string               `json:"query"`
	Fuzzy     bool                 `json:"fuzzy"`
	Filters   *RecipeFilterPayload `json:"filters"`
	SortBy    string               `json:"sort_by"`
	SortOrder string               `json:"sort_order"`
	Limit     int                  `json:"limit"`
	Offset    int                  `json:"offset"`
}

// RecipeFilterPayload is the wire shape of the advanced filter block.
// Every field is optional; absent fields contribute no predicate.
type RecipeFilterPayload struct {
	Cuisines           []string `json:"cuisines"`
	Difficulty         string   `json:"difficulty"`
	SpiceLevelMin      *float64 `json:"spice_level_min"`
	SpiceLevelMax      *float64 `json:"spice_level_max"`
	MaxCookingTime     *float64 `json:"max_cooking_time_minutes"`
	MaxPrepTime        *float64 `json:"max_prep_time_minutes"`
	MinRating          *float64 `json:"min_rating"`
	Tags               []string `json:"tags"`
	Ingredients        []string `json:"ingredients"`
	ExcludeIngredients []string `json:"exclude_ingredients"`
}

// toFilterSpec translates the wire filters into constraint values. Tags
// demand every requested tag; ingredient filters match exact names.
func (p *RecipeFilterPayload) toFilterSpec() domain.FilterSpec {
	if p == nil {
		return nil
	}

	spec := domain.FilterSpec{}

	if len(p.Cuisines) > 0 {
		spec["cuisine"] = domain.Set{Values: p.Cuisines}
	}
	if p.Difficulty != "" {
		spec["difficulty"] = domain.Equality{Value: p.Difficulty}
	}
	if p.SpiceLevelMin != nil || p.SpiceLevelMax != nil {
		spec["spiceLevel"] = domain.Range{Min: p.SpiceLevelMin, Max: p.SpiceLevelMax}
	}
	if p.MaxCookingTime != nil {
		spec["maxCookingTime"] = domain.Range{Max: p.MaxCookingTime}
	}
	if p.MaxPrepTime != nil {
		spec["maxPrepTime"] = domain.Range{Max: p.MaxPrepTime}
	}
	if p.MinRating != nil {
		spec["minRating"] = domain.Range{Min: p.MinRating}
	}
	if len(p.Tags) > 0 {
		spec["tags"] = domain.Set{Values: p.Tags, MatchAll: true}
	}
	if len(p.Ingredients) > 0 {
		spec["ingredients"] = domain.Set{Values: p.Ingredients}
	}
	if len(p.ExcludeIngredients) > 0 {
		spec["excludeIngredients"] = domain.Exclusion{Values: p.ExcludeIngredients}
	}

	return spec
}

type SuggestionsResponse struct {
	Suggestions map[string][]string `json:"suggestions"`
	Popular     []PopularQueryEntry `json:"popular,omitempty"`
}

type PopularQueryEntry struct {
	Query     string `json:"query"`
	Frequency int    `json:"frequency"`
}

type PopularQueriesResponse struct {
	Queries []PopularQueryEntry `json:"queries"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
