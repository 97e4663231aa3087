package domain

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is the searchable projection of a catalogue recipe.
// AverageRating is 0 for unrated recipes, never null, so sort
// expressions stay total.
type Recipe struct {
	ID                 uuid.UUID `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Cuisine            string    `json:"cuisine"`
	Difficulty         string    `json:"difficulty"`
	SpiceLevel         int       `json:"spice_level"`
	CookingTimeMinutes *int      `json:"cooking_time_minutes"`
	PrepTimeMinutes    *int      `json:"prep_time_minutes"`
	AverageRating      float64   `json:"average_rating"`
	SaveCount          int       `json:"save_count"`
	Tags               []string  `json:"tags"`
	Ingredients        []string  `json:"ingredients"`
	CreatedAt          time.Time `json:"created_at"`
}

// IngredientRecord is the searchable projection of an ingredient.
type IngredientRecord struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	UsageCount int       `json:"usage_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// UserRecord is the searchable projection of a user profile.
type UserRecord struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Bio         string    `json:"bio"`
	RecipeCount int       `json:"recipe_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// NeutralRelevance is the relevance score reported when no text query is
// present. Returned scores are otherwise in [0,1].
const NeutralRelevance = 1.0

// ScoredRecipe pairs a recipe with its relevance score.
type ScoredRecipe struct {
	Recipe
	Relevance float64 `json:"relevance"`
}

// ScoredIngredient pairs an ingredient with its relevance score.
type ScoredIngredient struct {
	IngredientRecord
	Relevance float64 `json:"relevance"`
}

// ScoredUser pairs a user with its relevance score.
type ScoredUser struct {
	UserRecord
	Relevance float64 `json:"relevance"`
}

// TrendingRecipe is a recipe ranked by saves inside a trend window.
type TrendingRecipe struct {
	Recipe
	WindowSaves int `json:"window_saves"`
}

// TrendingIngredient is an ingredient ranked by usage inside a trend window.
type TrendingIngredient struct {
	Name            string  `json:"name"`
	WindowUses      int     `json:"window_uses"`
	UsagePercentage float64 `json:"usage_percentage"`
}

// TrendingCuisine is a cuisine ranked by recipe count inside a trend window.
type TrendingCuisine struct {
	Cuisine       string  `json:"cuisine"`
	RecipeCount   int     `json:"recipe_count"`
	AverageRating float64 `json:"average_rating"`
}

// PopularQuery is an aggregated entry from the append-only query log.
type PopularQuery struct {
	Query     string `json:"query"`
	Frequency int    `json:"frequency"`
}
