package rest

import (
	"net/http"

	"mise/di"
	"mise/domain"
	"mise/middleware"
	"mise/utils/logger"
	"mise/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func RestHandleFederatedSearch(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload SearchPayload
		if err := c.Bind(&payload); err != nil {
			logger.Logger.Error("Error binding search payload", "error", err)
			return handleValidationError(c, "Invalid request format", "body")
		}

		if err := validation.ValidateSearchQuery(c.Request().Context(), payload.Query); err != nil {
			return handleError(c, err, "FederatedSearch")
		}

		scope, err := domain.ParseEntityType(payload.Type)
		if err != nil {
			return handleValidationError(c, err.Error(), "type")
		}

		query := domain.SearchQuery{
			Query:  validation.NormalizeQuery(payload.Query),
			Scope:  scope,
			Fuzzy:  payload.Fuzzy,
			Limit:  defaultLimit(payload.Limit),
			Offset: payload.Offset,
		}

		result, err := container.FederatedSearchUsecase.Execute(c.Request().Context(), query, requestUserID(c))
		if err != nil {
			return handleError(c, err, "FederatedSearch")
		}

		c.Response().Header().Set("Cache-Control", "private, max-age=30")
		return c.JSON(http.StatusOK, result)
	}
}

func RestHandleRecipeSearch(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var payload RecipeSearchPayload
		if err := c.Bind(&payload); err != nil {
			logger.Logger.Error("Error binding recipe search payload", "error", err)
			return handleValidationError(c, "Invalid request format", "body")
		}

		if err := validation.ValidateSearchQuery(c.Request().Context(), payload.Query); err != nil {
			return handleError(c, err, "RecipeSearch")
		}

		sortBy, err := domain.ParseSortField(payload.SortBy)
		if err != nil {
			return handleValidationError(c, err.Error(), "sort_by")
		}
		sortOrder, err := domain.ParseSortOrder(payload.SortOrder)
		if err != nil {
			return handleValidationError(c, err.Error(), "sort_order")
		}

		search := domain.RecipeSearchQuery{
			Filters:   payload.Filters.toFilterSpec(),
			SortBy:    sortBy,
			SortOrder: sortOrder,
			Limit:     defaultLimit(payload.Limit),
			Offset:    payload.Offset,
		}

		result, err := container.AdvancedRecipeSearchUsecase.Execute(
			c.Request().Context(),
			validation.NormalizeQuery(payload.Query),
			payload.Fuzzy,
			search,
			requestUserID(c),
		)
		if err != nil {
			return handleError(c, err, "RecipeSearch")
		}

		c.Response().Header().Set("Cache-Control", "private, max-age=30")
		return c.JSON(http.StatusOK, result)
	}
}

func RestHandleSuggestions(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		partial := c.QueryParam("q")
		if err := validation.ValidateSuggestionPartial(c.Request().Context(), partial); err != nil {
			return handleError(c, err, "Suggestions")
		}

		scope, err := domain.ParseEntityType(c.QueryParam("type"))
		if err != nil {
			return handleValidationError(c, err.Error(), "type")
		}

		limit, err := queryInt(c, "limit", 10)
		if err != nil {
			return handleError(c, err, "Suggestions")
		}

		suggestions, err := container.SuggestUsecase.Execute(c.Request().Context(), domain.SuggestionQuery{
			Partial:        validation.NormalizeQuery(partial),
			Scope:          scope,
			Limit:          limit,
			IncludePopular: queryBool(c, "include_popular"),
		})
		if err != nil {
			return handleError(c, err, "Suggestions")
		}

		response := SuggestionsResponse{Suggestions: suggestions.Buckets}
		for _, popular := range suggestions.Popular {
			response.Popular = append(response.Popular, PopularQueryEntry{
				Query:     popular.Query,
				Frequency: popular.Frequency,
			})
		}

		c.Response().Header().Set("Cache-Control", "private, max-age=60")
		return c.JSON(http.StatusOK, response)
	}
}

func RestHandlePopularQueries(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		limit, err := queryInt(c, "limit", 10)
		if err != nil {
			return handleError(c, err, "PopularQueries")
		}

		// Reuse the suggestion cold path: an empty partial yields only
		// the popularity bucket.
		suggestions, err := container.SuggestUsecase.Execute(c.Request().Context(), domain.SuggestionQuery{
			Partial:        "",
			Scope:          domain.EntityAll,
			Limit:          limit,
			IncludePopular: true,
		})
		if err != nil {
			return handleError(c, err, "PopularQueries")
		}

		response := PopularQueriesResponse{Queries: []PopularQueryEntry{}}
		for _, popular := range suggestions.Popular {
			response.Queries = append(response.Queries, PopularQueryEntry{
				Query:     popular.Query,
				Frequency: popular.Frequency,
			})
		}

		c.Response().Header().Set("Cache-Control", "private, max-age=60")
		return c.JSON(http.StatusOK, response)
	}
}

func defaultLimit(limit int) int {
	if limit == 0 {
		return 20
	}
	return limit
}

func requestUserID(c echo.Context) *uuid.UUID {
	if userID, ok := middleware.UserIDFromContext(c.Request().Context()); ok {
		return &userID
	}
	return nil
}
