package rest

import (
	"net/http"

	"mise/di"

	"github.com/labstack/echo/v4"
)

func RestHandleTrending(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		days, err := queryInt(c, "days", 0)
		if err != nil {
			return handleError(c, err, "Trending")
		}
		limit, err := queryInt(c, "limit", 0)
		if err != nil {
			return handleError(c, err, "Trending")
		}

		result, err := container.TrendingUsecase.Execute(c.Request().Context(), days, limit)
		if err != nil {
			return handleError(c, err, "Trending")
		}

		c.Response().Header().Set("Cache-Control", "public, max-age=300")
		return c.JSON(http.StatusOK, result)
	}
}

func RestHandleTrendingIngredients(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		days, err := queryInt(c, "days", 0)
		if err != nil {
			return handleError(c, err, "TrendingIngredients")
		}
		limit, err := queryInt(c, "limit", 0)
		if err != nil {
			return handleError(c, err, "TrendingIngredients")
		}

		ingredients, err := container.TrendingUsecase.ExecuteIngredients(c.Request().Context(), days, limit)
		if err != nil {
			return handleError(c, err, "TrendingIngredients")
		}

		c.Response().Header().Set("Cache-Control", "public, max-age=300")
		return c.JSON(http.StatusOK, map[string]interface{}{"ingredients": ingredients})
	}
}

func RestHandleTrendingCuisines(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		days, err := queryInt(c, "days", 0)
		if err != nil {
			return handleError(c, err, "TrendingCuisines")
		}
		limit, err := queryInt(c, "limit", 0)
		if err != nil {
			return handleError(c, err, "TrendingCuisines")
		}

		cuisines, err := container.TrendingUsecase.ExecuteCuisines(c.Request().Context(), days, limit)
		if err != nil {
			return handleError(c, err, "TrendingCuisines")
		}

		c.Response().Header().Set("Cache-Control", "public, max-age=300")
		return c.JSON(http.StatusOK, map[string]interface{}{"cuisines": cuisines})
	}
}

func RestHandleHealth(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		if container.MiseDBRepository != nil {
			if err := container.MiseDBRepository.CheckHealth(c.Request().Context()); err != nil {
				return c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "degraded"})
			}
		}
		return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
	}
}
