package rest

import (
	"strings"

	"mise/config"
	"mise/di"
	middleware_custom "mise/middleware"
	"mise/utils/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	// Request ID first so every later layer can tag its logs.
	e.Use(middleware_custom.RequestIDMiddleware())

	e.Use(middleware.Recover())

	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'self'",
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:80"},
		AllowMethods: []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "Cache-Control", "X-Requested-With", "X-User-ID"},
		MaxAge:       86400,
	}))

	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: cfg.Server.ReadTimeout,
	}))

	e.Use(middleware_custom.LoggingMiddleware(logger.Logger))

	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			return strings.Contains(c.Path(), "/health") || strings.Contains(c.Path(), "/metrics")
		},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/v1")
	v1.GET("/health", RestHandleHealth(container))

	v1.POST("/search", RestHandleFederatedSearch(container))
	v1.GET("/search/suggestions", RestHandleSuggestions(container))
	v1.GET("/search/popular", RestHandlePopularQueries(container))

	v1.POST("/recipes/search", RestHandleRecipeSearch(container))

	v1.GET("/trending", RestHandleTrending(container))
	v1.GET("/trending/ingredients", RestHandleTrendingIngredients(container))
	v1.GET("/trending/cuisines", RestHandleTrendingCuisines(container))
}
