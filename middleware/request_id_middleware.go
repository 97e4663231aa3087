package middleware

import (
	"context"

	"mise/utils/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.New().String()
			}

			// Add to response header
			c.Response().Header().Set("X-Request-ID", requestID)

			ctx := context.WithValue(c.Request().Context(), logger.RequestIDKey, requestID)

			// Optional identity header, used only for analytics attribution.
			// Absence is valid; a malformed value is treated as absent.
			if rawUserID := c.Request().Header.Get("X-User-ID"); rawUserID != "" {
				if userID, err := uuid.Parse(rawUserID); err == nil {
					ctx = context.WithValue(ctx, logger.UserIDKey, userID.String())
				}
			}

			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// UserIDFromContext returns the authenticated user's ID when the request
// carried one. The second return is false for anonymous requests.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	raw, ok := ctx.Value(logger.UserIDKey).(string)
	if !ok {
		return uuid.UUID{}, false
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.UUID{}, false
	}
	return userID, true
}
