package rest

import (
	"net/http"
	"strconv"

	"mise/utils/errors"
	"mise/utils/logger"
	"mise/validation"

	"github.com/labstack/echo/v4"
)

// handleError converts errors to HTTP responses through the AppError
// taxonomy and logs them with request context.
func handleError(c echo.Context, err error, operation string) error {
	if verr, ok := validation.AsValidationError(err); ok {
		logger.Logger.Error("REST validation error",
			"error", verr.Error(),
			"type", verr.Type,
			"path", c.Request().URL.Path,
		)
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"code":    string(errors.ErrCodeValidation),
			"message": verr.Error(),
			"errors":  verr.Errors,
		})
	}

	appErr, ok := err.(*errors.AppError)
	if !ok {
		appErr = errors.UnknownError("internal server error", err, map[string]interface{}{
			"operation": operation,
		})
	}

	logger.Logger.Error("REST handler error",
		"error", appErr.Error(),
		"error_code", string(appErr.Code),
		"operation", operation,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
	)

	return c.JSON(appErr.HTTPStatusCode(), appErr.ToHTTPResponse())
}

// handleValidationError responds 400 for malformed input detected at
// the handler boundary.
func handleValidationError(c echo.Context, message, field string) error {
	validationErr := errors.ValidationError(message, map[string]interface{}{
		"field": field,
		"path":  c.Request().URL.Path,
	})

	logger.Logger.Error("REST validation error",
		"error", validationErr.Error(),
		"field", field,
		"path", c.Request().URL.Path,
	)

	return c.JSON(validationErr.HTTPStatusCode(), validationErr.ToHTTPResponse())
}

// queryInt parses an optional integer query parameter, returning the
// fallback when absent and an error when present but malformed.
func queryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.ValidationError(name+" must be an integer", map[string]interface{}{
			"field": name,
			"value": raw,
		})
	}
	return value, nil
}

func queryBool(c echo.Context, name string) bool {
	switch c.QueryParam(name) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
