package http

import (
	"net/http"

	"github.com/jmehdipour/radius-admin/internal/metrics"
	"github.com/labstack/echo/v4"
)

// The admin UI expects HTTP 200 for every /api action and reads the success
// flag out of the body, so failures are flattened here instead of mapped to
// status codes.

func ok(c echo.Context, action string, body map[string]any) error {
	metrics.APIActionsTotal.WithLabelValues(action, "ok").Inc()
	body["success"] = true
	return c.JSON(http.StatusOK, body)
}

func fail(c echo.Context, action string, err error) error {
	metrics.APIActionsTotal.WithLabelValues(action, "error").Inc()
	return c.JSON(http.StatusOK, map[string]any{
		"success": false,
		"message": err.Error(),
	})
}
