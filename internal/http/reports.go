package http

import (
	"strconv"
	"strings"

	"github.com/jmehdipour/radius-admin/internal/repository"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// listSessionsHandler serves accounting sessions from the ClickHouse radacct
// mirror (real session data, unlike the simulated dashboard count).
func listSessionsHandler(sessions repository.SessionsRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		limit := 50
		offset := 0
		if v := c.QueryParam("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 1000 {
				limit = n
			}
		}
		if v := c.QueryParam("offset"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n >= 0 {
				offset = n
			}
		}

		username := strings.TrimSpace(c.QueryParam("username"))
		nasIP := strings.TrimSpace(c.QueryParam("nas_ip"))

		rows, err := sessions.List(c.Request().Context(), username, nasIP, limit, offset)
		if err != nil {
			log.Errorf("clickhouse sessions list failed: %v", err)
			return fail(c, "reports_sessions", err)
		}

		return ok(c, "reports_sessions", map[string]any{
			"limit":    limit,
			"offset":   offset,
			"count":    len(rows),
			"sessions": rows,
		})
	}
}
