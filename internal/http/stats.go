package http

import (
	"fmt"
	"math/rand/v2"

	"github.com/jmehdipour/radius-admin/internal/repository"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// simulatedOnline draws a uniform value in [0, total]. There is no session
// source wired into the dashboard; this is synthetic data, kept explicit.
// Real session rows are served separately by /api/reports/sessions.
func simulatedOnline(total int64) int64 {
	if total <= 0 {
		return 0
	}
	return rand.Int64N(total + 1)
}

func getStatsHandler(stats repository.StatsRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		totalUsers, err := stats.CountActiveCustomers(ctx)
		if err != nil {
			log.Errorf("count customers failed: %v", err)
			return fail(c, "get_stats", err)
		}

		nasCount, err := stats.CountActiveNAS(ctx)
		if err != nil {
			log.Errorf("count nas failed: %v", err)
			return fail(c, "get_stats", err)
		}

		revenue, err := stats.ActiveMonthlyRevenue(ctx)
		if err != nil {
			log.Errorf("sum revenue failed: %v", err)
			return fail(c, "get_stats", err)
		}

		return ok(c, "get_stats", map[string]any{
			"stats": map[string]any{
				"total_users":     totalUsers,
				"online_users":    simulatedOnline(totalUsers),
				"nas_count":       nasCount,
				"monthly_revenue": fmt.Sprintf("%.2f", revenue),
			},
		})
	}
}
