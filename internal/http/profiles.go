package http

import (
	"github.com/jmehdipour/radius-admin/internal/repository"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func listProfilesHandler(profiles repository.ProfilesRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := profiles.ListByPrice(c.Request().Context())
		if err != nil {
			log.Errorf("list profiles failed: %v", err)
			return fail(c, "service_profiles", err)
		}

		return ok(c, "service_profiles", map[string]any{"profiles": list})
	}
}
