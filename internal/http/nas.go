package http

import (
	"fmt"
	"strings"

	"github.com/jmehdipour/radius-admin/internal/model"
	"github.com/jmehdipour/radius-admin/internal/repository"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func addNASHandler(nas repository.NASRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		// nas_type is accepted as-is: the UI's enumeration (MikroTik, Cisco,
		// Ubiquiti, Other) is presentational, not a server-side constraint.
		d := model.NASDevice{
			Name:         strings.TrimSpace(c.FormValue("nas_name")),
			IP:           strings.TrimSpace(c.FormValue("nas_ip")),
			Type:         strings.TrimSpace(c.FormValue("nas_type")),
			SharedSecret: c.FormValue("shared_secret"),
			Location:     strings.TrimSpace(c.FormValue("location")),
		}
		if d.Name == "" || d.IP == "" {
			return fail(c, "add_nas", fmt.Errorf("nas_name and nas_ip are required: %w", model.ErrValidation))
		}

		if err := nas.Insert(c.Request().Context(), d); err != nil {
			log.Errorf("add nas failed: %v", err)
			return fail(c, "add_nas", err)
		}

		return ok(c, "add_nas", map[string]any{
			"message": "NAS device added successfully!",
		})
	}
}

func getNASHandler(nas repository.NASRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		devices, err := nas.List(c.Request().Context())
		if err != nil {
			log.Errorf("list nas failed: %v", err)
			return fail(c, "get_nas", err)
		}

		return ok(c, "get_nas", map[string]any{"nas_devices": devices})
	}
}
