package http

import (
	"fmt"
	"strings"

	"github.com/jmehdipour/radius-admin/internal/model"
	"github.com/jmehdipour/radius-admin/internal/repository"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func getBillingHandler(billing repository.BillingRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		bills, err := billing.ListRecent(c.Request().Context())
		if err != nil {
			log.Errorf("list billing failed: %v", err)
			return fail(c, "get_billing", err)
		}

		return ok(c, "get_billing", map[string]any{"billing": bills})
	}
}

// customerBillingHandler serves one customer's invoice history.
func customerBillingHandler(billing repository.BillingRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		customerID := strings.TrimSpace(c.Param("id"))
		if customerID == "" {
			return fail(c, "customer_billing", fmt.Errorf("customer id is required: %w", model.ErrValidation))
		}

		bills, err := billing.ListByCustomer(c.Request().Context(), customerID)
		if err != nil {
			log.Errorf("customer billing %s failed: %v", customerID, err)
			return fail(c, "customer_billing", err)
		}

		return ok(c, "customer_billing", map[string]any{"billing": bills})
	}
}
