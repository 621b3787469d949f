package http

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmehdipour/radius-admin/internal/model"
	"github.com/jmehdipour/radius-admin/internal/repository"
	"github.com/jmehdipour/radius-admin/internal/service/provisioning"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// Provisioner is what the account handlers need from the provisioning
// service.
type Provisioner interface {
	Provision(ctx context.Context, in provisioning.AccountInput) (username, customerID string, err error)
	Deprovision(ctx context.Context, customerID string) error
}

func addUserHandler(svc Provisioner) echo.HandlerFunc {
	return func(c echo.Context) error {
		in := provisioning.AccountInput{
			FirstName:      strings.TrimSpace(c.FormValue("first_name")),
			LastName:       strings.TrimSpace(c.FormValue("last_name")),
			Email:          strings.TrimSpace(c.FormValue("email")),
			Phone:          strings.TrimSpace(c.FormValue("phone")),
			Address:        strings.TrimSpace(c.FormValue("address")),
			ServiceProfile: strings.TrimSpace(c.FormValue("service_profile")),
			Password:       c.FormValue("password"),
		}

		username, _, err := svc.Provision(c.Request().Context(), in)
		if err != nil {
			log.Errorf("provision failed: %v", err)
			return fail(c, "add_user", err)
		}

		return ok(c, "add_user", map[string]any{
			"message":  "Customer added successfully!",
			"username": username,
		})
	}
}

func getUsersHandler(customers repository.CustomersRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := customers.ListWithPrice(c.Request().Context())
		if err != nil {
			log.Errorf("list users failed: %v", err)
			return fail(c, "get_users", err)
		}

		return ok(c, "get_users", map[string]any{"users": users})
	}
}

func deleteUserHandler(svc Provisioner) echo.HandlerFunc {
	return func(c echo.Context) error {
		customerID := strings.TrimSpace(c.FormValue("customer_id"))
		if customerID == "" {
			return fail(c, "delete_user", fmt.Errorf("customer_id is required: %w", model.ErrValidation))
		}

		if err := svc.Deprovision(c.Request().Context(), customerID); err != nil {
			log.Errorf("deprovision %s failed: %v", customerID, err)
			return fail(c, "delete_user", err)
		}

		return ok(c, "delete_user", map[string]any{
			"message": "Customer deleted successfully!",
		})
	}
}
