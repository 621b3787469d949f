package provisioning

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jmehdipour/radius-admin/internal/metrics"
	"github.com/jmehdipour/radius-admin/internal/model"
	"github.com/jmehdipour/radius-admin/internal/repository"
	"github.com/jmehdipour/radius-admin/internal/util"
	"github.com/jmoiron/sqlx"
)

// EventsTopic is the outbox topic the CDC relay publishes provisioning
// events to; the events worker consumes the same topic.
const EventsTopic = "radius.events"

const dueDays = 30

// AccountInput is the raw add_user form payload.
type AccountInput struct {
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Address        string
	ServiceProfile string
	Password       string
}

// Service atomically provisions and deprovisions subscriber accounts:
// customer row, RADIUS credential + group assignment, first invoice, and an
// outbox event, all in one transaction per operation.
type Service struct {
	db        *sqlx.DB
	customers repository.CustomersRepository
	radius    repository.RadiusRepository
	profiles  repository.ProfilesRepository
	billing   repository.BillingRepository
	outbox    repository.OutboxRepository
}

// New constructs the provisioning service.
func New(
	db *sqlx.DB,
	customersRepo repository.CustomersRepository,
	radiusRepo repository.RadiusRepository,
	profilesRepo repository.ProfilesRepository,
	billingRepo repository.BillingRepository,
	outboxRepo repository.OutboxRepository,
) *Service {
	return &Service{
		db:        db,
		customers: customersRepo,
		radius:    radiusRepo,
		profiles:  profilesRepo,
		billing:   billingRepo,
		outbox:    outboxRepo,
	}
}

func validate(in AccountInput) error {
	switch {
	case strings.TrimSpace(in.FirstName) == "":
		return fmt.Errorf("first_name is required: %w", model.ErrValidation)
	case strings.TrimSpace(in.LastName) == "":
		return fmt.Errorf("last_name is required: %w", model.ErrValidation)
	case strings.TrimSpace(in.Email) == "":
		return fmt.Errorf("email is required: %w", model.ErrValidation)
	case strings.TrimSpace(in.ServiceProfile) == "":
		return fmt.Errorf("service_profile is required: %w", model.ErrValidation)
	case in.Password == "":
		return fmt.Errorf("password is required: %w", model.ErrValidation)
	}
	return nil
}

// Provision creates the account and returns the derived login identifier.
// Identifier derivation is deterministic and uniqueness is not enforced: a
// second customer with the same first/last name derives the same username
// and gets a second radcheck row. Which credential the RADIUS server then
// honors is up to the RADIUS server.
func (s *Service) Provision(ctx context.Context, in AccountInput) (username string, customerID string, err error) {
	if err := validate(in); err != nil {
		return "", "", err
	}

	username = util.DeriveUsername(in.FirstName, in.LastName)
	customerID = util.NewCustomerID()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", "", err
	}
	defer func() { _ = tx.Rollback() }()

	cust := model.Customer{
		CustomerID:     customerID,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		Phone:          in.Phone,
		Address:        in.Address,
		ServiceProfile: in.ServiceProfile,
		RadiusUsername: username,
	}
	if err := s.customers.Insert(ctx, tx, cust); err != nil {
		return "", "", fmt.Errorf("insert customer: %w", err)
	}

	if err := s.radius.InsertCheck(ctx, tx, username, in.Password); err != nil {
		return "", "", fmt.Errorf("insert radcheck: %w", err)
	}

	if err := s.radius.InsertUserGroup(ctx, tx, username, in.ServiceProfile); err != nil {
		return "", "", fmt.Errorf("insert radusergroup: %w", err)
	}

	price, err := s.profiles.PriceByName(ctx, tx, in.ServiceProfile)
	if err != nil {
		return "", "", fmt.Errorf("profile price: %w", err)
	}

	now := time.Now()
	bill := model.Bill{
		CustomerID:    customerID,
		InvoiceNumber: util.NewInvoiceNumber(now),
		Amount:        price,
		BillingDate:   now,
		DueDate:       now.AddDate(0, 0, dueDays),
	}
	if err := s.billing.Insert(ctx, tx, bill); err != nil {
		return "", "", fmt.Errorf("insert billing: %w", err)
	}

	payload, err := json.Marshal(model.EventEnvelope{
		Event:          model.EventAccountProvisioned,
		CustomerID:     customerID,
		Username:       username,
		ServiceProfile: in.ServiceProfile,
	})
	if err != nil {
		return "", "", fmt.Errorf("marshal event: %w", err)
	}
	if err := s.outbox.Insert(ctx, tx, "account", customerID, EventsTopic, payload); err != nil {
		return "", "", fmt.Errorf("insert outbox: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", "", err
	}

	metrics.AccountsTotal.WithLabelValues("provisioned").Inc()
	return username, customerID, nil
}

// Deprovision removes the customer row, its credential and group rows (by
// the radius_username stored at provisioning time), and all of its invoices
// in one transaction. A missing customer id yields model.ErrNotFound.
func (s *Service) Deprovision(ctx context.Context, customerID string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	cust, err := s.customers.GetByCustomerID(ctx, tx, customerID)
	if err != nil {
		return err
	}

	if _, err := s.customers.Delete(ctx, tx, customerID); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if err := s.radius.DeleteCheck(ctx, tx, cust.RadiusUsername); err != nil {
		return fmt.Errorf("delete radcheck: %w", err)
	}
	if err := s.radius.DeleteUserGroup(ctx, tx, cust.RadiusUsername); err != nil {
		return fmt.Errorf("delete radusergroup: %w", err)
	}
	if err := s.billing.DeleteByCustomer(ctx, tx, customerID); err != nil {
		return fmt.Errorf("delete billing: %w", err)
	}

	payload, err := json.Marshal(model.EventEnvelope{
		Event:      model.EventAccountDeprovisioned,
		CustomerID: customerID,
		Username:   cust.RadiusUsername,
	})
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := s.outbox.Insert(ctx, tx, "account", customerID, EventsTopic, payload); err != nil {
		return fmt.Errorf("insert outbox: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	metrics.AccountsTotal.WithLabelValues("deprovisioned").Inc()
	return nil
}
