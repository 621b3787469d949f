package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmehdipour/radius-admin/internal/model"
	"github.com/jmoiron/sqlx"
)

// CustomersRepository defines persistence for the customers table.
type CustomersRepository interface {
	// Insert writes a new customer row inside the provisioning transaction.
	Insert(ctx context.Context, tx *sqlx.Tx, c model.Customer) error
	// GetByCustomerID returns the customer or model.ErrNotFound. Runs inside
	// the deprovisioning transaction so the stored radius_username cannot
	// change between lookup and delete.
	GetByCustomerID(ctx context.Context, tx *sqlx.Tx, customerID string) (*model.Customer, error)
	// Delete removes the customer row; returns rows affected.
	Delete(ctx context.Context, tx *sqlx.Tx, customerID string) (int64, error)
	// ListWithPrice returns all customers joined with the current profile
	// price, newest first. No pagination.
	ListWithPrice(ctx context.Context) ([]model.CustomerWithPrice, error)
}

type CustomersRepositoryImpl struct {
	db *sqlx.DB
}

func NewCustomersRepository(db *sqlx.DB) *CustomersRepositoryImpl {
	return &CustomersRepositoryImpl{db: db}
}

var _ CustomersRepository = (*CustomersRepositoryImpl)(nil)

func (r *CustomersRepositoryImpl) Insert(ctx context.Context, tx *sqlx.Tx, c model.Customer) error {
	const q = `
		INSERT INTO customers
		    (customer_id, first_name, last_name, email, phone, address, service_profile, radius_username, status, created_at)
		VALUES
		    (?, ?, ?, ?, ?, ?, ?, ?, 'active', NOW())
	`
	_, err := tx.ExecContext(ctx, q,
		c.CustomerID, c.FirstName, c.LastName, c.Email, c.Phone, c.Address, c.ServiceProfile, c.RadiusUsername,
	)
	return err
}

func (r *CustomersRepositoryImpl) GetByCustomerID(ctx context.Context, tx *sqlx.Tx, customerID string) (*model.Customer, error) {
	const q = `
		SELECT id, customer_id, first_name, last_name, email, phone, address, service_profile, radius_username, status, created_at
		  FROM customers
		 WHERE customer_id = ? LIMIT 1
	`
	var c model.Customer
	err := tx.GetContext(ctx, &c, q, customerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("customer %s: %w", customerID, model.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomersRepositoryImpl) Delete(ctx context.Context, tx *sqlx.Tx, customerID string) (int64, error) {
	res, err := tx.ExecContext(ctx, `DELETE FROM customers WHERE customer_id = ?`, customerID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *CustomersRepositoryImpl) ListWithPrice(ctx context.Context) ([]model.CustomerWithPrice, error) {
	const q = `
		SELECT c.id, c.customer_id, c.first_name, c.last_name, c.email, c.phone, c.address,
		       c.service_profile, c.radius_username, c.status, c.created_at,
		       sp.price
		  FROM customers c
		  LEFT JOIN service_profiles sp ON c.service_profile = sp.name
		 ORDER BY c.created_at DESC
	`
	rows := []model.CustomerWithPrice{}
	if err := r.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, err
	}
	return rows, nil
}
