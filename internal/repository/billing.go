package repository

import (
	"context"

	"github.com/jmehdipour/radius-admin/internal/model"
	"github.com/jmoiron/sqlx"
)

// recentBillingLimit caps the dashboard billing listing.
const recentBillingLimit = 50

// BillingRepository defines persistence for the billing table.
type BillingRepository interface {
	// Insert writes the first invoice inside the provisioning transaction.
	Insert(ctx context.Context, tx *sqlx.Tx, b model.Bill) error
	// DeleteByCustomer removes all invoices of one customer inside the
	// deprovisioning transaction.
	DeleteByCustomer(ctx context.Context, tx *sqlx.Tx, customerID string) error
	// ListRecent returns at most 50 invoices joined with customer names,
	// newest first.
	ListRecent(ctx context.Context) ([]model.BillWithCustomer, error)
	// ListByCustomer returns one customer's invoices, newest first.
	ListByCustomer(ctx context.Context, customerID string) ([]model.Bill, error)
}

type BillingRepositoryImpl struct {
	db *sqlx.DB
}

func NewBillingRepository(db *sqlx.DB) *BillingRepositoryImpl {
	return &BillingRepositoryImpl{db: db}
}

var _ BillingRepository = (*BillingRepositoryImpl)(nil)

func (r *BillingRepositoryImpl) Insert(ctx context.Context, tx *sqlx.Tx, b model.Bill) error {
	const q = `
		INSERT INTO billing (customer_id, invoice_number, amount, billing_date, due_date, created_at)
		VALUES (?, ?, ?, ?, ?, NOW())
	`
	_, err := tx.ExecContext(ctx, q, b.CustomerID, b.InvoiceNumber, b.Amount, b.BillingDate, b.DueDate)
	return err
}

func (r *BillingRepositoryImpl) DeleteByCustomer(ctx context.Context, tx *sqlx.Tx, customerID string) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM billing WHERE customer_id = ?`, customerID)
	return err
}

func (r *BillingRepositoryImpl) ListRecent(ctx context.Context) ([]model.BillWithCustomer, error) {
	const q = `
		SELECT b.id, b.customer_id, b.invoice_number, b.amount, b.billing_date, b.due_date, b.status, b.created_at,
		       c.first_name, c.last_name
		  FROM billing b
		  JOIN customers c ON b.customer_id = c.customer_id
		 ORDER BY b.created_at DESC
		 LIMIT ?
	`
	rows := []model.BillWithCustomer{}
	if err := r.db.SelectContext(ctx, &rows, q, recentBillingLimit); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *BillingRepositoryImpl) ListByCustomer(ctx context.Context, customerID string) ([]model.Bill, error) {
	const q = `
		SELECT id, customer_id, invoice_number, amount, billing_date, due_date, status, created_at
		  FROM billing
		 WHERE customer_id = ?
		 ORDER BY created_at DESC
	`
	rows := []model.Bill{}
	if err := r.db.SelectContext(ctx, &rows, q, customerID); err != nil {
		return nil, err
	}
	return rows, nil
}
