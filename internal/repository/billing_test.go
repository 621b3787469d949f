package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestListRecent_CapsAtFifty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBillingRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "customer_id", "invoice_number", "amount",
		"billing_date", "due_date", "status", "created_at",
		"first_name", "last_name",
	}).AddRow(1, "CUST1234", "INV-202508-123", 59.99, now, now.AddDate(0, 0, 30), "pending", now, "Jane", "Doe")

	mock.ExpectQuery("FROM billing b").WithArgs(50).WillReturnRows(rows)

	bills, err := repo.ListRecent(context.Background())
	if err != nil {
		t.Fatalf("list recent: %v", err)
	}
	if len(bills) != 1 {
		t.Fatalf("rows = %d, want 1", len(bills))
	}
	if bills[0].FirstName != "Jane" || bills[0].InvoiceNumber != "INV-202508-123" {
		t.Errorf("row = %+v", bills[0])
	}

	// WithArgs(50) above is the assertion: the query is always bounded
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
