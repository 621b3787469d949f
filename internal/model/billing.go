package model

import "time"

type BillStatus string

const (
	BillPending BillStatus = "pending"
	BillPaid    BillStatus = "paid"
	BillOverdue BillStatus = "overdue"
)

func (s BillStatus) String() string { return string(s) }

func (s BillStatus) Valid() bool {
	return s == BillPending || s == BillPaid || s == BillOverdue
}

// Bill is one invoice row. Amount is a copy of the profile price at
// provisioning time and is never re-derived.
type Bill struct {
	ID            int64      `db:"id" json:"id"`
	CustomerID    string     `db:"customer_id" json:"customer_id"`
	InvoiceNumber string     `db:"invoice_number" json:"invoice_number"` // INV-YYYYMM-NNN
	Amount        float64    `db:"amount" json:"amount"`
	BillingDate   time.Time  `db:"billing_date" json:"billing_date"`
	DueDate       time.Time  `db:"due_date" json:"due_date"` // billing_date + 30d
	Status        BillStatus `db:"status" json:"status"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}

// BillWithCustomer is the get_billing row: bill joined with customer names.
type BillWithCustomer struct {
	Bill
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
}
