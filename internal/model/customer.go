package model

import "time"

// Customer is a subscriber account. RadiusUsername stores the login
// identifier derived at provisioning time (lowercase first.last); deletion
// reads it back instead of re-deriving from the mutable name fields.
type Customer struct {
	ID             int64     `db:"id" json:"-"`
	CustomerID     string    `db:"customer_id" json:"customer_id"` // CUST + 4 digits
	FirstName      string    `db:"first_name" json:"first_name"`
	LastName       string    `db:"last_name" json:"last_name"`
	Email          string    `db:"email" json:"email"`
	Phone          string    `db:"phone" json:"phone"`
	Address        string    `db:"address" json:"address"`
	ServiceProfile string    `db:"service_profile" json:"service_profile"` // profile name, natural key
	RadiusUsername string    `db:"radius_username" json:"radius_username"`
	Status         string    `db:"status" json:"status"` // active|suspended
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// CustomerWithPrice is the get_users row: customer joined with the current
// profile price. The price is advisory; billed amounts live in billing rows.
type CustomerWithPrice struct {
	Customer
	Price *float64 `db:"price" json:"price"`
}
