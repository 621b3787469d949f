package model

import "time"

// NASDevice is a registered network access server. Type is free text: the
// UI offers an enumeration but the server accepts whatever is submitted.
type NASDevice struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"nas_name" json:"nas_name"`
	IP           string    `db:"nas_ip" json:"nas_ip"`
	Type         string    `db:"nas_type" json:"nas_type"`
	SharedSecret string    `db:"shared_secret" json:"-"`
	Location     string    `db:"location" json:"location"`
	Status       string    `db:"status" json:"status"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
