package util

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// DeriveUsername builds the RADIUS login identifier from a customer's name:
// lowercase(first).lowercase(last). Deterministic on purpose, so two
// customers with the same name collide; callers persist the result so it is
// derived exactly once per account.
func DeriveUsername(firstName, lastName string) string {
	return strings.ToLower(strings.TrimSpace(firstName)) + "." + strings.ToLower(strings.TrimSpace(lastName))
}

// NewCustomerID draws a random CUST + 4 digit identifier. Collisions are not
// checked here; the UNIQUE index on customers.customer_id rejects them.
func NewCustomerID() string {
	return fmt.Sprintf("CUST%d", 1000+rand.IntN(9000))
}

// NewInvoiceNumber builds INV-YYYYMM-NNN for the given billing date, with a
// random three-digit suffix. Not guaranteed unique.
func NewInvoiceNumber(at time.Time) string {
	return fmt.Sprintf("INV-%s-%03d", at.Format("200601"), 100+rand.IntN(900))
}
