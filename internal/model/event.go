package model

import "time"

// Event types written to the outbox by the provisioning service.
const (
	EventAccountProvisioned   = "account.provisioned"
	EventAccountDeprovisioned = "account.deprovisioned"
)

type OutboxEvent struct {
	ID          int64     `db:"id"`
	Aggregate   string    `db:"aggregate"`    // "account"
	AggregateID string    `db:"aggregate_id"` // customer_id
	Topic       string    `db:"topic"`
	Payload     []byte    `db:"payload"`
	CreatedAt   time.Time `db:"created_at"`
}

// EventEnvelope is the payload relayed to Kafka (CDC outbox relay) and
// pushed to webhooks by the events worker.
type EventEnvelope struct {
	Event          string `json:"event"`
	CustomerID     string `json:"customer_id"`
	Username       string `json:"username"`
	ServiceProfile string `json:"service_profile,omitempty"`
}
