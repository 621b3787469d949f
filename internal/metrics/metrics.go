package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	APIActionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "radadmin_api_actions_total",
			Help: "Admin API actions by name and outcome",
		},
		[]string{"action", "outcome"}, // add_user|get_users|... , ok|error
	)

	AccountsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "radadmin_accounts_total",
			Help: "Account lifecycle counter",
		},
		[]string{"op"}, // provisioned|deprovisioned
	)

	EventsDelivered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "radadmin_events_delivered_total",
			Help: "Provisioning events pushed to webhooks by outcome",
		},
		[]string{"outcome"}, // sent|failed|skipped
	)
)

func MustRegister(r prometheus.Registerer) {
	r.MustRegister(
		APIActionsTotal,
		AccountsTotal,
		EventsDelivered,
	)
}
