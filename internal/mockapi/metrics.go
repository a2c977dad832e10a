package mockapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "motobazar_mockapi"

// LoginsTotal counts credential exchanges.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ModerationsTotal counts moderation decisions.
// Label:
//   - action: "approve" or "reject"
var ModerationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "moderations_total",
		Help:      "Total number of vehicle moderation actions, by action.",
	},
	[]string{"action"},
)

// PaymentsConfirmedTotal counts payments marked paid.
var PaymentsConfirmedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "payments_confirmed_total",
		Help:      "Total number of payments confirmed as paid.",
	},
)
