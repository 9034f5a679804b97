// Package metrics defines the custom Prometheus metrics for the Aquapure
// sales portal. It is the single source of truth for metric names, labels,
// and help strings; HTTP-level metrics come from the echoprometheus
// middleware and are not declared here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "aquapure"

// LoginsTotal counts successful logins.
// Label:
//   - new_user: "true" when the login created the user row, "false" otherwise
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of successful logins.",
	},
	[]string{"new_user"},
)

// AuditsCreatedTotal counts recorded audits.
// Label:
//   - type: client archetype ("Dealer", "HOA", "Industrial")
var AuditsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audits_created_total",
		Help:      "Total number of audits recorded, labelled by archetype.",
	},
	[]string{"type"},
)

// MetricUpdatesTotal counts weekly-counter overwrites.
// Label:
//   - metric_key: the counter name (e.g. "dealerAudits")
var MetricUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "metric_updates_total",
		Help:      "Total number of weekly scorecard counter updates.",
	},
	[]string{"metric_key"},
)
