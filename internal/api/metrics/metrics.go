// Package metrics defines and registers all custom Prometheus metrics for
// the fitness planner API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register themselves with the default Prometheus registry at init
// time via promauto; the router exposes them on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fitplanner"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts successfully created user accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user accounts created.",
	},
)

// LoginsTotal counts login attempts that reached credential verification.
// Label:
//   - result: "ok" or "failed"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Plan metrics ──────────────────────────────────────────────────────────────

// PlansCreatedTotal counts newly created plans.
var PlansCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "plans_created_total",
		Help:      "Total number of workout plans created.",
	},
)

// PlansDeletedTotal counts plan delete requests that completed, whether or
// not a row actually existed.
var PlansDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "plans_deleted_total",
		Help:      "Total number of plan delete operations.",
	},
)

// PlanItemCount measures how many items each created plan carries,
// including items excluded from the totals.
var PlanItemCount = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "plan_item_count",
		Help:      "Number of items per created plan.",
		Buckets:   []float64{1, 2, 3, 5, 8, 13, 21},
	},
)
