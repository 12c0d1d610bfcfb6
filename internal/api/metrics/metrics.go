// Package metrics defines and registers all custom Prometheus metrics for the
// listings API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at package
// init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "listings"

// ── Listing metrics ───────────────────────────────────────────────────────────

// ListingsCreatedTotal counts newly created listings.
// Label:
//   - category: the categorical field of the created listing
var ListingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "created_total",
		Help:      "Total number of listings created, by category.",
	},
	[]string{"category"},
)

// ListingsDeletedTotal counts hard-deleted listings.
var ListingsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "deleted_total",
		Help:      "Total number of listings deleted.",
	},
)

// MutationsDeniedTotal counts rejected mutation attempts.
// Label:
//   - reason: "forbidden" (actor lacks rights) or "not_found"
var MutationsDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_denied_total",
		Help:      "Total number of denied mutation attempts, by reason.",
	},
	[]string{"reason"},
)

// ── Stats engine metrics ──────────────────────────────────────────────────────

// StatsRequestsTotal counts stats report computations.
var StatsRequestsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stats_requests_total",
		Help:      "Total number of per-owner stats reports computed.",
	},
)

// StatsComputeDuration measures a full stats computation, including the
// owner-scoped store query.
var StatsComputeDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "stats_compute_duration_seconds",
		Help:      "Duration of per-owner stats computation from query to report.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "failure", or "throttled"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
