// Package metrics defines and registers all custom Prometheus metrics for
// the user management API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "userhub"

// UsersCreatedTotal counts successfully created user resources.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users created.",
	},
)

// AuthFailuresTotal counts rejected authentication attempts.
// Label:
//   - reason: "missing_credential", "token_expired", "token_invalid",
//     "principal_not_found", or "principal_inactive"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of failed authentication attempts, by reason.",
	},
	[]string{"reason"},
)

// StatsCacheTotal counts statistics cache lookups.
// Label:
//   - result: "hit" (served from cache) or "miss" (recomputed)
var StatsCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stats_cache_total",
		Help:      "Total number of statistics cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
