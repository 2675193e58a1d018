// Package metrics defines the custom Prometheus metrics of the Maizul API.
// Metrics register with the default registry on package load via promauto and
// are exposed by the /metrics route next to the echoprometheus HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "maizul"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "disabled" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AuthFailuresTotal counts requests rejected by the authorization gate.
// Label:
//   - reason: "missing_token", "expired", "invalid", "revoked", "forbidden" or "error"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by authentication or role checks.",
	},
	[]string{"reason"},
)

// ── Menu metrics ──────────────────────────────────────────────────────────────

// MenuMutationsTotal counts successful catalog writes.
// Label:
//   - operation: "create", "update", "delete" or "reorder"
var MenuMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "menu_mutations_total",
		Help:      "Total number of successful menu catalog mutations.",
	},
	[]string{"operation"},
)

// MenuCacheLookupsTotal counts listing cache lookups.
// Label:
//   - result: "hit", "miss" or "error"
var MenuCacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "menu_cache_lookups_total",
		Help:      "Total number of menu listing cache lookups, by result.",
	},
	[]string{"result"},
)

// ── Seed metrics ──────────────────────────────────────────────────────────────

// SeedRunsTotal counts seeding runs.
// Label:
//   - result: "created" when anything was inserted, "noop" or "error"
var SeedRunsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "seed_runs_total",
		Help:      "Total number of seeding runs, by result.",
	},
	[]string{"result"},
)
