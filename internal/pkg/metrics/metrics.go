// Package metrics defines and registers all custom Prometheus metrics for the
// CMS console. It is the single source of truth for metric names, labels and
// help strings.
//
// Metrics register with the default Prometheus registry on package init via
// promauto; HTTP request metrics come from echoprometheus in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cms"

// ── Store metrics ─────────────────────────────────────────────────────────────

// RepositoryOperationsTotal counts repository calls that reach the store.
// Labels:
//   - collection: "users", "roles", "comments", "blacklist", "reports", "content", "audit"
//   - op: "add", "update", "delete", "save"
//   - result: "ok", "miss" (id not found), "error"
var RepositoryOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "repository_operations_total",
		Help:      "Total number of repository write operations, by collection, operation and result.",
	},
	[]string{"collection", "op", "result"},
)

// StoreReadFailuresTotal counts collection reads that degraded to an empty list.
// Labels:
//   - collection: the collection being read
//   - reason: "backend" (store error) or "corrupt" (undecodable value)
var StoreReadFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_read_failures_total",
		Help:      "Total number of collection reads that fell back to an empty collection.",
	},
	[]string{"collection", "reason"},
)

// ── Moderation metrics ────────────────────────────────────────────────────────

// ModerationActionsTotal counts moderation workflow runs.
// Labels:
//   - action: "ban", "unblacklist", "reconcile"
//   - result: "ok", "not_found", "already_blacklisted", "error"
var ModerationActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "moderation_actions_total",
		Help:      "Total number of moderation actions, by action and result.",
	},
	[]string{"action", "result"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionsTotal counts session marker transitions.
// Label:
//   - event: "login", "login_refused", "logout"
var SessionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_total",
		Help:      "Total number of session events.",
	},
	[]string{"event"},
)
