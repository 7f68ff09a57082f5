// Package metrics defines and registers all custom Prometheus metrics for the
// product API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics register with the default Prometheus registry at package init; the
// /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "product_api"

// ── Authentication metrics ────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// TokenRejectionsTotal counts requests rejected by the authentication gate.
// Label:
//   - reason: "missing_token", "invalid_token", "unknown_subject", "insufficient_role"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of requests rejected by the auth gate, by reason.",
	},
	[]string{"reason"},
)

// RegistrationsTotal counts created accounts.
// Label:
//   - role: the role assigned at registration ("ADMIN" or "USER")
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registered accounts, by role.",
	},
	[]string{"role"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// ProductsCreatedTotal counts newly created products.
var ProductsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products created.",
	},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditEventsTotal counts audit events handed to the persistence workers.
// Labels:
//   - entity: "user", "product", or "category"
//   - result: "ok" or "error"
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of audit events processed, by entity and result.",
	},
	[]string{"entity", "result"},
)

// AuditQueueDepth tracks the number of audit events waiting in each worker
// channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
