// Package metrics defines all custom Prometheus metrics for the investment
// platform core. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default registry via
// promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "platform"

// ── Identity metrics ──────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid", "pending", or "suspended"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successful registrations.
// Label:
//   - role: "issuer" or "investor"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful registrations, labelled by role.",
	},
	[]string{"role"},
)

// ResetTokensIssuedTotal counts password reset tokens issued.
var ResetTokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reset_tokens_issued_total",
		Help:      "Total number of password reset tokens issued.",
	},
)

// ResetTokensPrunedTotal counts reset tokens removed by the retention sweeper.
var ResetTokensPrunedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reset_tokens_pruned_total",
		Help:      "Total number of expired or used reset tokens pruned.",
	},
)

// ── Investment metrics ────────────────────────────────────────────────────────

// InvestmentsCreatedTotal counts investments recorded.
var InvestmentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "investments_created_total",
		Help:      "Total number of investments recorded.",
	},
)

// InvestmentStatusUpdatesTotal counts status updates applied to investments.
// Label:
//   - status: the status written (e.g. "approved", "rejected")
var InvestmentStatusUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "investment_status_updates_total",
		Help:      "Total number of investment status updates, labelled by new status.",
	},
	[]string{"status"},
)

// NotificationsEmittedTotal counts notifications appended to the feed.
// Label:
//   - type: the notification type (e.g. "investment_update")
var NotificationsEmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_emitted_total",
		Help:      "Total number of notifications emitted, labelled by type.",
	},
	[]string{"type"},
)

// ── Outbound email metrics ────────────────────────────────────────────────────

// EmailDispatchTotal counts outbound email deliveries.
// Label:
//   - result: "delivered" or "failed"
var EmailDispatchTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "email_dispatch_total",
		Help:      "Total number of outbound email dispatch attempts, labelled by result.",
	},
	[]string{"result"},
)
