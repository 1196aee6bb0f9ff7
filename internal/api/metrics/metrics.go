// Package metrics defines all custom Prometheus metrics for the clinic API.
// It is the single source of truth for metric names, labels, and help
// strings. Metrics register themselves with the default registry via
// promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clinic"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts successful logins.
var LoginsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of successful logins.",
	},
)

// AuthFailuresTotal counts rejected requests at the auth middleware.
// Label:
//   - reason: "missing", "invalid", "expired", "revoked", or "forbidden"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by authentication or authorization.",
	},
	[]string{"reason"},
)

// ── Appointment metrics ───────────────────────────────────────────────────────

// AppointmentsCreatedTotal counts newly scheduled appointments.
var AppointmentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_created_total",
		Help:      "Total number of appointments scheduled.",
	},
)

// ── Real-time channel metrics ─────────────────────────────────────────────────

// WSConnectionsActive tracks the number of currently open listener connections.
var WSConnectionsActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "ws_connections_active",
		Help:      "Number of currently connected real-time listeners.",
	},
)

// BroadcastsDeliveredTotal counts per-connection event deliveries handed to
// a listener's send queue.
// Label:
//   - type: the event type (e.g. "NEW_APPOINTMENT")
var BroadcastsDeliveredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "broadcasts_delivered_total",
		Help:      "Total number of per-connection event deliveries.",
	},
	[]string{"type"},
)

// BroadcastsDroppedTotal counts deliveries that failed and caused the
// listener to be dropped from the live set.
var BroadcastsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "broadcasts_dropped_total",
		Help:      "Total number of failed deliveries that dropped a listener.",
	},
)
