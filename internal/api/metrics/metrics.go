// Package metrics defines and registers all custom Prometheus metrics for the
// clinic portal. It is the single source of truth for metric names, labels,
// and help strings. Metrics self-register via promauto at init time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clinic_portal"

// BackendRequestsTotal counts round trips to the clinic backend.
// Labels:
//   - op: logical operation (e.g. "list_doctors", "book_appointment")
//   - status: HTTP status code, or "transport_error"
var BackendRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_requests_total",
		Help:      "Total number of clinic backend requests, by operation and status.",
	},
	[]string{"op", "status"},
)

// BackendRequestDuration measures clinic backend round-trip latency.
var BackendRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_request_duration_seconds",
		Help:      "Duration of clinic backend requests by operation.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"op"},
)

// SessionsEstablishedTotal counts successful logins/signups by role.
var SessionsEstablishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_established_total",
		Help:      "Total number of sessions established, by role.",
	},
	[]string{"role"},
)

// SessionsClearedTotal counts explicit logouts and auth-failure invalidations.
var SessionsClearedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_cleared_total",
		Help:      "Total number of sessions cleared.",
	},
)

// StaleQueriesDiscardedTotal counts query responses dropped by the
// latest-request-wins guard.
// Label:
//   - surface: "directory" or "board"
var StaleQueriesDiscardedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stale_queries_discarded_total",
		Help:      "Total number of superseded query responses discarded instead of rendered.",
	},
	[]string{"surface"},
)

// BookingsTotal counts booking workflow outcomes.
// Label:
//   - outcome: "submitted", "rejected", "not_authenticated", "profile_fetch_failed"
var BookingsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_total",
		Help:      "Total number of booking workflow invocations by outcome.",
	},
	[]string{"outcome"},
)
