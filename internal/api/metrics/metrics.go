// Package metrics defines and registers all custom Prometheus metrics for
// the thermal simulation API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "thermosim"

// ── Run metrics ───────────────────────────────────────────────────────────────

// RunsStartedTotal counts simulation runs that passed admission.
var RunsStartedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "runs_started_total",
		Help:      "Total number of simulation runs admitted.",
	},
)

// RunsFinishedTotal counts runs that reached a terminal state.
// Label:
//   - status: "completed", "failed" or "cancelled"
var RunsFinishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "runs_finished_total",
		Help:      "Total number of simulation runs reaching a terminal state.",
	},
	[]string{"status"},
)

// RunsRejectedTotal counts admission rejections.
// Label:
//   - reason: "unauthenticated", "subscription", "quota", "not_found" or "conflict"
var RunsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "runs_rejected_total",
		Help:      "Total number of simulation runs rejected at admission.",
	},
	[]string{"reason"},
)

// RunDuration measures admitted runs from admission to terminal state.
// Label:
//   - status: the terminal status
var RunDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "run_duration_seconds",
		Help:      "Duration of simulation runs from admission to terminal state.",
		Buckets:   []float64{.5, 1, 2.5, 5, 10, 20, 30, 60},
	},
	[]string{"status"},
)

// DomainShiftAlertsTotal counts completed runs whose inputs fell outside the
// solver's validated envelope.
var DomainShiftAlertsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "domain_shift_alerts_total",
		Help:      "Total number of completed runs with the domain shift alert raised.",
	},
)

// ── Upload metrics ────────────────────────────────────────────────────────────

// UploadsTotal counts geometry upload attempts.
// Label:
//   - result: "ok", "rejected" or "error"
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "geometry_uploads_total",
		Help:      "Total number of geometry upload attempts, by result.",
	},
	[]string{"result"},
)

// ── Live update metrics ───────────────────────────────────────────────────────

// WatchersActive tracks currently connected live-update subscribers.
var WatchersActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "watchers_active",
		Help:      "Number of websocket subscribers currently connected.",
	},
)
