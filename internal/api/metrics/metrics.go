// Package metrics defines and registers all custom Prometheus metrics for
// the JobGenix CRM backend. It is the single source of truth for metric
// names, labels, and help strings; promauto registers everything with the
// default registry at init time.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobgenix"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Task metrics ──────────────────────────────────────────────────────────────

// TasksCreatedTotal counts newly created tasks.
// Label:
//   - priority: "High", "Medium", or "Low"
var TasksCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_created_total",
		Help:      "Total number of tasks created, by priority.",
	},
	[]string{"priority"},
)

// ── Leave metrics ─────────────────────────────────────────────────────────────

// LeaveDecisionsTotal counts leave decisions.
// Label:
//   - status: "Accepted" or "Rejected"
var LeaveDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "leave_decisions_total",
		Help:      "Total number of leave applications decided, by outcome.",
	},
	[]string{"status"},
)

// ── Attendance metrics ────────────────────────────────────────────────────────

// AttendanceTotal counts attendance transitions.
// Label:
//   - action: "check_in" or "check_out"
var AttendanceTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "attendance_total",
		Help:      "Total number of attendance check-ins and check-outs.",
	},
	[]string{"action"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsTotal counts delivery attempts that completed.
// Label:
//   - result: "success" or "failure"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of notification deliveries, by result.",
	},
	[]string{"result"},
)

// NotificationsDedupTotal counts deduplication decisions.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new, delivered)
var NotificationsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_dedup_total",
		Help:      "Total number of notification dedup checks, by result (hit/miss).",
	},
	[]string{"result"},
)

// NotificationQueueDepth tracks the notifications waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var NotificationQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notification_queue_depth",
		Help:      "Current number of notifications pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
