// Package metrics defines and registers all custom Prometheus metrics for the
// booking API and the mail worker. It is the single source of truth for
// metric names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "booking"

// ── Booking metrics ───────────────────────────────────────────────────────────

// AppointmentsBookedTotal counts appointments that were successfully created.
var AppointmentsBookedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appointments_booked_total",
		Help:      "Total number of appointments successfully booked.",
	},
)

// BookingErrorsTotal counts booking and cancellation requests rejected by the
// business rules.
// Label:
//   - reason: "invalid_provider", "self_booking", "past_date", "slot_taken",
//     "not_owner", or "window_closed"
var BookingErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_errors_total",
		Help:      "Total number of booking requests rejected, by reason.",
	},
	[]string{"reason"},
)

// CancellationsTotal counts appointments that were successfully canceled.
var CancellationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cancellations_total",
		Help:      "Total number of appointments successfully canceled.",
	},
)

// NotificationsCreatedTotal counts provider notifications written to the feed.
var NotificationsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_created_total",
		Help:      "Total number of provider notifications created.",
	},
)

// ── Mail pipeline metrics ─────────────────────────────────────────────────────

// MailJobsEnqueuedTotal counts cancellation-mail jobs pushed onto the queue.
var MailJobsEnqueuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mail_jobs_enqueued_total",
		Help:      "Total number of cancellation-mail jobs enqueued.",
	},
)

// MailJobsProcessedTotal counts mail jobs consumed by the worker.
// Label:
//   - result: "sent", "retried", or "duplicate"
var MailJobsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mail_jobs_processed_total",
		Help:      "Total number of cancellation-mail jobs processed, by result.",
	},
	[]string{"result"},
)

// MailQueueDepth tracks the number of jobs currently waiting on the queue.
var MailQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "mail_queue_depth",
		Help:      "Current number of cancellation-mail jobs waiting on the queue.",
	},
)

// MailSendDuration measures how long a single SMTP delivery takes.
var MailSendDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "mail_send_duration_seconds",
		Help:      "Duration of a single cancellation-email delivery.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)
