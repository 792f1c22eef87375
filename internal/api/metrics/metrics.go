// Package metrics defines and registers all custom Prometheus metrics for the
// church admin API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "church_admin"

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "failed" (all failures share one label so the metric
//     cannot leak which credential part was wrong)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered.",
	},
)

// DonationsRecordedTotal counts newly recorded donations.
// Label:
//   - method: payment method reported by the admin (e.g. "card", "bank", "cash")
var DonationsRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "donations_recorded_total",
		Help:      "Total number of donation records created, by payment method.",
	},
	[]string{"method"},
)

// DonationStatusChangesTotal counts applied status transitions.
// Label:
//   - status: the new donation status (e.g. "succeeded", "refunded")
var DonationStatusChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "donation_status_changes_total",
		Help:      "Total number of donation status transitions applied.",
	},
	[]string{"status"},
)

// PageCacheTotal counts published-page cache lookups.
// Label:
//   - result: "hit" or "miss"
var PageCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "page_cache_total",
		Help:      "Total number of page cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// AuditEventsTotal counts audit pipeline outcomes.
// Label:
//   - result: "ok" or "error"
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of donation audit events processed, by result.",
	},
	[]string{"result"},
)

// AuditQueueDepth tracks the number of events waiting in each worker channel.
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
