// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label value constants to prevent typos
const (
	// Notification drop reasons
	ReasonResolution   = "resolution"
	ReasonSelfAddress  = "self_address"
	ReasonInvalidEvent = "invalid_event"
	ReasonStore        = "store_error"

	// Notification skip reasons
	SkipNoop      = "noop"
	SkipWithdrawn = "already_withdrawn"

	// Outbox publish results
	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	InterestWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transferdesk_interest_writes_total",
			Help: "Committed-or-attempted interest writes by event type",
		},
		[]string{"event"},
	)

	NotificationsDispatchedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transferdesk_notifications_dispatched_total",
			Help: "Notifications inserted by the dispatcher, by kind",
		},
		[]string{"kind"},
	)

	NotificationsDroppedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transferdesk_notifications_dropped_total",
			Help: "Interest events whose notification was rolled back, by reason",
		},
		[]string{"reason"},
	)

	NotificationsSkippedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transferdesk_notifications_skipped_total",
			Help: "Interest events that route to no notification, by reason",
		},
		[]string{"reason"},
	)

	OutboxPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transferdesk_outbox_published_total",
			Help: "Outbox publish attempts by result",
		},
		[]string{"result"},
	)

	OutboxPublishDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "transferdesk_outbox_publish_duration_seconds",
			Help:    "Time to publish one outbox event",
			Buckets: prometheus.DefBuckets,
		},
	)

	OutboxPending = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "transferdesk_outbox_pending",
			Help: "Outbox events not yet published",
		},
	)

	RPCRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transferdesk_rpc_requests_total",
			Help: "Unary RPCs by procedure and connect code",
		},
		[]string{"procedure", "code"},
	)

	RPCRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "transferdesk_rpc_request_duration_seconds",
			Help:    "Unary RPC latency by procedure",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"procedure"},
	)
)
