package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Fulfillment code hook
	FulfillmentRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "concierge_fulfillment_requests_total",
		Help: "Code hook requests by intent and resulting dialog action",
	}, []string{"intent", "action"})

	ValidationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "concierge_validation_failures_total",
		Help: "Slots re-elicited after failing validation",
	}, []string{"intent", "slot"})

	SummariesPublishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "concierge_dining_summaries_published_total",
		Help: "Dining summaries handed to the message queue",
	}, []string{"status"})

	// Chat relay
	ChatRelayTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "concierge_chat_relay_total",
		Help: "Chat messages relayed to the dialog service",
	}, []string{"status"})

	ChatRelayLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "concierge_chat_relay_latency_seconds",
		Help:    "Round trip latency of the dialog service",
		Buckets: prometheus.DefBuckets,
	})

	// Notifier
	SMSSentTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "concierge_sms_sent_total",
		Help: "Suggestion SMS attempts by outcome",
	}, []string{"status"})
)
