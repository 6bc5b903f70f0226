// Package metrics exposes Prometheus counters for the dispatch engine.
// Counters are registered on the default registry via promauto; an embedding
// application serves them through its own /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DispatchesTotal counts dispatch calls by template name and aggregate status.
	DispatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notify_dispatches_total",
		Help: "Total number of notification dispatch calls.",
	}, []string{"template", "status"})

	// ChannelSendsTotal counts per-medium delivery attempts by outcome.
	ChannelSendsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notify_channel_sends_total",
		Help: "Total number of per-channel delivery attempts.",
	}, []string{"medium", "outcome"})
)

// Outcome labels for ChannelSendsTotal.
const (
	OutcomeSent        = "sent"
	OutcomeFailed      = "failed"
	OutcomeNoChannel   = "no_channel"
	OutcomeNoRecipient = "no_recipient"
	OutcomeUnsupported = "unsupported"
)
