// Package metrics exposes the bot's prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UpdatesTotal counts processed updates by outcome.
	UpdatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bot_updates_total",
		Help: "Inbound updates processed, labeled by outcome.",
	}, []string{"result"})

	// CommandsTotal counts emitted commands by variant.
	CommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bot_commands_total",
		Help: "Commands produced by the router, labeled by variant.",
	}, []string{"command"})

	// ProviderRequests counts report provider calls by method and status.
	ProviderRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "report_provider_requests_total",
		Help: "Report provider calls, labeled by method and status.",
	}, []string{"method", "status"})

	// ProviderDuration observes report provider call latency.
	ProviderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "report_provider_request_seconds",
		Help:    "Report provider call latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})
)
