package grpcserver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	batchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meterreader_batches_total",
			Help: "Reading batches handled by AddReading, by outcome.",
		},
		[]string{"outcome"},
	)
	readingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meterreader_readings_total",
			Help: "Readings received through AddReading, by outcome.",
		},
		[]string{"outcome"},
	)
	diagnosticsReadingsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "meterreader_diagnostics_readings_total",
			Help: "Readings observed on the diagnostics stream.",
		},
	)
	tokensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meterreader_tokens_total",
			Help: "Token requests, by outcome.",
		},
		[]string{"outcome"},
	)
	authFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meterreader_auth_failures_total",
			Help: "Calls rejected by the bearer token check, by method.",
		},
		[]string{"method"},
	)
)

const (
	outcomeAccepted = "accepted"
	outcomeRejected = "rejected"
	outcomeDeclined = "declined"
	outcomeError    = "error"
	outcomeIssued   = "issued"
	outcomeDenied   = "denied"
)

func observeBatch(outcome string, readings int) {
	batchesTotal.WithLabelValues(outcome).Inc()
	readingsTotal.WithLabelValues(outcome).Add(float64(readings))
}
