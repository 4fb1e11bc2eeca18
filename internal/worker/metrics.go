package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cyclesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meterclient_cycles_total",
			Help: "Submission cycles run by the meter client, by outcome.",
		},
		[]string{"outcome"},
	)
	diagnosticsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meterclient_diagnostics_streams_total",
			Help: "Diagnostics streams sent by the meter client, by gRPC code.",
		},
		[]string{"code"},
	)
)
