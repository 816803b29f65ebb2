package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EvaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mfsim_evaluations_total",
			Help: "Total number of model evaluations by policy mix",
		},
		[]string{"fiscal_response", "monetary_policy"},
	)

	InvalidInputsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mfsim_invalid_inputs_total",
			Help: "Total number of rejected evaluation requests by field",
		},
		[]string{"field"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mfsim_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	ChartCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mfsim_chart_cache_lookups_total",
			Help: "Chart cache lookups by result (hit or miss)",
		},
		[]string{"result"},
	)
)
