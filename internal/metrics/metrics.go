package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slipfall_calculations_total",
			Help: "Total number of calculations processed",
		},
		[]string{"definition", "outcome"},
	)

	CalculationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "slipfall_calculation_duration_seconds",
			Help:    "Duration of a single calculation in seconds",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		},
		[]string{"definition"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slipfall_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"route", "status"},
	)

	HTTPThrottled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "slipfall_http_throttled_total",
			Help: "Total number of HTTP requests rejected by the rate limiter",
		},
	)
)
