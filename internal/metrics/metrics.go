// Package metrics exposes Prometheus collectors for the HTTP layer and the
// affordability calculations.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"

	OutcomeAffordable = "affordable"
	OutcomeZero       = "zero"
	OutcomeRejected   = "rejected"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "affordability_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "affordability_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
		},
		[]string{LabelMethod, LabelPath},
	)
)

// Business Metrics
var (
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "affordability_calculations_total",
			Help: "Affordability calculations by outcome",
		},
		[]string{LabelOutcome},
	)

	PurchasePrice = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "affordability_purchase_price",
			Help:    "Maximum affordable purchase price of successful calculations",
			Buckets: prometheus.ExponentialBuckets(50_000, 2, 9),
		},
	)

	KeyRateFetchErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "affordability_key_rate_fetch_errors_total",
			Help: "Failed key rate refreshes",
		},
	)
)

// ObserveCalculation records the outcome of a solved calculation
func ObserveCalculation(price float64) {
	if price <= 0 {
		CalculationsTotal.WithLabelValues(OutcomeZero).Inc()
		return
	}
	CalculationsTotal.WithLabelValues(OutcomeAffordable).Inc()
	PurchasePrice.Observe(price)
}
