package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters for the analysis pipeline.
type Metrics struct {
	AnalyzeRequests  prometheus.Counter
	WeatherFallbacks prometheus.Counter
	GeocodeFallbacks prometheus.Counter
	ArchiveErrors    prometheus.Counter

	// RiskOutcomes counts assessments by how the verdict was produced,
	// labels: outcome={parsed,extracted,heuristic,no_candidates}
	RiskOutcomes *prometheus.CounterVec
}

func newMetrics() *Metrics {
	return &Metrics{
		AnalyzeRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hazardwatch",
			Name:      "analyze_requests_total",
			Help:      "Total analysis requests accepted after validation.",
		}),
		WeatherFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hazardwatch",
			Name:      "weather_fallbacks_total",
			Help:      "Times the fixed fallback weather record was served.",
		}),
		GeocodeFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hazardwatch",
			Name:      "geocode_fallbacks_total",
			Help:      "Times the synthesized location label was used.",
		}),
		ArchiveErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hazardwatch",
			Name:      "archive_errors_total",
			Help:      "Failed writes to the report/chat archive.",
		}),
		RiskOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hazardwatch",
			Name:      "risk_outcomes_total",
			Help:      "Risk assessments by verdict source.",
		}, []string{"outcome"}),
	}
}

// NewMetrics creates all metrics and registers them with the default registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.AnalyzeRequests,
		m.WeatherFallbacks,
		m.GeocodeFallbacks,
		m.ArchiveErrors,
		m.RiskOutcomes,
	)
	return m
}

// NewMetricsForTesting creates unregistered metrics for use in tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}
