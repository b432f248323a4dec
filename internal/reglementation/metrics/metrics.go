package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// StateInsufficient labels evaluations that lacked data.
const StateInsufficient = "insuffisant"

// Metrics provides observability for the applicability orchestrator.
type Metrics struct {
	// Verdicts by rule and state
	Evaluations *prometheus.CounterVec

	// Full evaluation latency, filings included
	EvaluateLatency prometheus.Histogram

	// Filings lookups latency by source
	FilingsLatency *prometheus.HistogramVec

	Simulations *prometheus.CounterVec
}

func New() *Metrics {
	return &Metrics{
		Evaluations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "portail_rse_reglementation_evaluations_total",
			Help: "Total regulation verdicts by rule and state",
		}, []string{"rule", "state"}),

		EvaluateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "portail_rse_reglementation_evaluate_duration_seconds",
			Help:    "Duration of a full applicability evaluation including filings lookups",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),

		FilingsLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "portail_rse_reglementation_filings_duration_seconds",
			Help:    "Duration of filings lookups by source",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"source"}), // source: "bdese", "bges", "index_egapro", "csrd"

		Simulations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "portail_rse_reglementation_simulations_total",
			Help: "Total simulations by outcome",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) IncrementEvaluation(rule, state string) {
	if m != nil {
		m.Evaluations.WithLabelValues(rule, state).Inc()
	}
}

func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}

func (m *Metrics) ObserveFilingsLatency(source string, d time.Duration) {
	if m != nil {
		m.FilingsLatency.WithLabelValues(source).Observe(d.Seconds())
	}
}

// IncrementSimulation records a simulation; outcome is "cached" or "uncached".
func (m *Metrics) IncrementSimulation(outcome string) {
	if m != nil {
		m.Simulations.WithLabelValues(outcome).Inc()
	}
}
