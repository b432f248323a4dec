package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the report workflow.
type Metrics struct {
	// Mutations by operation and outcome code ("ok" on success)
	Mutations *prometheus.CounterVec

	// Reports created, split official/personal
	ReportsCreated *prometheus.CounterVec

	// Steps validated, by step id
	StepValidations *prometheus.CounterVec

	// Writes refused because the report is locked
	LockedWrites prometheus.Counter

	// Spreadsheet exports by variant
	Exports *prometheus.CounterVec
}

// New creates a new Metrics instance with all report metrics registered.
func New() *Metrics {
	return &Metrics{
		Mutations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "portail_rse_csrd_mutations_total",
			Help: "Report workflow mutations by operation and outcome",
		}, []string{"operation", "outcome"}),

		ReportsCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "portail_rse_csrd_reports_created_total",
			Help: "Reports created by kind",
		}, []string{"kind"}), // kind: "officiel", "personnel"

		StepValidations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "portail_rse_csrd_step_validations_total",
			Help: "Validated report steps by step id",
		}, []string{"step"}),

		LockedWrites: promauto.NewCounter(prometheus.CounterOpts{
			Name: "portail_rse_csrd_locked_writes_total",
			Help: "Writes refused on locked reports",
		}),

		Exports: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "portail_rse_csrd_exports_total",
			Help: "Issue spreadsheet exports by variant",
		}, []string{"variant"}),
	}
}

func (m *Metrics) IncrementMutation(operation, outcome string) {
	if m != nil {
		m.Mutations.WithLabelValues(operation, outcome).Inc()
	}
}

func (m *Metrics) IncrementCreated(personal bool) {
	if m == nil {
		return
	}
	kind := "officiel"
	if personal {
		kind = "personnel"
	}
	m.ReportsCreated.WithLabelValues(kind).Inc()
}

func (m *Metrics) IncrementStepValidation(step string) {
	if m != nil {
		m.StepValidations.WithLabelValues(step).Inc()
	}
}

func (m *Metrics) IncrementLockedWrite() {
	if m != nil {
		m.LockedWrites.Inc()
	}
}

func (m *Metrics) IncrementExport(variant string) {
	if m != nil {
		m.Exports.WithLabelValues(variant).Inc()
	}
}
