package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics tracks scoring outcomes and latency.
type Metrics struct {
	registry *prometheus.Registry

	DecisionsTotal     *prometheus.CounterVec
	RiskScore          prometheus.Histogram
	EvaluationDuration prometheus.Histogram
	PreconditionFaults *prometheus.CounterVec
}

// New registers all metrics on a fresh registry, together with the Go and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		DecisionsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "loan_engine_decisions_total",
			Help: "Total number of underwriting decisions by verdict",
		}, []string{"verdict"}),
		RiskScore: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "loan_engine_risk_score",
			Help:    "Distribution of returned risk scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		}),
		EvaluationDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "loan_engine_evaluation_duration_seconds",
			Help:    "Duration of a single scoring call",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),
		PreconditionFaults: f.NewCounterVec(prometheus.CounterOpts{
			Name: "loan_engine_precondition_faults_total",
			Help: "Applicant records rejected as engine precondition violations, by field",
		}, []string{"field"}),
	}
}

// ObserveDecision records a completed decision.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveDecision(verdict string, riskScore float64, start time.Time) {
	m.DecisionsTotal.WithLabelValues(verdict).Inc()
	m.RiskScore.Observe(riskScore)
	m.EvaluationDuration.Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncPreconditionFault(field string) {
	m.PreconditionFaults.WithLabelValues(field).Inc()
}

// Registry exposes the underlying registry, e.g. for test gathering.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
