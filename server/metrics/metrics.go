package metrics

import (
	"net/http"

	pg "github.com/PARSHURAMA9/BASIC-MATH/server/problem_generator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects worksheet counters. A nil *Metrics records nothing.
type Metrics struct {
	generated *prometheus.CounterVec
	problems  *prometheus.CounterVec
	exports   *prometheus.CounterVec
	rejected  *prometheus.CounterVec
	rpcs      *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "worksheet_generated_total",
			Help: "Problem sets generated, by operation and randomization level.",
		}, []string{"operation", "level"}),
		problems: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "worksheet_problems_generated_total",
			Help: "Problems generated, by operation.",
		}, []string{"operation"}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "worksheet_pdf_exports_total",
			Help: "PDF documents rendered, by operation.",
		}, []string{"operation"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "worksheet_rejected_total",
			Help: "Requests refused before any output was produced.",
		}, []string{"reason"}),
		rpcs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "worksheet_rpc_requests_total",
			Help: "Worksheet RPCs handled, by method and status code.",
		}, []string{"method", "code"}),
	}
	reg.MustRegister(m.generated, m.problems, m.exports, m.rejected, m.rpcs)
	return m
}

func (m *Metrics) Generated(ps pg.ProblemSet) {
	if m == nil {
		return
	}
	m.generated.WithLabelValues(string(ps.Operation), ps.Level.String()).Inc()
	m.problems.WithLabelValues(string(ps.Operation)).Add(float64(len(ps.Problems)))
}

func (m *Metrics) Exported(op pg.Operation) {
	if m == nil {
		return
	}
	m.exports.WithLabelValues(string(op)).Inc()
}

// Rejected counts a refused request; reason is a short stable label such as
// "invalid_range" or "empty_export".
func (m *Metrics) Rejected(reason string) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) ObserveRPC(method, code string) {
	if m == nil {
		return
	}
	m.rpcs.WithLabelValues(method, code).Inc()
}

// Handler serves the gathered metrics in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
