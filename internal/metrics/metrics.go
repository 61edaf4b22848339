// Package metrics counts evaluations for the /metrics endpoint.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/specialistvlad/bmicalc/internal/bmi"
)

const namespace = "bmicalc"

// Recorder owns a private registry so several Apps (e.g. in tests) never
// collide on registration.
type Recorder struct {
	registry    *prometheus.Registry
	evaluations *prometheus.CounterVec
}

// New creates a Recorder with its collectors registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "evaluations_total",
				Help:      "Count of BMI evaluations by outcome and status.",
			},
			[]string{"outcome", "status"},
		),
	}
	r.registry.MustRegister(r.evaluations)
	return r
}

// Observe records one outcome. Failed validations use status "none".
func (r *Recorder) Observe(o bmi.Outcome) {
	if !o.OK() {
		r.evaluations.WithLabelValues("invalid", "none").Inc()
		return
	}
	r.evaluations.WithLabelValues("ok", o.Result.Status.String()).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Evaluations exposes the counter for tests.
func (r *Recorder) Evaluations() *prometheus.CounterVec {
	return r.evaluations
}
