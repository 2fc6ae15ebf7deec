package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "linkedcalc"

// Outcome labels of the evaluations counter.
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
	// OutcomeNonFinite counts evaluations that produced ±Inf or NaN.
	OutcomeNonFinite = "non_finite"
)

// Recorder owns the calculator's prometheus collectors.
type Recorder struct {
	registry    *prometheus.Registry
	evaluations *prometheus.CounterVec
	validations *prometheus.CounterVec
	duration    prometheus.Histogram
}

// NewRecorder registers the collectors on a fresh registry, so several
// recorders can coexist in tests.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "evaluations_total",
				Help:      "Total number of expression evaluations by outcome",
			},
			[]string{"outcome"},
		),
		validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validations_total",
				Help:      "Total number of expression validations by result",
			},
			[]string{"valid"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "evaluation_duration_seconds",
				Help:      "Duration of expression evaluations",
				Buckets:   prometheus.ExponentialBuckets(1e-7, 10, 7),
			},
		),
	}

	r.registry.MustRegister(
		r.evaluations,
		r.validations,
		r.duration,
		collectors.NewGoCollector(),
	)
	return r
}

func (r *Recorder) ObserveEvaluation(outcome string, seconds float64) {
	r.evaluations.WithLabelValues(outcome).Inc()
	r.duration.Observe(seconds)
}

func (r *Recorder) ObserveValidation(valid bool) {
	label := "false"
	if valid {
		label = "true"
	}
	r.validations.WithLabelValues(label).Inc()
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
