package remote

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/five82/brevity/internal/nav"
)

// Metrics counts navigation requests by outcome and input source.
type Metrics struct {
	registry    *prometheus.Registry
	navigations *prometheus.CounterVec
	ordinal     prometheus.Gauge
	reloads     *prometheus.CounterVec
}

// NewMetrics returns Metrics on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		navigations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "brevity_navigations_total",
				Help: "Navigation requests by outcome and input source",
			},
			[]string{"outcome", "source"},
		),
		ordinal: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "brevity_slide_ordinal",
			Help: "1-based reading-order index of the current slide",
		}),
		reloads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "brevity_reloads_total",
				Help: "Presentation reloads by result",
			},
			[]string{"result"},
		),
	}
	m.registry.MustRegister(m.navigations, m.ordinal, m.reloads)
	return m
}

// Observe records res as coming from source.
func (m *Metrics) Observe(source string, res nav.Result) {
	if m == nil {
		return
	}
	m.navigations.WithLabelValues(res.Outcome.String(), source).Inc()
}

// SetOrdinal records the reading-order index of the current slide.
func (m *Metrics) SetOrdinal(n int) {
	if m == nil {
		return
	}
	m.ordinal.Set(float64(n))
}

// Reloaded records a reload attempt.
func (m *Metrics) Reloaded(err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.reloads.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
