// Package metrics exposes conversion and HTTP metrics for Prometheus scraping.
//
// Metrics live on a private registry rather than the global default one, so
// several instances can coexist in tests.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Conversion directions.
const (
	DirectionRomanToArabic = "r2a"
	DirectionArabicToRoman = "a2r"
)

// Conversion outcomes.
const (
	OutcomeOK         = "ok"
	OutcomeMissing    = "missing"
	OutcomeInvalid    = "invalid"
	OutcomeOutOfRange = "out_of_range"
	OutcomeNotInteger = "not_integer"
)

// Metrics holds the service's collectors and the registry they belong to.
type Metrics struct {
	registry *prometheus.Registry

	conversionsTotal *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
}

// New creates and registers all collectors, including the Go runtime and
// process collectors.
func New() (*Metrics, error) {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		conversionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "roman_conversions_total",
				Help: "Total number of conversion requests by direction and outcome",
			},
			[]string{"direction", "outcome"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "roman_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"method", "route", "status"},
		),
	}

	toRegister := []prometheus.Collector{
		m.conversionsTotal,
		m.requestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	}
	for _, c := range toRegister {
		if err := m.registry.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// RecordConversion counts one conversion request.
func (m *Metrics) RecordConversion(direction, outcome string) {
	m.conversionsTotal.WithLabelValues(direction, outcome).Inc()
}

// ObserveRequest records the latency of one HTTP request. route should be the
// route pattern, not the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
