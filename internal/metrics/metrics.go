// Package metrics exposes Prometheus instruments for the HTTP surface and the
// inventory store.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the service instruments on a private registry so tests can
// run fully independent instances.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	ItemCount       prometheus.Gauge
	MutationsTotal  *prometheus.CounterVec
}

// New creates and registers all instruments.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests processed, partitioned by method, route and status code.",
		}, []string{"method", "path", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		ItemCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "inventory_items",
			Help: "Current number of items in the inventory store.",
		}),
		MutationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "inventory_mutations_total",
			Help: "Successful store mutations by operation.",
		}, []string{"op"}),
	}

	reg.MustRegister(m.RequestsTotal, m.RequestDuration, m.ItemCount, m.MutationsTotal)
	reg.MustRegister(collectors.NewGoCollector())

	return m
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
