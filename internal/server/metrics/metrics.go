// Package metrics exposes Prometheus instruments for the auth API.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Metrics owns its registry so several servers (and tests) can coexist in
// one process.
type Metrics struct {
	registry        *prometheus.Registry
	authOperations  *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	f := promauto.With(reg)
	return &Metrics{
		registry: reg,
		authOperations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "gophauth_auth_operations_total",
			Help: "Total number of auth operations by operation and outcome",
		}, []string{"operation", "outcome"}),
		requestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gophauth_http_request_duration_seconds",
			Help:    "Histogram of HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// RecordOperation counts one register, login, user_data or logout call.
func (m *Metrics) RecordOperation(operation, outcome string) {
	m.authOperations.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) ObserveRequest(method, route, status string, d time.Duration) {
	m.requestDuration.WithLabelValues(method, route, status).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
