package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ppiankov/symptriage/internal/model"
)

// Metrics holds the server's Prometheus collectors on a private registry
type Metrics struct {
	registry    *prometheus.Registry
	assessments *prometheus.CounterVec
	requests    *prometheus.CounterVec
	rateLimited prometheus.Counter
}

// NewMetrics creates and registers the collectors
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		assessments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "symptriage",
			Name:      "assessments_total",
			Help:      "Assessments served, by input source and risk tier.",
		}, []string{"source", "tier"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "symptriage",
			Name:      "http_requests_total",
			Help:      "HTTP requests, by method, route and status.",
		}, []string{"method", "route", "status"}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "symptriage",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the per-client rate limiter.",
		}),
	}
	m.registry.MustRegister(m.assessments, m.requests, m.rateLimited)
	return m
}

// ObserveAssessment counts a served assessment
func (m *Metrics) ObserveAssessment(a *model.Assessment) {
	m.assessments.WithLabelValues(string(a.Source), a.Tier.String()).Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
