// Package metrics exposes Prometheus collectors for the RPC surface and the
// application lifecycle. A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "rentiful"

// Application lifecycle events.
const (
	EventSubmitted = "submitted"
	EventApproved  = "approved"
	EventDenied    = "denied"
	EventConflict  = "conflict"
)

// Payment realization events.
const (
	EventPaymentCreated = "created"
	EventPaymentOverdue = "overdue"
)

// Metrics holds the collectors registered on its own Registry.
type Metrics struct {
	Registry *prometheus.Registry

	rpcRequests  *prometheus.CounterVec
	rpcDuration  *prometheus.HistogramVec
	applications *prometheus.CounterVec
	payments     *prometheus.CounterVec
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),

		rpcRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "rpc",
				Name:      "requests_total",
				Help:      "Total number of RPCs handled.",
			},
			[]string{"procedure", "code"},
		),

		rpcDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "rpc",
				Name:      "request_duration_seconds",
				Help:      "Duration of RPCs.",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
			},
			[]string{"procedure"},
		),

		applications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "applications",
				Name:      "events_total",
				Help:      "Application lifecycle events.",
			},
			[]string{"event"},
		),

		payments: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "payments",
				Name:      "events_total",
				Help:      "Payment rows created or marked overdue by the realization job.",
			},
			[]string{"event"},
		),
	}

	m.Registry.MustRegister(
		m.rpcRequests,
		m.rpcDuration,
		m.applications,
		m.payments,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// ObserveRPC records one finished RPC.
func (m *Metrics) ObserveRPC(procedure, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.rpcRequests.WithLabelValues(procedure, code).Inc()
	m.rpcDuration.WithLabelValues(procedure).Observe(d.Seconds())
}

// ApplicationEvent counts a lifecycle event.
func (m *Metrics) ApplicationEvent(event string) {
	if m == nil {
		return
	}
	m.applications.WithLabelValues(event).Inc()
}

// PaymentEvents adds n to a payment event counter.
func (m *Metrics) PaymentEvents(event string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.payments.WithLabelValues(event).Add(float64(n))
}
