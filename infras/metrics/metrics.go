package metrics

import (
	"net/http"

	"beautyhub/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultNamespace = "beautyhub"

// Metrics holds the application collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	RequestTotal    *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RateLimited     prometheus.Counter

	ReservationsCommitted *prometheus.CounterVec
	SlotConflicts         *prometheus.CounterVec
	CommitRetries         prometheus.Counter
	StatusTransitions     *prometheus.CounterVec
	NotificationsFailed   *prometheus.CounterVec
}

func New(cfg *config.Config) *Metrics {
	namespace := cfg.Metrics.Namespace
	if namespace == "" {
		namespace = defaultNamespace
	}

	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		RequestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"method", "route"}),
		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Total number of requests rejected by the rate limiter",
		}),
		ReservationsCommitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "reservations_committed_total",
			Help:      "Total number of committed reservations",
		}, []string{"tenant"}),
		SlotConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "slot_conflicts_total",
			Help:      "Total number of commits rejected because the slot was taken",
		}, []string{"tenant"}),
		CommitRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "commit_retries_total",
			Help:      "Total number of commit attempts retried after a transient storage error",
		}),
		StatusTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "status_transitions_total",
			Help:      "Total number of reservation status transitions",
		}, []string{"from", "to"}),
		NotificationsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notification",
			Name:      "publish_failed_total",
			Help:      "Total number of notifications that could not be published",
		}, []string{"kind"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestTotal,
		m.RequestDuration,
		m.RateLimited,
		m.ReservationsCommitted,
		m.SlotConflicts,
		m.CommitRetries,
		m.StatusTransitions,
		m.NotificationsFailed,
	)

	return m
}

// Handler exposes the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
