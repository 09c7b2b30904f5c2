// Package metrics exposes Prometheus collectors for the ordering service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ordering"

// Saga signal outcomes.
const (
	OutcomeApplied   = "applied"
	OutcomeSkipped   = "skipped"
	OutcomeMalformed = "malformed"
	OutcomeRetried   = "retried"
)

// Metrics owns its registry so that several instances can coexist in tests.
//
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	Requests        *prometheus.CounterVec
	LatencyMS       *prometheus.HistogramVec
	SagaSignals     *prometheus.CounterVec
	OutboxPublished *prometheus.CounterVec
	OutboxFailed    *prometheus.CounterVec
}

func New(service string) *Metrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: service,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: service,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})
	sagaSignals := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: service,
		Name:      "saga_signals_total",
		Help:      "Saga response messages by signal and outcome.",
	}, []string{"signal", "outcome"})
	published := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: service,
		Name:      "outbox_published_total",
		Help:      "Outbox messages delivered to the broker.",
	}, []string{"kind"})
	failed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: service,
		Name:      "outbox_publish_failures_total",
		Help:      "Outbox messages the broker did not accept.",
	}, []string{"kind"})

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		requests, latency, sagaSignals, published, failed,
	)

	return &Metrics{
		registry:        registry,
		Requests:        requests,
		LatencyMS:       latency,
		SagaSignals:     sagaSignals,
		OutboxPublished: published,
		OutboxFailed:    failed,
	}
}

func (m *Metrics) ObserveRequest(handler string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(handler, strconv.Itoa(status)).Inc()
	m.LatencyMS.WithLabelValues(handler).Observe(float64(elapsed) / float64(time.Millisecond))
}

func (m *Metrics) ObserveSagaSignal(signal, outcome string) {
	if m == nil {
		return
	}
	m.SagaSignals.WithLabelValues(signal, outcome).Inc()
}

func (m *Metrics) ObserveOutboxPublish(kind string, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.OutboxFailed.WithLabelValues(kind).Inc()
		return
	}
	m.OutboxPublished.WithLabelValues(kind).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
