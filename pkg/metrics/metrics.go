package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "smartfloors"

// Metrics owns a private registry, so instances are independent of each other
// and of the global default registerer.
type Metrics struct {
	Registry *prometheus.Registry

	ReadingsIngested   *prometheus.CounterVec
	Predictions        *prometheus.CounterVec
	AlertsCreated      *prometheus.CounterVec
	AlertWriteFailures prometheus.Counter
	SinkFailures       *prometheus.CounterVec
	RateLimited        *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		ReadingsIngested: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "readings_ingested_total",
			Help:      "Sensor readings persisted, by ingestion source.",
		}, []string{"source"}),
		Predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      "Forecasts computed, by variable and risk level.",
		}, []string{"variable", "risk"}),
		AlertsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_created_total",
			Help:      "Alerts persisted, by variable and severity.",
		}, []string{"variable", "severity"}),
		AlertWriteFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alert_write_failures_total",
			Help:      "High-risk forecasts whose alert could not be persisted.",
		}),
		SinkFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sink_failures_total",
			Help:      "Failed best-effort writes to downstream sinks, by sink.",
		}, []string{"sink"}),
		RateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the per-floor rate limiter, by surface.",
		}, []string{"surface"}),
	}

	m.Registry.MustRegister(
		m.ReadingsIngested,
		m.Predictions,
		m.AlertsCreated,
		m.AlertWriteFailures,
		m.SinkFailures,
		m.RateLimited,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
