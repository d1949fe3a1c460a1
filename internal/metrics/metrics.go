package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/notifyhub/apprise-node/internal/domain"
	"github.com/notifyhub/apprise-node/internal/processor"
)

// Metrics groups all Prometheus instruments used across the application.
// Registered once at startup via New(); passed by pointer wherever needed.
type Metrics struct {
	NotificationsSent   *prometheus.CounterVec
	NotificationsFailed *prometheus.CounterVec
	NotifyLatency       *prometheus.HistogramVec
	ItemsInvalid        prometheus.Counter
	Batches             *prometheus.CounterVec
}

// New registers all instruments with the given Prometheus registerer and
// returns the populated Metrics struct.
// Using a custom registry (instead of prometheus.DefaultRegisterer) keeps
// tests isolated and avoids global state.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		NotificationsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "apprise_notifications_sent_total",
			Help: "Total number of notifications accepted by the Apprise API.",
		}, []string{"type"}),

		NotificationsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "apprise_notifications_failed_total",
			Help: "Total number of notifications rejected by, or not delivered to, the Apprise API.",
		}, []string{"type"}),

		NotifyLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "apprise_notify_duration_seconds",
			Help:    "Latency of successful POST /notify calls.",
			Buckets: prometheus.DefBuckets,
		}, []string{"type"}),

		ItemsInvalid: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "apprise_items_invalid_total",
			Help: "Total number of items skipped because their parameters did not validate.",
		}),

		Batches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "apprise_batches_total",
			Help: "Total number of executed batches by policy and outcome.",
		}, []string{"policy", "outcome"}),
	}

	reg.MustRegister(
		m.NotificationsSent,
		m.NotificationsFailed,
		m.NotifyLatency,
		m.ItemsInvalid,
		m.Batches,
	)

	return m
}

// ProcessorHooks returns the callbacks expected by processor.MetricHooks.
// Centralises the prometheus observation calls so the processor stays import-free.
func (m *Metrics) ProcessorHooks() processor.MetricHooks {
	return processor.MetricHooks{
		OnSent: func(t domain.NotifyType, latency time.Duration) {
			m.NotificationsSent.WithLabelValues(string(t)).Inc()
			m.NotifyLatency.WithLabelValues(string(t)).Observe(latency.Seconds())
		},
		OnFailed: func(t domain.NotifyType) {
			m.NotificationsFailed.WithLabelValues(string(t)).Inc()
		},
		OnInvalid: m.ItemsInvalid.Inc,
		OnBatch: func(policy domain.Policy, aborted bool) {
			outcome := "completed"
			if aborted {
				outcome = "aborted"
			}
			m.Batches.WithLabelValues(string(policy), outcome).Inc()
		},
	}
}
