// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Chat metrics
	MessagesTotal          *prometheus.CounterVec
	MessageDurationSeconds *prometheus.HistogramVec
	EmotionsTotal          *prometheus.CounterVec
	ResolutionsTotal       *prometheus.CounterVec
	AttachmentFetchesTotal *prometheus.CounterVec

	// Catalog metrics
	CatalogReloadsTotal          *prometheus.CounterVec
	CatalogReloadDurationSeconds prometheus.Histogram
	CatalogPersons               prometheus.Gauge
	CatalogFeedErrorsTotal       prometheus.Counter

	// HTTP metrics
	HTTPErrorsTotal *prometheus.CounterVec

	// Rate limiter metrics
	RateLimiterDropped    *prometheus.CounterVec
	RateLimiterActiveKeys *prometheus.GaugeVec
}

// New creates a new Metrics instance with all metrics registered
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		MessagesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "findmyprof_messages_total",
				Help: "Total number of chat messages by classified intent",
			},
			[]string{"intent"},
		),

		MessageDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "findmyprof_message_duration_seconds",
				Help:    "Chat message processing duration in seconds by intent",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"intent"},
		),

		EmotionsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "findmyprof_emotions_total",
				Help: "Total number of chat messages by detected emotion",
			},
			[]string{"emotion"},
		),

		ResolutionsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "findmyprof_resolutions_total",
				Help: "Total number of catalog lookups by kind and outcome",
			},
			[]string{"kind", "outcome"}, // kind: professor, subject; outcome: found, not_found
		),

		AttachmentFetchesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "findmyprof_attachment_fetches_total",
				Help: "Total number of attachment lookups by status",
			},
			[]string{"status"}, // status: success, error
		),

		CatalogReloadsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "findmyprof_catalog_reloads_total",
				Help: "Total number of catalog reloads by trigger and status",
			},
			[]string{"trigger", "status"}, // trigger: startup, api, schedule
		),

		CatalogReloadDurationSeconds: promauto.With(registry).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "findmyprof_catalog_reload_duration_seconds",
				Help:    "Catalog reload duration in seconds",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
			},
		),

		CatalogPersons: promauto.With(registry).NewGauge(
			prometheus.GaugeOpts{
				Name: "findmyprof_catalog_persons",
				Help: "Number of professors in the active catalog snapshot",
			},
		),

		CatalogFeedErrorsTotal: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "findmyprof_catalog_feed_errors_total",
				Help: "Total number of reloads whose row feed failed and published an empty catalog",
			},
		),

		HTTPErrorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "findmyprof_http_errors_total",
				Help: "Total HTTP errors by type and endpoint",
			},
			[]string{"error_type", "endpoint"}, // error_type: validation, rate_limit, reload
		),

		RateLimiterDropped: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "findmyprof_rate_limiter_dropped_total",
				Help: "Total number of requests dropped by rate limiter",
			},
			[]string{"limiter_type"},
		),

		RateLimiterActiveKeys: promauto.With(registry).NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "findmyprof_rate_limiter_active_keys",
				Help: "Number of keys currently tracked by a keyed rate limiter",
			},
			[]string{"limiter_type"},
		),
	}

	return m
}

// RecordMessage records a processed chat message.
func (m *Metrics) RecordMessage(intent, emotion string, duration float64) {
	m.MessagesTotal.WithLabelValues(intent).Inc()
	m.MessageDurationSeconds.WithLabelValues(intent).Observe(duration)
	m.EmotionsTotal.WithLabelValues(emotion).Inc()
}

// RecordResolution records whether a professor or subject lookup matched.
func (m *Metrics) RecordResolution(kind string, found bool) {
	outcome := "not_found"
	if found {
		outcome = "found"
	}
	m.ResolutionsTotal.WithLabelValues(kind, outcome).Inc()
}

// RecordAttachmentFetch records an attachment lookup.
func (m *Metrics) RecordAttachmentFetch(status string) {
	m.AttachmentFetchesTotal.WithLabelValues(status).Inc()
}

// RecordCatalogReload records a reload run and its duration.
func (m *Metrics) RecordCatalogReload(trigger, status string, duration float64) {
	m.CatalogReloadsTotal.WithLabelValues(trigger, status).Inc()
	m.CatalogReloadDurationSeconds.Observe(duration)
}

// SetCatalogPersons sets the active catalog size.
func (m *Metrics) SetCatalogPersons(n int) {
	m.CatalogPersons.Set(float64(n))
}

// RecordCatalogFeedError records a reload whose row feed failed.
func (m *Metrics) RecordCatalogFeedError() {
	m.CatalogFeedErrorsTotal.Inc()
}

// RecordHTTPError records HTTP error metrics
func (m *Metrics) RecordHTTPError(errorType, endpoint string) {
	m.HTTPErrorsTotal.WithLabelValues(errorType, endpoint).Inc()
}

// RecordRateLimiterDrop records a request dropped by rate limiter
func (m *Metrics) RecordRateLimiterDrop(limiterType string) {
	m.RateLimiterDropped.WithLabelValues(limiterType).Inc()
}

// SetRateLimiterActiveKeys sets the number of tracked keys for a limiter.
func (m *Metrics) SetRateLimiterActiveKeys(limiterType string, count int) {
	m.RateLimiterActiveKeys.WithLabelValues(limiterType).Set(float64(count))
}

// RegisterLogQueue exports the remote log queue on registry. stats is read
// on every scrape.
func RegisterLogQueue(registry *prometheus.Registry, stats func() (pending int, shed, dropped uint64)) {
	factory := promauto.With(registry)

	factory.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "findmyprof_log_queue_pending",
			Help: "Log records waiting to be shipped to Better Stack",
		},
		func() float64 {
			pending, _, _ := stats()
			return float64(pending)
		},
	)

	factory.NewCounterFunc(
		prometheus.CounterOpts{
			Name: "findmyprof_log_records_shed_total",
			Help: "Below-warn log records skipped while the remote queue was under pressure",
		},
		func() float64 {
			_, shed, _ := stats()
			return float64(shed)
		},
	)

	factory.NewCounterFunc(
		prometheus.CounterOpts{
			Name: "findmyprof_log_records_dropped_total",
			Help: "Log records lost because the remote queue was full or closed",
		},
		func() float64 {
			_, _, dropped := stats()
			return float64(dropped)
		},
	)
}
