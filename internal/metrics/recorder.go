// Package metrics records relay outcomes as Prometheus metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels of relayed messages.
const (
	OutcomeDisplayed = "displayed"
	OutcomeDropped   = "dropped"
)

// Recorder holds the relay metrics on its own registry so several recorders
// can coexist in one process (tests, embedded relays).
type Recorder struct {
	registry        *prometheus.Registry
	messagesTotal   *prometheus.CounterVec
	fallbackTotal   *prometheus.CounterVec
	displayDuration prometheus.Histogram
}

// NewRecorder creates a Recorder with a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		messagesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "relay_messages_total",
				Help: "Total number of inbound messages by outcome",
			},
			[]string{"outcome"},
		),
		fallbackTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "relay_fallback_content_total",
				Help: "Total number of notifications that used fallback content, by field",
			},
			[]string{"field"},
		),
		displayDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "relay_display_duration_seconds",
				Help:    "Duration of notification display requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

// ObserveMessage records one handled message.
func (r *Recorder) ObserveMessage(outcome string, duration time.Duration) {
	r.messagesTotal.WithLabelValues(outcome).Inc()
	r.displayDuration.Observe(duration.Seconds())
}

// IncFallback counts a notification field ("title" or "body") filled from
// fallback content.
func (r *Recorder) IncFallback(field string) {
	r.fallbackTotal.WithLabelValues(field).Inc()
}

// Handler exposes the recorder's registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
