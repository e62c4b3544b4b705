package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the server's Prometheus instruments. It uses its own
// registry so tests can construct as many instances as they like without
// duplicate-registration panics.
type Metrics struct {
	registry *prometheus.Registry

	ActiveRooms      prometheus.Gauge
	ConnectedClients prometheus.Gauge
	ClaimsSubmitted  *prometheus.CounterVec
	ClaimLatency     prometheus.Histogram
}

// New creates and registers the server metrics under the given namespace.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		ActiveRooms: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_rooms",
			Help:      "Number of live game rooms",
		}),
		ConnectedClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "connected_clients",
			Help:      "Number of connected websocket clients",
		}),
		ClaimsSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "claims_submitted_total",
			Help:      "Total claims processed, by result",
		}, []string{"result"}),
		ClaimLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "claim_handling_seconds",
			Help:      "Claim handling latency inside the room loop",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
		}),
	}

	reg.MustRegister(
		m.ActiveRooms,
		m.ConnectedClients,
		m.ClaimsSubmitted,
		m.ClaimLatency,
	)

	return m
}

// Handler returns the /metrics HTTP handler for this instance's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ClaimObserved implements game.StatsSink.
func (m *Metrics) ClaimObserved(accepted bool, elapsed time.Duration) {
	result := "rejected"
	if accepted {
		result = "accepted"
	}
	m.ClaimsSubmitted.WithLabelValues(result).Inc()
	m.ClaimLatency.Observe(elapsed.Seconds())
}

// SetActiveRooms records the live room count.
func (m *Metrics) SetActiveRooms(count int) {
	m.ActiveRooms.Set(float64(count))
}

// SetConnectedClients records the connected client count.
func (m *Metrics) SetConnectedClients(count int) {
	m.ConnectedClients.Set(float64(count))
}
