// Package metrics exposes Prometheus instrumentation for the match service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects the service-level counters and gauges:
//
//   - rooms_active (gauge): rooms currently held in memory.
//   - joins_total (counter): accepted seat grants.
//   - moves_total{move} (counter): accepted move submissions.
//   - matches_total{result} (counter): resolved rounds, result is
//     player1/player2/draw.
//   - rooms_evicted_total (counter): rooms removed by the TTL janitor.
//   - request_duration_seconds{method,status} (histogram): HTTP latency.
//
// All metric names are prefixed with "showdown_". A nil *Metrics is valid
// and records nothing, so packages under test need no registry.
type Metrics struct {
	roomsActive     prometheus.Gauge
	joins           prometheus.Counter
	moves           *prometheus.CounterVec
	matches         *prometheus.CounterVec
	roomsEvicted    prometheus.Counter
	requestDuration *prometheus.HistogramVec

	registry *prometheus.Registry
}

const namespace = "showdown"

// New registers the service metrics on a private registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		roomsActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rooms_active",
			Help:      "Number of rooms currently held in memory.",
		}),
		joins: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "joins_total",
			Help:      "Total number of seats granted.",
		}),
		moves: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moves_total",
			Help:      "Total number of accepted moves.",
		}, []string{"move"}),
		matches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_total",
			Help:      "Total number of resolved rounds by result.",
		}, []string{"result"}),
		roomsEvicted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rooms_evicted_total",
			Help:      "Total number of rooms removed by the TTL janitor.",
		}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "status"}),
	}
}

// Handler returns the scrape endpoint for the private registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) SetRoomsActive(n int) {
	if m == nil {
		return
	}
	m.roomsActive.Set(float64(n))
}

func (m *Metrics) JoinGranted() {
	if m == nil {
		return
	}
	m.joins.Inc()
}

func (m *Metrics) MoveAccepted(move string) {
	if m == nil {
		return
	}
	m.moves.WithLabelValues(move).Inc()
}

func (m *Metrics) MatchResolved(result string) {
	if m == nil {
		return
	}
	m.matches.WithLabelValues(result).Inc()
}

func (m *Metrics) RoomsEvicted(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.roomsEvicted.Add(float64(n))
}

func (m *Metrics) ObserveRequest(method, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(method, status).Observe(duration.Seconds())
}
