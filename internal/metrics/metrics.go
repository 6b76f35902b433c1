// Package metrics exports Flow3D server activity to Prometheus and serves
// a small read-only HTTP API next to the SSH front end.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/vovakirdan/flow3d/internal/puzzle"
)

// Metrics holds the Flow3D collectors on a private registry.
// It is safe for concurrent use.
type Metrics struct {
	registry *prometheus.Registry

	sessions        prometheus.Counter
	activeSessions  prometheus.Gauge
	sessionDuration prometheus.Histogram
	commits         *prometheus.CounterVec
	solves          *prometheus.CounterVec
	solveDuration   *prometheus.HistogramVec
	solveMoves      *prometheus.HistogramVec
}

// New creates the collectors and registers them, along with the Go runtime
// and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		sessions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "flow3d_sessions_total",
			Help: "Total number of SSH sessions started",
		}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "flow3d_sessions_active",
			Help: "Number of SSH sessions currently open",
		}),
		sessionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "flow3d_session_duration_seconds",
			Help:    "Length of finished SSH sessions",
			Buckets: []float64{10, 30, 60, 300, 900, 1800, 3600},
		}),
		commits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flow3d_commits_total",
				Help: "Committed paths by level and stop reason",
			},
			[]string{"level", "reason"},
		),
		solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flow3d_solves_total",
				Help: "Completed levels",
			},
			[]string{"level"},
		),
		solveDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flow3d_solve_duration_seconds",
				Help:    "Time from level start to the winning commit",
				Buckets: []float64{5, 15, 30, 60, 120, 300, 600, 1200},
			},
			[]string{"level"},
		),
		solveMoves: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flow3d_solve_moves",
				Help:    "Commits needed to complete a level",
				Buckets: prometheus.LinearBuckets(2, 4, 8),
			},
			[]string{"level"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.sessions,
		m.activeSessions,
		m.sessionDuration,
		m.commits,
		m.solves,
		m.solveDuration,
		m.solveMoves,
	)
	return m
}

// Registry returns the registry holding every Flow3D collector.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) SessionStarted() {
	m.sessions.Inc()
	m.activeSessions.Inc()
}

func (m *Metrics) SessionEnded(d time.Duration) {
	m.activeSessions.Dec()
	m.sessionDuration.Observe(d.Seconds())
}

func (m *Metrics) Committed(levelID string, reason puzzle.StopReason) {
	m.commits.WithLabelValues(levelID, reason.String()).Inc()
}

func (m *Metrics) Solved(levelID string, moves int, d time.Duration) {
	m.solves.WithLabelValues(levelID).Inc()
	m.solveDuration.WithLabelValues(levelID).Observe(d.Seconds())
	m.solveMoves.WithLabelValues(levelID).Observe(float64(moves))
}
