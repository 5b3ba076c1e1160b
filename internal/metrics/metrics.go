// Package metrics exposes solver activity as Prometheus series.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/mazewalk/solver"
)

const namespace = "mazewalk"

// Recorder owns a private registry so tests and embedders never collide with
// the global default one.
type Recorder struct {
	registry   *prometheus.Registry
	runs       *prometheus.CounterVec
	ticks      *prometheus.CounterVec
	visited    *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	frontier   prometheus.Gauge
	pathLength prometheus.Gauge
}

// NewRecorder creates and registers every series.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Finished search runs by algorithm and outcome.",
			},
			[]string{"algorithm", "outcome"},
		),
		ticks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ticks_total",
				Help:      "Ticks delivered to a running engine.",
			},
			[]string{"algorithm"},
		),
		visited: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "nodes_visited_total",
				Help:      "Nodes marked visited across runs.",
			},
			[]string{"algorithm"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "run_duration_seconds",
				Help:      "Stopwatch reading at the end of a run.",
				Buckets:   prometheus.ExponentialBuckets(0.01, 2, 14),
			},
			[]string{"algorithm"},
		),
		frontier: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "frontier_size",
			Help:      "Frontier length after the latest tick.",
		}),
		pathLength: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "path_length",
			Help:      "Node count of the most recent path found.",
		}),
	}
	r.registry.MustRegister(r.runs, r.ticks, r.visited, r.duration, r.frontier, r.pathLength)

	return r
}

// Registry returns the registry the series live in.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// ObserveTick records one tick of alg and the frontier size it left behind.
func (r *Recorder) ObserveTick(alg solver.Algorithm, frontier int) {
	r.ticks.WithLabelValues(alg.String()).Inc()
	r.frontier.Set(float64(frontier))
}

// ObserveResult records a finished run.
func (r *Recorder) ObserveResult(res solver.Result) {
	alg := res.Algorithm.String()
	r.runs.WithLabelValues(alg, res.Outcome.String()).Inc()
	r.visited.WithLabelValues(alg).Add(float64(res.Visited))
	r.duration.WithLabelValues(alg).Observe(res.Elapsed.Seconds())
	r.frontier.Set(0)
}

// ObservePath records the length of a traced path.
func (r *Recorder) ObservePath(nodes int) {
	r.pathLength.Set(float64(nodes))
}
