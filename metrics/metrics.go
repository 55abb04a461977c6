// Package metrics exports prometheus collectors for solver timings, engine
// divergences and grading verdicts.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/trafficflow/flow"
)

// Namespace prefixes every metric exported by this package.
const Namespace = "trafficflow"

var (
	solveDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "solve_duration_seconds",
			Help:      "Wall-clock duration of one max-flow solver run",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"algorithm"},
	)

	divergenceCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "divergence_total",
			Help:      "Number of comparisons where the solvers disagreed",
		},
	)

	gradeCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "grades_total",
			Help:      "Number of graded answers by verdict",
		}, []string{"verdict"},
	)
)

// Recorder forwards flow.Compare events to the package collectors.
// The zero value is ready to use and safe for concurrent use.
type Recorder struct{}

var _ flow.Observer = Recorder{}

// ObserveRun records the duration of one solver run.
func (Recorder) ObserveRun(run flow.Run) {
	solveDuration.WithLabelValues(run.Algorithm).Observe(run.Elapsed.Seconds())
}

// ObserveDivergence counts one solver disagreement.
func (Recorder) ObserveDivergence(*flow.DivergenceError) {
	divergenceCount.Inc()
}

// UpdateGrade counts one graded answer.
func UpdateGrade(correct bool) {
	gradeCount.WithLabelValues(verdictLabel(correct)).Inc()
}

func verdictLabel(correct bool) string {
	if correct {
		return "correct"
	}
	return "wrong"
}
