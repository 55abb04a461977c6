package flow

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trafficflow/core"
)

type divergenceRecorder struct {
	runs int
	errs []*DivergenceError
}

func (r *divergenceRecorder) ObserveRun(Run) { r.runs++ }
func (r *divergenceRecorder) ObserveDivergence(err *DivergenceError) {
	r.errs = append(r.errs, err)
}

// withBrokenDinic swaps Dinic for a solver that under-reports by one unit.
func withBrokenDinic(t *testing.T) {
	t.Helper()
	saved := comparedSolvers
	comparedSolvers = []struct {
		name  string
		solve solverFunc
	}{
		{AlgorithmEdmondsKarp, edmondsKarp},
		{AlgorithmDinic, func(snap *core.Snapshot, source, sink string, opts FlowOptions) *Result {
			res := dinic(snap, source, sink, opts)
			res.MaxFlow--
			return res
		}},
	}
	t.Cleanup(func() { comparedSolvers = saved })
}

// TestCompareSurfacesDivergence checks the defect path: no Comparison, both
// values in the error, an observer event and an error-level log line.
func TestCompareSurfacesDivergence(t *testing.T) {
	withBrokenDinic(t)

	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 25))

	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	rec := &divergenceRecorder{}
	opts := DefaultCompareOptions()
	opts.Logger = &logger
	opts.Observer = rec

	cmp, err := Compare(g, "A", "B", opts)
	require.Nil(t, cmp)
	require.True(t, errors.Is(err, ErrDivergence))

	var derr *DivergenceError
	require.True(t, errors.As(err, &derr))
	require.Equal(t, int64(25), derr.EdmondsKarp)
	require.Equal(t, int64(24), derr.Dinic)

	require.Equal(t, 2, rec.runs)
	require.Len(t, rec.errs, 1)
	require.Contains(t, buf.String(), `"level":"error"`)
}

// TestResidualPairing checks the arc layout: partner of a is a^1, loops get no arcs.
func TestResidualPairing(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 4))
	require.NoError(t, g.AddEdge("B", "B", 9))
	require.NoError(t, g.AddEdge("B", "C", 2))

	r := newResidual(g.Snapshot())
	require.Equal(t, []int{0, -1, 2}, r.edgeArc)
	require.Equal(t, []int64{4, 0, 2, 0}, r.rescap)
	require.Equal(t, 0, r.tail(0))
	require.Equal(t, 1, r.tail(1))

	r.push(0, 3)
	require.Equal(t, int64(1), r.rescap[0])
	require.Equal(t, int64(3), r.rescap[1])

	res := r.result("test", "A", "C", 0)
	require.Equal(t, int64(3), res.Flows[0].Flow)
	require.Equal(t, int64(0), res.Flows[1].Flow)
}

// TestVerifyDetectsViolations feeds hand-made broken assignments to Verify.
func TestVerifyDetectsViolations(t *testing.T) {
	cases := []struct {
		name string
		res  Result
	}{
		{"over capacity", Result{Source: "A", Sink: "B", MaxFlow: 6,
			Flows: []EdgeFlow{{From: "A", To: "B", Capacity: 5, Flow: 6}}}},
		{"loop flow", Result{Source: "A", Sink: "B", MaxFlow: 0,
			Flows: []EdgeFlow{{From: "A", To: "A", Capacity: 5, Flow: 1}}}},
		{"not conserved", Result{Source: "A", Sink: "C", MaxFlow: 3,
			Flows: []EdgeFlow{{From: "A", To: "B", Capacity: 5, Flow: 3}, {From: "B", To: "C", Capacity: 5, Flow: 2}}}},
		{"wrong value", Result{Source: "A", Sink: "B", MaxFlow: 4,
			Flows: []EdgeFlow{{From: "A", To: "B", Capacity: 5, Flow: 3}}}},
		{"negative value", Result{Source: "A", Sink: "B", MaxFlow: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.res.Verify()
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvariant))
		})
	}
}
