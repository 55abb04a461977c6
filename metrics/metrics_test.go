package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trafficflow/core"
	"github.com/katalvlaran/trafficflow/flow"
)

func TestRecorderObservesRuns(t *testing.T) {
	before := testutil.CollectAndCount(solveDuration)

	Recorder{}.ObserveRun(flow.Run{Algorithm: "metrics-test", MaxFlow: 1, Elapsed: time.Millisecond})
	require.Equal(t, before+1, testutil.CollectAndCount(solveDuration))
}

func TestRecorderCountsDivergence(t *testing.T) {
	before := testutil.ToFloat64(divergenceCount)
	Recorder{}.ObserveDivergence(&flow.DivergenceError{EdmondsKarp: 2, Dinic: 1})
	require.Equal(t, before+1, testutil.ToFloat64(divergenceCount))
}

func TestRecorderWithCompare(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 3))

	opts := flow.DefaultCompareOptions()
	opts.Observer = Recorder{}
	_, err := flow.Compare(g, "A", "B", opts)
	require.NoError(t, err)

	require.GreaterOrEqual(t, testutil.CollectAndCount(solveDuration), 2)
}

func TestUpdateGrade(t *testing.T) {
	correct := testutil.ToFloat64(gradeCount.WithLabelValues("correct"))
	wrong := testutil.ToFloat64(gradeCount.WithLabelValues("wrong"))

	UpdateGrade(true)
	UpdateGrade(false)
	UpdateGrade(false)

	require.Equal(t, correct+1, testutil.ToFloat64(gradeCount.WithLabelValues("correct")))
	require.Equal(t, wrong+2, testutil.ToFloat64(gradeCount.WithLabelValues("wrong")))
}
