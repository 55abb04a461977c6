package flow_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trafficflow/core"
	"github.com/katalvlaran/trafficflow/flow"
)

// triple is one (from, to, capacity) input edge.
type triple struct {
	from, to string
	cap      int64
}

// buildGraph registers edges in order and fails the test on any error.
func buildGraph(t testing.TB, edges []triple, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.from, e.to, e.cap))
	}
	return g
}

// solver is the common signature of the exported algorithms.
type solver func(*core.Graph, string, string, flow.FlowOptions) (*flow.Result, error)

// solvers lists every exported algorithm by name.
var solvers = []struct {
	name  string
	solve solver
}{
	{flow.AlgorithmEdmondsKarp, flow.EdmondsKarp},
	{flow.AlgorithmDinic, flow.Dinic},
	{flow.AlgorithmFordFulkerson, flow.FordFulkerson},
}

// buildRandomGraph constructs a graph with V vertices and roughly p probability
// of an edge between any ordered pair u→v, including the occasional self-loop
// and zero-capacity edge. Capacities are uniform in [0, maxCap].
func buildRandomGraph(t testing.TB, V int, p float64, maxCap int64, seed int64) *core.Graph {
	t.Helper()
	r := rand.New(rand.NewSource(seed)) // deterministic seed for reproducibility
	g := core.NewGraph()
	for i := 0; i < V; i++ {
		require.NoError(t, g.AddVertex(strconv.Itoa(i)))
	}
	for u := 0; u < V; u++ {
		for v := 0; v < V; v++ {
			if r.Float64() < p {
				c := r.Int63n(maxCap + 1)
				require.NoError(t, g.AddEdge(strconv.Itoa(u), strconv.Itoa(v), c))
			}
		}
	}
	return g
}

// assertFeasible verifies the flow assignment of res and that it respects
// the source/sink capacity bounds.
func assertFeasible(t *testing.T, g *core.Graph, res *flow.Result) {
	t.Helper()
	require.NoError(t, res.Verify())

	snap := g.Snapshot()
	if s, ok := snap.Index(res.Source); ok {
		require.LessOrEqual(t, res.MaxFlow, snap.OutCapacity(s))
	}
	if d, ok := snap.Index(res.Sink); ok {
		require.LessOrEqual(t, res.MaxFlow, snap.InCapacity(d))
	}
}
