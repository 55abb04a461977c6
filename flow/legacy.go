package flow

import "github.com/katalvlaran/trafficflow/core"

// MaxFlow is the single-value entry point older callers grade against.
// It is defined as the Edmonds–Karp result and delegates to EdmondsKarp.
func MaxFlow(g *core.Graph, source, sink string) (int64, error) {
	res, err := EdmondsKarp(g, source, sink, DefaultOptions())
	if err != nil {
		return 0, err
	}

	return res.MaxFlow, nil
}
