package flow

import (
	"math"

	"github.com/katalvlaran/trafficflow/core"
)

// FordFulkerson computes the maximum flow from `source` to `sink` in `g`
// using the Ford–Fulkerson method (DFS-based augmenting paths).
//
// It shares the EdmondsKarp/Dinic contract (unknown terminals ⇒ 0, fresh
// residual per call) and is kept as an additional, structurally different
// cross-check; Compare does not run it.
//
// Steps:
//  1. Build residual arcs from a fresh snapshot (O(V + E)).
//  2. Repeat until no augmenting path:
//     a. Iterative DFS from source over arcs with residual > 0 (O(V + E)).
//     b. If the sink was not reached, stop.
//     c. Push the path bottleneck and accumulate it.
//
// Complexity:
//
//	Time:   O(E * F) where F = maxFlow (integral capacities guarantee termination).
//	Memory: O(V + E) for arcs and the DFS stack.
func FordFulkerson(g *core.Graph, source, sink string, opts FlowOptions) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return fordFulkerson(g.Snapshot(), source, sink, opts), nil
}

func fordFulkerson(snap *core.Snapshot, source, sink string, opts FlowOptions) *Result {
	r := newResidual(snap)
	s, t, ok := r.terminals(source, sink)
	if !ok {
		return r.result(AlgorithmFordFulkerson, source, sink, 0)
	}
	log := opts.logger(AlgorithmFordFulkerson)

	const unvisited, root = -1, -2
	n := snap.VertexCount()
	pred := make([]int, n) // arc through which each vertex was pushed
	stack := make([]int, 0, n)

	var total int64
	for {
		// 2a) iterative DFS
		for i := range pred {
			pred[i] = unvisited
		}
		pred[s] = root
		stack = append(stack[:0], s)
		for len(stack) > 0 && pred[t] == unvisited {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, a := range r.adj[u] {
				v := r.head[a]
				if pred[v] != unvisited || r.rescap[a] <= 0 {
					continue
				}
				pred[v] = a
				stack = append(stack, v)
			}
		}

		// 2b) no path left
		if pred[t] == unvisited {
			break
		}

		// 2c) bottleneck + augment
		delta := int64(math.MaxInt64)
		for v := t; v != s; v = r.tail(pred[v]) {
			delta = min(delta, r.rescap[pred[v]])
		}
		for v := t; v != s; v = r.tail(pred[v]) {
			r.push(pred[v], delta)
		}
		total += delta

		if opts.Verbose {
			log.Debug().Int64("delta", delta).Int64("total", total).Msg("augmenting path")
		}
	}

	return r.result(AlgorithmFordFulkerson, source, sink, total)
}
