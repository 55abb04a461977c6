package flow

import (
	"math"

	"github.com/katalvlaran/trafficflow/core"
)

// EdmondsKarp computes the maximum flow from source→sink
// using the Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// It returns a *Result carrying the flow value and the per-edge flow
// assignment. A source or sink that no edge references yields flow 0 and a nil
// error: an unreachable sink is a normal outcome.
//
// Every call snapshots g and builds its own residual state, so repeated calls
// on the same graph are independent and return identical results.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(g *core.Graph, source, sink string, opts FlowOptions) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return edmondsKarp(g.Snapshot(), source, sink, opts), nil
}

// edmondsKarp runs the algorithm on a fresh residual built from snap.
//
// Steps:
//  1. Build residual arcs; resolve terminals (missing ⇒ 0).
//  2. Repeat:
//     a. BFS from s over arcs with residual > 0, recording the arc each vertex
//     was first reached through; stop as soon as t is reached.
//     b. If t was not reached, stop.
//     c. Walk predecessor arcs back from t to find the bottleneck.
//     d. Push the bottleneck along the path and add it to the total.
func edmondsKarp(snap *core.Snapshot, source, sink string, opts FlowOptions) *Result {
	r := newResidual(snap)
	s, t, ok := r.terminals(source, sink)
	if !ok {
		return r.result(AlgorithmEdmondsKarp, source, sink, 0)
	}
	log := opts.logger(AlgorithmEdmondsKarp)

	const unvisited, root = -1, -2
	n := snap.VertexCount()
	pred := make([]int, n) // pred[v] = arc that discovered v
	queue := make([]int, 0, n)

	var total int64
	for augmentations := 1; ; augmentations++ {
		// 2a) BFS for the shortest augmenting path
		for i := range pred {
			pred[i] = unvisited
		}
		pred[s] = root
		queue = append(queue[:0], s)
		for head := 0; head < len(queue) && pred[t] == unvisited; head++ {
			u := queue[head]
			for _, a := range r.adj[u] {
				v := r.head[a]
				if pred[v] != unvisited || r.rescap[a] <= 0 {
					continue
				}
				pred[v] = a
				if v == t {
					break
				}
				queue = append(queue, v)
			}
		}

		// 2b) sink unreachable: done
		if pred[t] == unvisited {
			break
		}

		// 2c) bottleneck along the path
		bottleneck := int64(math.MaxInt64)
		hops := 0
		for v := t; v != s; v = r.tail(pred[v]) {
			bottleneck = min(bottleneck, r.rescap[pred[v]])
			hops++
		}

		// 2d) augment
		for v := t; v != s; v = r.tail(pred[v]) {
			r.push(pred[v], bottleneck)
		}
		total += bottleneck

		if opts.Verbose {
			log.Debug().
				Int("augmentation", augmentations).
				Int("hops", hops).
				Int64("bottleneck", bottleneck).
				Int64("total", total).
				Msg("augmenting path")
		}
	}

	return r.result(AlgorithmEdmondsKarp, source, sink, total)
}
