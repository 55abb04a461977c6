// Package flow implements maximum-flow algorithms on graphs represented by
// *core.Graph, plus a comparison harness that runs two of them side by side
// and refuses to answer when they disagree.
//
// The key algorithms offered are:
//
//	Edmonds–Karp
//	  Method: breadth-first search for shortest (fewest-arc) augmenting paths.
//	  Time:   O(V · E²).
//	  Memory: O(V + E) for residual arcs and the BFS queue.
//
//	Dinic
//	  Method: BFS level graph + DFS blocking flow with current-arc pointers.
//	  Time:   O(V² · E) on any graph, including cycles and self-loops.
//	  Memory: O(V + E) for residual arcs, levels and pointers.
//
//	Ford–Fulkerson
//	  Method: depth-first search for any augmenting path.
//	  Time:   O(E · F), F the flow value (integral capacities).
//	  Kept as an extra cross-check; Compare does not run it.
//
// # Residual state
//
// Each solver call snapshots the graph (core.Graph.Snapshot) and builds its own
// residual arcs from the snapshot's base capacities: for every edge u→v with
// capacity c a forward arc (c) and a paired reverse arc (0). Nothing is reused
// between calls, so solving the same graph twice, or with two algorithms, can
// never observe capacity consumed by an earlier run. Self-loops get no arcs.
//
// # API
//
//	func EdmondsKarp(g *core.Graph, source, sink string, opts FlowOptions) (*Result, error)
//	func Dinic(g *core.Graph, source, sink string, opts FlowOptions) (*Result, error)
//	func FordFulkerson(g *core.Graph, source, sink string, opts FlowOptions) (*Result, error)
//	func MaxFlow(g *core.Graph, source, sink string) (int64, error) // = EdmondsKarp
//	func Compare(g *core.Graph, source, sink string, opts CompareOptions) (*Comparison, error)
//
// A Result carries the flow value and the per-edge flow assignment;
// Result.Verify checks capacity bounds and conservation. A Comparison carries
// the agreed flow value and one Run (name + elapsed time) per algorithm.
//
// # Errors
//
//	ErrNilGraph     - nil graph.
//	ErrDivergence   - *DivergenceError from Compare: the two solvers disagree.
//	                  This is an engine defect, reported with both values.
//	ErrInvariant    - *InvariantError from Result.Verify.
//
// An unknown source or sink, or a sink that cannot be reached, is not an error:
// the flow is simply 0. Negative capacities never reach this package; core
// rejects them when the edge is added, together with any edge that would make
// the total capacity overflow int64, so flow sums here cannot wrap.
//
// # Logging
//
// FlowOptions.Logger takes a *zerolog.Logger. With Verbose set, each
// augmentation (Edmonds–Karp, Ford–Fulkerson) or phase (Dinic) is logged at
// debug level.
package flow
