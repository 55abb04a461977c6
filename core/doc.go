// Package core provides the thread-safe, in-memory capacity graph that feeds
// the max-flow solvers in package flow.
//
// The Graph G = (V,E) is:
//
//   - Directed: every edge is a one-way road from→to.
//   - Capacitated: every edge carries an int64 capacity ≥ 0.
//   - String-labelled: vertices are created implicitly the first time an edge
//     names them, and are mapped to dense indices 0..V-1 in insertion order.
//   - Loop-tolerant: self-loops are accepted and stored, but they never carry flow.
//
// Parallel edges:
//
//	The parallel-edge policy is chosen at construction time via WithParallelPolicy.
//	  • Accumulate (default): each AddEdge(from,to,c) is kept, capacities add up.
//	  • Overwrite: a later AddEdge(from,to,c) replaces the first edge's capacity.
//
// Errors:
//
//	AddEdge rejects negative capacities immediately with a *CapacityError
//	(errors.Is(err, ErrNegativeCapacity)); nothing is ever clamped to zero.
//	The sum of all non-loop capacities must fit in an int64: an edge that would
//	overflow it is rejected with a *CapacityError matching ErrCapacityOverflow,
//	so flow values computed from the graph never wrap.
//
// Snapshots:
//
//	Graph.Snapshot() freezes the graph into an index-addressed, read-only
//	Snapshot. Solvers build their residual state from a Snapshot, so a graph can
//	be solved any number of times without one run seeing another's flow.
//
// Core Methods:
//
//	AddVertex(id string) error                        // O(1)
//	AddEdge(from, to string, capacity int64) error    // O(1)†
//	HasVertex(id string) bool                         // O(1)
//	HasEdge(from, to string) bool                     // O(1)
//	Capacity(from, to string) int64                   // O(E)
//	Vertices() []string / Edges() []Edge              // O(V) / O(E)
//	Clone() *Graph                                    // O(V+E)
//	Snapshot() *Snapshot                              // O(V+E)
//
// † amortized
package core
