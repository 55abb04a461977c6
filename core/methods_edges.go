// File: methods_edges.go
// Role: Edge registration & queries: AddEdge/HasEdge/Capacity/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges in registration order.
// Concurrency:
//   - AddEdge takes muVert then muEdgeAdj (write) for the whole call.
//   - Read queries take the read side of the lock they need.

package core

import "math"

// AddEdge registers a directed edge from→to with the given capacity.
//
// Steps:
//  1. Validate labels (ErrEmptyVertexID) and capacity (*CapacityError on capacity < 0).
//  2. Under both write locks, reject (*CapacityError wrapping ErrCapacityOverflow)
//     a capacity that would push the sum of all non-loop capacities past
//     math.MaxInt64. A rejected call leaves the graph unchanged.
//  3. Ensure both endpoints exist, creating them on demand.
//  4. Apply the parallel-edge policy:
//     Accumulate appends a new edge; Overwrite replaces the capacity of the
//     first (from,to) edge if one exists.
//
// A capacity of zero is valid and simply never carries flow. Self-loops are
// stored as given; the solvers never route flow through them, so they do not
// count toward the total.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, capacity int64) error {
	// 1) Input validation
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if capacity < 0 {
		return &CapacityError{From: from, To: to, Capacity: capacity}
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// 2) Overflow check against the existing edge, if Overwrite would replace one
	pos, replace := -1, false
	if u, ok := g.index[from]; ok {
		if v, ok := g.index[to]; ok {
			if p, ok := g.pairs[pairKey{from: u, to: v}]; ok {
				pos, replace = p, g.policy == Overwrite
			}
		}
	}
	total := g.total
	if from != to {
		if replace {
			total -= g.edges[pos].Capacity
		}
		if capacity > math.MaxInt64-total {
			return &CapacityError{From: from, To: to, Capacity: capacity, Err: ErrCapacityOverflow}
		}
		total += capacity
	}
	g.total = total

	// 3) Ensure vertices exist
	u := g.ensureVertex(from)
	v := g.ensureVertex(to)

	// 4) Apply the policy
	if replace {
		g.edges[pos].Capacity = capacity
		return nil
	}
	if pos < 0 {
		g.pairs[pairKey{from: u, to: v}] = len(g.edges)
	}
	g.edges = append(g.edges, Edge{From: from, To: to, Capacity: capacity})

	return nil
}

// HasEdge reports whether at least one edge from→to was registered.
// Complexity: O(1)
func (g *Graph) HasEdge(from, to string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	u, ok1 := g.index[from]
	v, ok2 := g.index[to]
	if !ok1 || !ok2 {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.pairs[pairKey{from: u, to: v}]

	return ok
}

// Capacity returns the total capacity registered from→to, summed over
// parallel edges. Unknown pairs report 0.
// Complexity: O(E)
func (g *Graph) Capacity(from, to string) int64 {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	var total int64
	for _, e := range g.edges {
		if e.From == from && e.To == to {
			total += e.Capacity
		}
	}

	return total
}

// Edges returns a copy of all registered edges in registration order.
// Complexity: O(E)
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of stored edges (parallel edges count separately
// under Accumulate).
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}
