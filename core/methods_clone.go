// File: methods_clone.go
// Role: Cloning graph instances.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph: policy, vertices (with their indices)
// and edges. Mutating the clone never affects the original.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph(WithParallelPolicy(g.policy))
	clone.labels = make([]string, len(g.labels))
	copy(clone.labels, g.labels)
	for id, i := range g.index {
		clone.index[id] = i
	}
	clone.edges = make([]Edge, len(g.edges))
	copy(clone.edges, g.edges)
	for k, pos := range g.pairs {
		clone.pairs[k] = pos
	}
	clone.total = g.total

	return clone
}
