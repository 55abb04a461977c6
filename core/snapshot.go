// SPDX-License-Identifier: MIT
//
// File: snapshot.go
// Role: Immutable, index-addressed view of a Graph's base capacities.
// Policy:
//   - A Snapshot never changes after Snapshot() returns; it holds no locks and
//     may be read from any number of goroutines.
//   - Solvers derive their own residual state from a Snapshot and never write to it.

package core

// IndexedEdge is an Edge whose endpoints are dense vertex indices.
type IndexedEdge struct {
	From, To int
	Capacity int64
}

// Loop reports whether the edge starts and ends at the same vertex.
func (e IndexedEdge) Loop() bool { return e.From == e.To }

// Snapshot is a frozen copy of a Graph's vertices and edges with labels
// resolved to dense indices once.
type Snapshot struct {
	labels []string
	index  map[string]int
	edges  []IndexedEdge
	out    []int64 // per-vertex capacity leaving the vertex, loops excluded
	in     []int64 // per-vertex capacity entering the vertex, loops excluded
}

// Snapshot freezes the current contents of g.
//
// Steps:
//  1. Under both read locks, copy labels and resolve every edge's endpoints.
//  2. Accumulate per-vertex out/in capacity sums (self-loops excluded).
//
// Complexity: O(V + E) time and memory.
func (g *Graph) Snapshot() *Snapshot {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	n := len(g.labels)
	s := &Snapshot{
		labels: make([]string, n),
		index:  make(map[string]int, n),
		edges:  make([]IndexedEdge, len(g.edges)),
		out:    make([]int64, n),
		in:     make([]int64, n),
	}
	copy(s.labels, g.labels)
	for id, i := range g.index {
		s.index[id] = i
	}
	for i, e := range g.edges {
		ie := IndexedEdge{From: g.index[e.From], To: g.index[e.To], Capacity: e.Capacity}
		s.edges[i] = ie
		if !ie.Loop() {
			s.out[ie.From] += ie.Capacity
			s.in[ie.To] += ie.Capacity
		}
	}

	return s
}

// VertexCount returns the number of vertices.
func (s *Snapshot) VertexCount() int { return len(s.labels) }

// EdgeCount returns the number of edges.
func (s *Snapshot) EdgeCount() int { return len(s.edges) }

// Index resolves a label to its dense index.
func (s *Snapshot) Index(label string) (int, bool) {
	i, ok := s.index[label]
	return i, ok
}

// Label returns the label of vertex i. Panics if i is out of range.
func (s *Snapshot) Label(i int) string { return s.labels[i] }

// Labels returns a copy of all labels in index order.
func (s *Snapshot) Labels() []string {
	out := make([]string, len(s.labels))
	copy(out, s.labels)

	return out
}

// Edge returns edge i in registration order.
func (s *Snapshot) Edge(i int) IndexedEdge { return s.edges[i] }

// OutCapacity returns the total capacity of non-loop edges leaving vertex i.
func (s *Snapshot) OutCapacity(i int) int64 { return s.out[i] }

// InCapacity returns the total capacity of non-loop edges entering vertex i.
func (s *Snapshot) InCapacity(i int) int64 { return s.in[i] }
