// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns labels in insertion order, which is also index order.
//
// Concurrency:
//   - Label catalog protected by muVert.
package core

// AddVertex inserts a vertex if missing (idempotent).
//
// Steps:
//  1. Validate non-empty label (ErrEmptyVertexID).
//  2. Under muVert write lock, assign the next dense index if the label is new.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.ensureVertex(id)

	return nil
}

// ensureVertex returns the index of id, registering it first if needed.
// Caller must hold muVert for writing.
func (g *Graph) ensureVertex(id string) int {
	if i, ok := g.index[id]; ok {
		return i
	}
	i := len(g.labels)
	g.index[id] = i
	g.labels = append(g.labels, id)

	return i
}

// HasVertex reports whether the vertex has been referenced by AddVertex or AddEdge.
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.index[id]

	return ok
}

// Vertices returns a copy of all vertex labels in insertion order.
// Complexity: O(V)
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]string, len(g.labels))
	copy(out, g.labels)

	return out
}

// VertexCount returns the number of distinct vertices.
// Complexity: O(1)
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.labels)
}
