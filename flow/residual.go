package flow

import "github.com/katalvlaran/trafficflow/core"

// residual is the per-solve residual graph derived from a core.Snapshot.
//
// Arcs are stored in pairs: arc 2k is the forward arc of an input edge and
// arc 2k+1 (= 2k^1) its reverse, so the partner of arc a is always a^1.
// Self-loops get no arcs at all; they can never lie on an augmenting path.
//
// A residual is owned by exactly one solver call and discarded afterwards.
type residual struct {
	snap    *core.Snapshot
	adj     [][]int // vertex → ids of arcs leaving it (forward and reverse)
	head    []int   // arc → vertex it points to
	rescap  []int64 // arc → remaining residual capacity
	edgeArc []int   // snapshot edge → forward arc id, -1 for self-loops
}

// newResidual builds fresh residual state from the base capacities in snap.
//
// Steps:
//  1. Allocate per-vertex adjacency and per-arc slices sized for 2·E arcs.
//  2. For every non-loop edge u→v (cap c): forward arc u→v with c,
//     reverse arc v→u with 0, both appended to their tails' adjacency.
//
// Complexity: O(V + E) time and memory.
func newResidual(snap *core.Snapshot) *residual {
	n, m := snap.VertexCount(), snap.EdgeCount()
	r := &residual{
		snap:    snap,
		adj:     make([][]int, n),
		head:    make([]int, 0, 2*m),
		rescap:  make([]int64, 0, 2*m),
		edgeArc: make([]int, m),
	}
	for i := 0; i < m; i++ {
		e := snap.Edge(i)
		if e.Loop() {
			r.edgeArc[i] = -1
			continue
		}
		a := len(r.head)
		r.head = append(r.head, e.To, e.From)
		r.rescap = append(r.rescap, e.Capacity, 0)
		r.adj[e.From] = append(r.adj[e.From], a)
		r.adj[e.To] = append(r.adj[e.To], a^1)
		r.edgeArc[i] = a
	}

	return r
}

// terminals resolves source and sink. ok is false when either label is
// unknown or both name the same vertex; in all those cases the flow is 0.
func (r *residual) terminals(source, sink string) (s, t int, ok bool) {
	s, okS := r.snap.Index(source)
	t, okT := r.snap.Index(sink)

	return s, t, okS && okT && s != t
}

// tail returns the vertex arc a leaves from.
func (r *residual) tail(a int) int { return r.head[a^1] }

// push sends f units along arc a and credits the paired arc.
func (r *residual) push(a int, f int64) {
	r.rescap[a] -= f
	r.rescap[a^1] += f
}

// result packages the final state into a Result. The flow on an input edge is
// the residual capacity accumulated on its reverse arc.
func (r *residual) result(algorithm, source, sink string, total int64) *Result {
	res := &Result{
		Algorithm: algorithm,
		Source:    source,
		Sink:      sink,
		MaxFlow:   total,
		Flows:     make([]EdgeFlow, len(r.edgeArc)),
	}
	for i, a := range r.edgeArc {
		e := r.snap.Edge(i)
		ef := EdgeFlow{From: r.snap.Label(e.From), To: r.snap.Label(e.To), Capacity: e.Capacity}
		if a >= 0 {
			ef.Flow = r.rescap[a^1]
		}
		res.Flows[i] = ef
	}

	return res
}
