package flow

import (
	"math"

	"github.com/katalvlaran/trafficflow/core"
)

// Dinic computes the maximum flow from `source` to `sink` in `g`
// using Dinic’s algorithm (level graph + blocking flows).
//
// Same contract as EdmondsKarp: unknown terminals yield flow 0, and every call
// works on its own residual state.
//
// Steps:
//  1. Build residual arcs from a fresh snapshot (O(V + E)).
//  2. Repeat phases until the sink gets no level:
//     a. BFS to assign levels from source over arcs with residual > 0,
//     stopping once the sink is levelled (O(V + E)).
//     b. Reset every current-arc pointer to the start of its adjacency.
//     c. DFS pushes along level-graph arcs (level[v] == level[u]+1) until the
//     phase's flow is blocking; dead or saturated arcs advance the pointer.
//     d. Add the phase total to the running flow.
//
// Complexity:
//
//	Time:   O(V² · E) in general: at most V-1 phases, O(V · E) per blocking flow.
//	Memory: O(V + E) for arcs, levels and current-arc pointers.
func Dinic(g *core.Graph, source, sink string, opts FlowOptions) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return dinic(g.Snapshot(), source, sink, opts), nil
}

// dinicState holds per-call scratch space for the phases.
type dinicState struct {
	r     *residual
	t     int
	level []int // BFS distance from source in the current phase, -1 if unreached
	iter  []int // current-arc pointer into r.adj[u]
	queue []int
}

func dinic(snap *core.Snapshot, source, sink string, opts FlowOptions) *Result {
	r := newResidual(snap)
	s, t, ok := r.terminals(source, sink)
	if !ok {
		return r.result(AlgorithmDinic, source, sink, 0)
	}
	log := opts.logger(AlgorithmDinic)

	n := snap.VertexCount()
	d := &dinicState{
		r:     r,
		t:     t,
		level: make([]int, n),
		iter:  make([]int, n),
		queue: make([]int, 0, n),
	}

	var total int64
	for phase := 1; d.buildLevels(s); phase++ {
		// 2b) new phase, fresh pointers
		for i := range d.iter {
			d.iter[i] = 0
		}

		// 2c) blocking flow
		var phaseFlow int64
		for {
			pushed := d.augment(s, math.MaxInt64)
			if pushed == 0 {
				break
			}
			phaseFlow += pushed
		}

		// 2d) accumulate
		total += phaseFlow
		if opts.Verbose {
			log.Debug().
				Int("phase", phase).
				Int("sinkLevel", d.level[t]).
				Int64("phaseFlow", phaseFlow).
				Int64("total", total).
				Msg("blocking flow")
		}
	}

	return r.result(AlgorithmDinic, source, sink, total)
}

// buildLevels runs the phase BFS and reports whether the sink was levelled.
// When the sink receives its level every vertex of a smaller level is already
// known, so the BFS can stop there.
func (d *dinicState) buildLevels(s int) bool {
	for i := range d.level {
		d.level[i] = -1
	}
	d.level[s] = 0
	d.queue = append(d.queue[:0], s)
	for head := 0; head < len(d.queue); head++ {
		u := d.queue[head]
		for _, a := range d.r.adj[u] {
			v := d.r.head[a]
			if d.level[v] >= 0 || d.r.rescap[a] <= 0 {
				continue
			}
			d.level[v] = d.level[u] + 1
			if v == d.t {
				return true
			}
			d.queue = append(d.queue, v)
		}
	}

	return false
}

// augment pushes at most limit units from u toward the sink along level-graph
// arcs and returns the amount pushed (0 if u is a dead end this phase).
//
// The pointer iter[u] only moves past an arc once that arc is saturated or
// leads nowhere; an arc that still has capacity after a successful push is
// retried by the next call.
func (d *dinicState) augment(u int, limit int64) int64 {
	if u == d.t {
		return limit
	}
	arcs := d.r.adj[u]
	for ; d.iter[u] < len(arcs); d.iter[u]++ {
		a := arcs[d.iter[u]]
		v := d.r.head[a]
		if d.r.rescap[a] <= 0 || d.level[v] != d.level[u]+1 {
			continue
		}
		if pushed := d.augment(v, min(limit, d.r.rescap[a])); pushed > 0 {
			d.r.push(a, pushed)
			return pushed
		}
	}

	return 0
}
