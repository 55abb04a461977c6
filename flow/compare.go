package flow

import (
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/katalvlaran/trafficflow/core"
)

// Run is the name, value and wall-clock cost of one solver run inside Compare.
type Run struct {
	Algorithm string
	MaxFlow   int64
	Elapsed   time.Duration
}

// Millis returns Elapsed in fractional milliseconds, the unit reported to players.
func (r Run) Millis() float64 {
	return float64(r.Elapsed) / float64(time.Millisecond)
}

// Comparison is the cross-validated outcome of Compare.
//
// MaxFlow is the canonical value (both solvers agreed on it). Runs always lists
// Edmonds–Karp first and Dinic second.
type Comparison struct {
	Source, Sink string
	MaxFlow      int64
	Runs         []Run
	EdmondsKarp  *Result
	Dinic        *Result
}

// Run returns the run of the named algorithm.
func (c *Comparison) Run(algorithm string) (Run, bool) {
	for _, r := range c.Runs {
		if r.Algorithm == algorithm {
			return r, true
		}
	}
	return Run{}, false
}

// Observer receives timing and consistency events from Compare.
// Implementations must be safe for concurrent use when Parallel is set.
type Observer interface {
	ObserveRun(run Run)
	ObserveDivergence(err *DivergenceError)
}

// CompareOptions configures Compare.
//   - FlowOptions: passed to both solvers.
//   - Parallel: run both solvers concurrently on a worker pool.
//   - Pool: pool to submit to when Parallel is set; nil means a two-worker pool
//     is created and released within the call.
//   - Observer: optional sink for run timings and divergences.
type CompareOptions struct {
	FlowOptions
	Parallel bool
	Pool     *ants.Pool
	Observer Observer
}

// DefaultCompareOptions returns sequential, quiet options.
func DefaultCompareOptions() CompareOptions {
	return CompareOptions{FlowOptions: DefaultOptions()}
}

// solverFunc is the snapshot-level entry point shared by all solvers.
type solverFunc func(snap *core.Snapshot, source, sink string, opts FlowOptions) *Result

// comparedSolvers lists the algorithms Compare runs, in reporting order.
// Edmonds–Karp must come first and Dinic second.
var comparedSolvers = []struct {
	name  string
	solve solverFunc
}{
	{AlgorithmEdmondsKarp, edmondsKarp},
	{AlgorithmDinic, dinic},
}

// Compare runs Edmonds–Karp and Dinic on independent residual states derived
// from one snapshot of g, times each run, and cross-validates the results.
//
// Steps:
//  1. Snapshot g once; the snapshot is shared read-only by both runs.
//  2. Run each solver (sequentially, or on the pool when opts.Parallel),
//     measuring wall-clock time around the call.
//  3. Report runs to opts.Observer.
//  4. If the values differ, return a *DivergenceError holding both values;
//     otherwise return the Comparison with the agreed MaxFlow.
//
// An unreachable sink is not an error: both solvers return 0 and agree.
func Compare(g *core.Graph, source, sink string, opts CompareOptions) (*Comparison, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	snap := g.Snapshot()
	log := opts.logger("compare")

	tasks := comparedSolvers
	results := make([]*Result, len(tasks))
	runs := make([]Run, len(tasks))
	run := func(i int) {
		start := time.Now()
		results[i] = tasks[i].solve(snap, source, sink, opts.FlowOptions)
		runs[i] = Run{Algorithm: tasks[i].name, MaxFlow: results[i].MaxFlow, Elapsed: time.Since(start)}
	}

	if opts.Parallel {
		if err := runOnPool(opts.Pool, len(tasks), run); err != nil {
			return nil, err
		}
	} else {
		for i := range tasks {
			run(i)
		}
	}

	if opts.Observer != nil {
		for _, r := range runs {
			opts.Observer.ObserveRun(r)
		}
	}

	ek, dn := results[0], results[1]
	if ek.MaxFlow != dn.MaxFlow {
		derr := &DivergenceError{Source: source, Sink: sink, EdmondsKarp: ek.MaxFlow, Dinic: dn.MaxFlow}
		log.Error().Err(derr).Msg("solver divergence")
		if opts.Observer != nil {
			opts.Observer.ObserveDivergence(derr)
		}
		return nil, derr
	}

	log.Debug().
		Str("source", source).
		Str("sink", sink).
		Int64("maxFlow", ek.MaxFlow).
		Dur("edmondsKarp", runs[0].Elapsed).
		Dur("dinic", runs[1].Elapsed).
		Msg("solvers agree")

	return &Comparison{
		Source:      source,
		Sink:        sink,
		MaxFlow:     ek.MaxFlow,
		Runs:        runs,
		EdmondsKarp: ek,
		Dinic:       dn,
	}, nil
}

// runOnPool executes run(0..n-1) on pool and waits for all of them. A nil pool
// is replaced by a temporary one of size n.
func runOnPool(pool *ants.Pool, n int, run func(int)) error {
	if pool == nil {
		p, err := ants.NewPool(n)
		if err != nil {
			return fmt.Errorf("flow: create worker pool: %w", err)
		}
		defer p.Release()
		pool = p
	}

	var wg sync.WaitGroup
	var submitErr error
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			run(i)
		}); err != nil {
			wg.Done()
			submitErr = fmt.Errorf("flow: submit solver run: %w", err)
			break
		}
	}
	wg.Wait()

	return submitErr
}
