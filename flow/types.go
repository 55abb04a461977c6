package flow

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Algorithm names reported in Result.Algorithm and Run.Algorithm.
const (
	AlgorithmEdmondsKarp   = "Edmonds-Karp"
	AlgorithmDinic         = "Dinic"
	AlgorithmFordFulkerson = "Ford-Fulkerson"
)

// ErrNilGraph is returned when a solver receives a nil *core.Graph.
var ErrNilGraph = errors.New("flow: graph is nil")

// ErrDivergence is matched by *DivergenceError: two solvers produced different
// maximum flows for the same graph. This is an engine defect, never a user error.
var ErrDivergence = errors.New("flow: solvers disagree")

// ErrInvariant is matched by *InvariantError: a flow assignment breaks a
// capacity or conservation constraint.
var ErrInvariant = errors.New("flow: invariant violated")

// DivergenceError carries both disagreeing values so the defect can be diagnosed.
type DivergenceError struct {
	Source, Sink string
	EdmondsKarp  int64
	Dinic        int64
}

func (e *DivergenceError) Error() string {
	return fmt.Sprintf("flow: solvers disagree on %q→%q: %s=%d, %s=%d",
		e.Source, e.Sink, AlgorithmEdmondsKarp, e.EdmondsKarp, AlgorithmDinic, e.Dinic)
}

// Unwrap exposes ErrDivergence to errors.Is.
func (e *DivergenceError) Unwrap() error { return ErrDivergence }

// InvariantError describes the first violated flow invariant found by Verify.
type InvariantError struct {
	Algorithm string
	Reason    string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("flow: %s: %s", e.Algorithm, e.Reason)
}

// Unwrap exposes ErrInvariant to errors.Is.
func (e *InvariantError) Unwrap() error { return ErrInvariant }

// FlowOptions configures all max-flow algorithms.
//   - Verbose: if true, each augmentation (or Dinic phase) is logged at debug level.
//   - Logger: destination for log events; nil disables logging entirely.
type FlowOptions struct {
	Verbose bool
	Logger  *zerolog.Logger
}

// DefaultOptions returns quiet options: no logger, no verbose output.
func DefaultOptions() FlowOptions {
	return FlowOptions{}
}

// logger returns the configured logger tagged with the algorithm name,
// or a disabled logger when none was supplied.
func (o FlowOptions) logger(algorithm string) zerolog.Logger {
	if o.Logger == nil {
		return zerolog.Nop()
	}
	return o.Logger.With().Str("algorithm", algorithm).Logger()
}

// EdgeFlow is the flow assigned to one input edge in a solver's final state.
type EdgeFlow struct {
	From, To string
	Capacity int64
	Flow     int64
}

// Result is the outcome of one solver run.
//
// Flows lists every input edge in registration order, including self-loops
// and zero-capacity edges (both always carry zero flow).
type Result struct {
	Algorithm    string
	Source, Sink string
	MaxFlow      int64
	Flows        []EdgeFlow
}
