// Package core defines the capacitated directed Graph used by the flow solvers,
// together with its Edge type, construction options, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID    - vertex label is the empty string.
//	ErrNegativeCapacity - AddEdge was called with capacity < 0 (see CapacityError).
//	ErrCapacityOverflow - AddEdge would push the graph's total capacity past MaxInt64.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex label is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrNegativeCapacity indicates that an edge was registered with a capacity below zero.
	ErrNegativeCapacity = errors.New("core: negative capacity")

	// ErrCapacityOverflow indicates that the sum of all non-loop capacities
	// would no longer fit in an int64. Every flow value is bounded by that sum.
	ErrCapacityOverflow = errors.New("core: total capacity overflows int64")
)

// CapacityError is returned by AddEdge when an edge's capacity is rejected.
// Err is ErrNegativeCapacity or ErrCapacityOverflow; nil means ErrNegativeCapacity.
type CapacityError struct {
	From, To string
	Capacity int64
	Err      error
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%v on edge %q→%q: %d", e.Unwrap(), e.From, e.To, e.Capacity)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *CapacityError) Unwrap() error {
	if e.Err == nil {
		return ErrNegativeCapacity
	}
	return e.Err
}

// ParallelPolicy decides what a second AddEdge call for an already registered
// (from, to) pair does.
type ParallelPolicy int

const (
	// Accumulate keeps every registration as its own edge. The usable capacity
	// between the pair is the sum of all registrations. This is the default.
	Accumulate ParallelPolicy = iota

	// Overwrite replaces the capacity of the first registered (from, to) edge
	// with the latest value; the edge keeps its original position.
	Overwrite
)

// String returns the policy name.
func (p ParallelPolicy) String() string {
	switch p {
	case Accumulate:
		return "accumulate"
	case Overwrite:
		return "overwrite"
	default:
		return fmt.Sprintf("ParallelPolicy(%d)", int(p))
	}
}

// Edge is one registered (from, to, capacity) triple.
type Edge struct {
	// From is the tail vertex label.
	From string

	// To is the head vertex label.
	To string

	// Capacity is the non-negative maximum amount of flow the edge can carry.
	Capacity int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithParallelPolicy selects how repeated (from, to) registrations are merged.
// Panics on an unknown policy value.
func WithParallelPolicy(p ParallelPolicy) GraphOption {
	if p != Accumulate && p != Overwrite {
		panic(fmt.Sprintf("core: WithParallelPolicy(%d)", int(p)))
	}
	return func(g *Graph) { g.policy = p }
}

// pairKey addresses the first edge registered between two vertex indices.
type pairKey struct {
	from, to int
}

// Graph is a directed, capacitated graph keyed by string labels.
//
// The sum of all non-loop capacities always fits in an int64, so no flow value
// or per-vertex capacity sum derived from the graph can overflow.
//
// Vertices are created implicitly by AddEdge (or explicitly by AddVertex) and
// receive a dense integer index in insertion order. Edges are kept in insertion
// order. muVert protects the label catalog; muEdgeAdj protects the edge list.
// Lock order is always muVert -> muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards index and labels
	muEdgeAdj sync.RWMutex // guards edges and pairs

	policy ParallelPolicy

	index  map[string]int // label → dense index
	labels []string       // dense index → label

	edges []Edge
	pairs map[pairKey]int // (from,to) → position of the first edge in edges
	total int64           // sum of non-loop capacities, never above MaxInt64
}

// NewGraph creates an empty Graph. By default parallel edges accumulate.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index: make(map[string]int),
		pairs: make(map[pairKey]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Policy reports the parallel-edge policy chosen at construction time.
func (g *Graph) Policy() ParallelPolicy {
	return g.policy
}
