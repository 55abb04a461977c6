// Package puzzle models one round of the traffic-network game: a set of
// one-way roads with vehicle-per-minute capacities between junctions, a
// source and a sink. The player guesses the maximum traffic that can travel
// from source to sink; Grade checks the guess against the engine.
package puzzle

import (
	uuid "github.com/satori/go.uuid"

	"github.com/katalvlaran/trafficflow/core"
)

const (
	methodNewRound = "NewRound"
	methodGraph    = "Graph"
)

// Road is one directed road between two junctions.
type Road struct {
	From     string `toml:"from"`
	To       string `toml:"to"`
	Capacity int64  `toml:"capacity"`
}

// Round is one puzzle instance. Roads keep their registration order.
type Round struct {
	ID     uuid.UUID `toml:"id"`
	Source string    `toml:"source"`
	Sink   string    `toml:"sink"`
	Roads  []Road    `toml:"road"`
}

// NewRound validates the input and returns a round with a fresh v4 ID.
//
// Validation:
//   - source and sink non-empty (ErrEmptyTerminal) and distinct (ErrSameTerminals);
//   - at least one road (ErrNoRoads);
//   - every road accepted by core.Graph.AddEdge (empty labels, negative capacity).
//
// The source or sink need not appear on any road: such a round simply has a
// maximum flow of 0.
func NewRound(source, sink string, roads []Road) (*Round, error) {
	r := &Round{
		ID:     uuid.Must(uuid.NewV4()),
		Source: source,
		Sink:   sink,
		Roads:  append([]Road(nil), roads...),
	}
	if err := r.validate(methodNewRound); err != nil {
		return nil, err
	}

	return r, nil
}

// validate checks terminals and roads; method prefixes the error.
func (r *Round) validate(method string) error {
	if r.Source == "" || r.Sink == "" {
		return puzzleErrorf(method, "%w", ErrEmptyTerminal)
	}
	if r.Source == r.Sink {
		return puzzleErrorf(method, "%q: %w", r.Source, ErrSameTerminals)
	}
	if len(r.Roads) == 0 {
		return puzzleErrorf(method, "%w", ErrNoRoads)
	}
	if _, err := r.build(method); err != nil {
		return err
	}

	return nil
}

// Graph builds a fresh core.Graph from the round's roads. Each call returns an
// independent graph.
func (r *Round) Graph(opts ...core.GraphOption) (*core.Graph, error) {
	if r == nil {
		return nil, ErrNilRound
	}
	return r.build(methodGraph, opts...)
}

func (r *Round) build(method string, opts ...core.GraphOption) (*core.Graph, error) {
	g := core.NewGraph(opts...)
	for i, road := range r.Roads {
		if err := g.AddEdge(road.From, road.To, road.Capacity); err != nil {
			return nil, puzzleErrorf(method, "road %d: %w", i, err)
		}
	}

	return g, nil
}
