// SPDX-License-Identifier: MIT
// Package: trafficflow/puzzle
//
// options.go - functional options and defaults for Generate.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generate itself never panics; it returns sentinel errors.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • Options apply in order; later options override earlier ones.

package puzzle

import (
	"math/rand"
)

// Link is one road of a topology without its capacity.
type Link struct {
	From, To string
}

// Default round layout: source A, sink T, eight junctions.
const (
	DefaultSource      = "A"
	DefaultSink        = "T"
	defaultMinCapacity = int64(5)
	defaultMaxCapacity = int64(15)
)

// defaultLinks is the road layout of the classic traffic round.
var defaultLinks = []Link{
	{"A", "B"}, {"A", "C"}, {"A", "D"},
	{"B", "E"}, {"B", "F"},
	{"C", "E"}, {"C", "F"},
	{"D", "F"},
	{"E", "G"}, {"E", "H"},
	{"F", "H"},
	{"G", "T"},
	{"H", "T"},
}

// DefaultLinks returns a copy of the default road layout.
func DefaultLinks() []Link {
	return append([]Link(nil), defaultLinks...)
}

// generatorConfig aggregates all knobs used by Generate.
type generatorConfig struct {
	rng          *rand.Rand
	minCap       int64
	maxCap       int64
	source, sink string
	links        []Link
}

// Option customizes Generate.
type Option func(*generatorConfig)

func newGeneratorConfig(opts ...Option) generatorConfig {
	cfg := generatorConfig{
		minCap: defaultMinCapacity,
		maxCap: defaultMaxCapacity,
		source: DefaultSource,
		sink:   DefaultSink,
		links:  defaultLinks,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *generatorConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("puzzle: WithRand(nil)")
	}
	return func(c *generatorConfig) {
		c.rng = r
	}
}

// WithCapacityRange sets the inclusive capacity range drawn for each road.
// Panics if min < 0 or max < min.
func WithCapacityRange(min, max int64) Option {
	if min < 0 || max < min {
		panic("puzzle: WithCapacityRange requires 0 <= min <= max")
	}
	return func(c *generatorConfig) {
		c.minCap, c.maxCap = min, max
	}
}

// WithTopology replaces the road layout and terminals.
// Panics on empty terminals or an empty layout; the links slice is copied.
func WithTopology(source, sink string, links []Link) Option {
	if source == "" || sink == "" || len(links) == 0 {
		panic("puzzle: WithTopology requires source, sink and at least one link")
	}
	cp := append([]Link(nil), links...)
	return func(c *generatorConfig) {
		c.source, c.sink, c.links = source, sink, cp
	}
}
