package puzzle

import (
	"math"
	"math/rand"
)

const methodGenerate = "Generate"

// Generate draws a new round: every link of the configured topology becomes a
// road with a capacity drawn uniformly from the configured range. Links are
// emitted in layout order, so a fixed seed yields an identical round (ID aside).
//
// Errors: ErrNeedRandSource without WithSeed/WithRand; otherwise whatever
// NewRound reports for the resulting roads (e.g. source == sink, or
// core.ErrCapacityOverflow when huge ranges make the total overflow).
func Generate(opts ...Option) (*Round, error) {
	cfg := newGeneratorConfig(opts...)
	if cfg.rng == nil {
		return nil, puzzleErrorf(methodGenerate, "%w", ErrNeedRandSource)
	}

	roads := make([]Road, len(cfg.links))
	for i, l := range cfg.links {
		roads[i] = Road{From: l.From, To: l.To, Capacity: cfg.minCap + drawUpTo(cfg.rng, cfg.maxCap-cfg.minCap)}
	}

	return NewRound(cfg.source, cfg.sink, roads)
}

// drawUpTo returns a uniform value in [0, n] for any n >= 0.
func drawUpTo(rng *rand.Rand, n int64) int64 {
	if n == math.MaxInt64 {
		return int64(rng.Uint64() >> 1)
	}
	return rng.Int63n(n + 1)
}
