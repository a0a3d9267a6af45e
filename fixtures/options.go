package fixtures

import (
	"math/rand"

	"github.com/katalvlaran/graphstat/core"
)

// WeightFn produces an edge weight given an optional *rand.Rand source. It
// must be deterministic for a fixed RNG seed.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns 1, matching an unweighted topology
// expressed in graphstat's weighted-only graph model.
func DefaultWeightFn(_ *rand.Rand) float64 { return 1 }

// UniformWeightFn samples uniformly in [min, max]. Returns min if rng is
// nil or max <= min.
func UniformWeightFn(min, max float64) WeightFn {
	return func(rng *rand.Rand) float64 {
		if rng == nil || max <= min {
			return min
		}
		return min + rng.Float64()*(max-min)
	}
}

type config struct {
	idFn     func(int) core.NodeID
	rng      *rand.Rand
	weightFn WeightFn
}

func defaultConfig() config {
	return config{
		idFn:     func(i int) core.NodeID { return core.NodeID(rune('A' + i)) },
		weightFn: DefaultWeightFn,
	}
}

// Option customizes a fixture's construction.
type Option func(*config)

// WithIDScheme overrides the default index->NodeID mapping (A, B, C, ...,
// which past 26 nodes continues with the runes after 'Z': punctuation such
// as '[' and then lower-case letters).
func WithIDScheme(fn func(int) core.NodeID) Option {
	return func(c *config) { c.idFn = fn }
}

// WithSeed attaches a deterministic *rand.Rand seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand attaches an explicit RNG, letting callers share one RNG across
// several fixtures for reproducible composite scenarios.
func WithRand(r *rand.Rand) Option {
	return func(c *config) { c.rng = r }
}

// WithWeightFn overrides the default constant-1 edge weight.
func WithWeightFn(fn WeightFn) Option {
	return func(c *config) { c.weightFn = fn }
}
