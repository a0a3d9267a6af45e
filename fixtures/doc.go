// Package fixtures provides deterministic graph constructors for tests:
// Path, Cycle, Star, Complete,
// RandomSparse, and Bipartite. Each constructor is a Constructor closure
// applied by BuildGraph, following the same builder-closure shape the
// teacher library uses, narrowed to graphstat's single undirected-weighted
// graph shape — there is no Directed/Looped/Multigraph mode to thread
// through, so a fixture only ever needs a node-ID scheme and a weight
// source.
package fixtures

import "errors"

// ErrTooFewNodes is returned when a constructor's node count is below its
// minimum (2 for Path, 3 for Cycle, 1 for Star/Complete/RandomSparse).
var ErrTooFewNodes = errors.New("fixtures: too few nodes")

// ErrInvalidProbability is returned when RandomSparse's edge probability is
// outside [0, 1].
var ErrInvalidProbability = errors.New("fixtures: probability must be in [0,1]")

// ErrNeedRandSource is returned when a stochastic constructor needs an RNG
// and WithSeed/WithRand was never applied.
var ErrNeedRandSource = errors.New("fixtures: random source required")
