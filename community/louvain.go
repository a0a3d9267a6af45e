package community

import (
	"context"
	"math/rand"

	"github.com/katalvlaran/graphstat/core"
)

// ProgressFunc receives a monotonically non-decreasing fraction in [0,1].
type ProgressFunc func(fraction float64)

func report(p ProgressFunc, fraction float64) {
	if p != nil {
		p(fraction)
	}
}

// Options configures Louvain.
type Options struct {
	Resolution float64 // γ; default 1.0
	Seed       int64   // 0 means "use insertion order, no shuffle"
	MaxIter    int     // caps local-moving sweeps per level and the number of levels; default 100
}

// DefaultOptions returns the spec-mandated defaults.
func DefaultOptions() Options {
	return Options{Resolution: 1.0, MaxIter: 100}
}

// Result is Louvain's output: the final partition over the original
// graph's nodes, its modularity, community count, and the number of
// levels (one local-moving phase each) actually run.
type Result struct {
	Communities    map[core.NodeID]int
	Modularity     float64
	NumCommunities int
	Iterations     int
}

// Louvain runs modularity-optimising community detection on g: alternating
// local-moving and contraction phases until a full local-moving sweep
// produces zero moves, the global modularity gain between successive
// contraction levels falls below 1e-7, or opts.MaxIter levels have run
// (each level's local-moving phase is itself capped at opts.MaxIter sweeps).
// Community ids are renumbered 0..k-1 in first-appearance order, and the
// reported modularity is recomputed on the original graph with the fully
// unpacked partition. Given the same graph, resolution, and seed, the
// partition is bit-identical across runs.
func Louvain(ctx context.Context, g *core.Graph, opts Options, progress ProgressFunc) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	// localMoving restarts its sweep fraction at every level; forward only
	// values that do not fall below the last one reported.
	if progress != nil {
		inner, last := progress, 0.0
		progress = func(fraction float64) {
			if fraction < last {
				return
			}
			last = fraction
			inner(fraction)
		}
	}

	ids := g.NodeIDs()
	n := len(ids)
	if n == 0 {
		return &Result{Communities: map[core.NodeID]int{}}, nil
	}

	idx := make(map[core.NodeID]int, n)
	for i, id := range ids {
		idx[id] = i
	}

	lg := newLevelGraph(n)
	for _, e := range g.Edges() {
		lg.addEdge(idx[e.From], idx[e.To], e.W)
	}
	m := g.TotalWeight()

	var rng *rand.Rand
	if opts.Seed != 0 {
		rng = rand.New(rand.NewSource(opts.Seed))
	}

	// finalLabel maps an original node index to its community id at the
	// current contraction level; it is re-derived after every contraction
	// by composing the previous level's mapping with the new one.
	finalLabel := make([]int, n)
	for i := range finalLabel {
		finalLabel[i] = i
	}

	var prevModularity float64
	totalIterations := 0

	for level := 0; ; level++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		order := shuffledOrder(lg.n, rng)
		lmResult, err := localMoving(ctx, lg, m, opts.Resolution, order, opts.MaxIter, progress)
		if err != nil {
			return nil, err
		}
		totalIterations++

		for i := range finalLabel {
			finalLabel[i] = lmResult.label[finalLabel[i]]
		}

		partition := make(map[core.NodeID]int, n)
		for i, id := range ids {
			partition[id] = finalLabel[i]
		}
		curModularity := Modularity(g, partition, opts.Resolution)

		if !lmResult.moved || curModularity-prevModularity < 1e-7 || totalIterations >= opts.MaxIter {
			report(progress, 1.0)
			return &Result{
				Communities:    partition,
				Modularity:     curModularity,
				NumCommunities: lmResult.numCommunities,
				Iterations:     totalIterations,
			}, nil
		}

		prevModularity = curModularity
		lg = contract(lg, lmResult.label, lmResult.numCommunities)
	}
}
