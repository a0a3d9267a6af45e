package community

import (
	"context"
	"math/rand"
	"sort"
)

// localMovingResult is one sweep-to-convergence pass of phase 1.
type localMovingResult struct {
	label          []int // node -> community id (not yet densely renumbered)
	numCommunities int
	moved          bool // true iff at least one node changed community
}

// localMoving repeats sweeps over lg's nodes, moving each to the
// neighbouring community (including staying put) that yields the largest
// strictly positive modularity gain, until a full sweep makes zero moves or
// maxSweeps is reached. order is the node visitation order for this call
// (either lg's natural 0..n-1 order, or a seeded shuffle of it).
func localMoving(ctx context.Context, lg *levelGraph, m float64, resolution float64, order []int, maxSweeps int, progress ProgressFunc) (*localMovingResult, error) {
	label := make([]int, lg.n)
	for i := range label {
		label[i] = i
	}

	sigmaTot := make([]float64, lg.n)
	for u := 0; u < lg.n; u++ {
		sigmaTot[u] = lg.degree(u)
	}

	anyMove := false
	for sweep := 0; sweep < maxSweeps; sweep++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		sweepMoved := false
		for _, u := range order {
			best, gain := bestMove(lg, u, label, sigmaTot, m, resolution)
			if gain > 0 && best != label[u] {
				moveNode(lg, u, label, sigmaTot, best)
				sweepMoved = true
				anyMove = true
			}
		}

		report(progress, float64(sweep+1)/float64(maxSweeps))
		if !sweepMoved {
			break
		}
	}

	// Densely renumber in first-appearance order, scanning lg's natural
	// node order (not the shuffled visitation order) for reproducibility.
	remap := make(map[int]int)
	dense := make([]int, lg.n)
	for u := 0; u < lg.n; u++ {
		c := label[u]
		id, ok := remap[c]
		if !ok {
			id = len(remap)
			remap[c] = id
		}
		dense[u] = id
	}

	return &localMovingResult{label: dense, numCommunities: len(remap), moved: anyMove}, nil
}

// bestMove returns the community (among u's neighbouring communities and
// u's own) that maximises Δ_move(u -> C), and that gain. Per spec.md §4.C,
// Δ_move(u→C) = insertGain(C) - insertGain(C_old), where insertGain(X) =
// k_{u,X}/m - γ·Σ_tot(X)·k_u/(2m²) is evaluated with u already removed from
// its own community (so Σ_tot(C_old) already excludes k_u). Since
// insertGain(C_old) is the same constant for every candidate, maximising
// Δ_move is equivalent to maximising insertGain directly; candidates are
// walked in ascending community-id order so the first strict improvement
// found is also the lowest-id tie-break the spec requires.
func bestMove(lg *levelGraph, u int, label []int, sigmaTot []float64, m, resolution float64) (best int, bestGain float64) {
	cOld := label[u]
	ku := lg.degree(u)

	kuC, candidates := neighborCommunityWeights(lg, u, label)

	sigmaTot[cOld] -= ku
	insertGain := func(c int) float64 {
		return kuC[c]/m - resolution*sigmaTot[c]*ku/(2*m*m)
	}
	baseline := insertGain(cOld)

	best = cOld
	bestGain = 0
	for _, c := range candidates {
		gain := insertGain(c) - baseline
		if gain > bestGain {
			bestGain = gain
			best = c
		}
	}
	sigmaTot[cOld] += ku

	return best, bestGain
}

// neighborCommunityWeights sums, for every community touched by u's
// neighbours, the weight of edges from u into that community (k_{u,C}),
// and returns the touched communities in ascending id order (u's own
// community is always included, even with zero weight, so staying put is
// always a candidate to compare against).
func neighborCommunityWeights(lg *levelGraph, u int, label []int) (weights map[int]float64, ordered []int) {
	weights = make(map[int]float64)
	seen := make(map[int]bool)
	weights[label[u]] = 0
	seen[label[u]] = true
	ordered = append(ordered, label[u])

	for v, w := range lg.adj[u] {
		c := label[v]
		weights[c] += w
		if !seen[c] {
			seen[c] = true
			ordered = append(ordered, c)
		}
	}
	sort.Ints(ordered)
	return weights, ordered
}

func moveNode(lg *levelGraph, u int, label []int, sigmaTot []float64, newC int) {
	oldC := label[u]
	sigmaTot[oldC] -= lg.degree(u)
	label[u] = newC
	sigmaTot[newC] += lg.degree(u)
}

// shuffledOrder returns a deterministic seeded permutation of 0..n-1 when
// rng is non-nil, or the identity order otherwise.
func shuffledOrder(n int, rng *rand.Rand) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if rng == nil {
		return order
	}
	rng.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })
	return order
}
