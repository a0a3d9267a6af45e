package metrics

import (
	"context"
	"math"

	"github.com/katalvlaran/graphstat/core"
)

// EigenvectorOptions configures EigenvectorCentrality's power iteration.
type EigenvectorOptions struct {
	Tol     float64 // convergence tolerance; default 1e-6
	MaxIter int     // iteration cap; default 100000
}

// DefaultEigenvectorOptions returns the spec-mandated defaults.
func DefaultEigenvectorOptions() EigenvectorOptions {
	return EigenvectorOptions{Tol: 1e-6, MaxIter: 100000}
}

// EigenvectorCentrality computes eigenvector centrality via power iteration
// starting from the uniform vector x0 = 1/n, iterating x' = A·x over the
// weighted adjacency matrix and L2-renormalising at every step. It stops
// when Σ|x'[u] - x[u]| < opts.Tol or after opts.MaxIter iterations.
//
// If the L2 norm collapses to zero (every node isolated), every node's
// score is reported as zero rather than dividing by zero. ctx is checked at
// every outer-loop boundary; progress is reported once per iteration scaled
// against opts.MaxIter.
func EigenvectorCentrality(ctx context.Context, g *core.Graph, opts EigenvectorOptions, progress ProgressFunc) (map[core.NodeID]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	ids := g.NodeIDs()
	n := len(ids)
	out := make(map[core.NodeID]float64, n)
	if n == 0 {
		return out, nil
	}

	idx := make(map[core.NodeID]int, n)
	for i, id := range ids {
		idx[id] = i
	}

	x := make([]float64, n)
	for i := range x {
		x[i] = 1.0 / float64(n)
	}

	report(progress, 0.0)

	for iter := 0; iter < opts.MaxIter; iter++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		next := make([]float64, n)
		for i, u := range ids {
			var sum float64
			for _, v := range g.Neighbors(u) {
				w, _ := g.EdgeWeight(u, v)
				sum += w * x[idx[v]]
			}
			next[i] = sum
		}

		norm := l2Norm(next)
		if norm == 0 {
			for i := range x {
				x[i] = 0
			}
			report(progress, 1.0)
			for i, id := range ids {
				out[id] = x[i]
			}
			return out, nil
		}
		for i := range next {
			next[i] /= norm
		}

		var delta float64
		for i := range next {
			delta += math.Abs(next[i] - x[i])
		}
		x = next

		frac := float64(iter+1) / float64(opts.MaxIter)
		if frac > 1 {
			frac = 1
		}
		report(progress, frac)

		if delta < opts.Tol {
			break
		}
	}

	report(progress, 1.0)
	for i, id := range ids {
		out[id] = x[i]
	}
	return out, nil
}

func l2Norm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}
