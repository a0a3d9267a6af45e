package metrics

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/graphstat/core"
	"github.com/katalvlaran/graphstat/matrix"
)

// LaplacianCoords holds, per node, the coordinates along the Fiedler vector
// (the eigenvector for the second-smallest Laplacian eigenvalue) and the
// next eigenvector (third-smallest), the two coordinates the spectral
// layout plots directly.
type LaplacianCoords struct {
	X map[core.NodeID]float64
	Y map[core.NodeID]float64
}

// ErrGraphTooLarge is returned when LaplacianEigenvectors is asked to
// decompose a graph above its dense-matrix size ceiling.
var ErrGraphTooLarge = fmt.Errorf("metrics: graph exceeds the dense Laplacian size ceiling")

// LaplacianEigenvectors builds the unweighted combinatorial Laplacian
// L = D - A and finds its second- and third-smallest eigenvalues'
// eigenvectors via Jacobi rotation, the precomputed coordinates the
// spectral layout requires. maxNodes bounds the dense n×n decomposition;
// pass 0 to disable the check.
func LaplacianEigenvectors(ctx context.Context, g *core.Graph, maxNodes int, progress ProgressFunc) (*LaplacianCoords, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	ids := g.NodeIDs()
	n := len(ids)
	if maxNodes > 0 && n > maxNodes {
		return nil, fmt.Errorf("metrics: LaplacianEigenvectors: n=%d > max=%d: %w", n, maxNodes, ErrGraphTooLarge)
	}

	out := &LaplacianCoords{X: make(map[core.NodeID]float64, n), Y: make(map[core.NodeID]float64, n)}
	if n == 0 {
		return out, nil
	}
	if n == 1 {
		out.X[ids[0]] = 0
		out.Y[ids[0]] = 0
		return out, nil
	}

	idx := make(map[core.NodeID]int, n)
	for i, id := range ids {
		idx[id] = i
	}

	L, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("metrics: LaplacianEigenvectors: %w", err)
	}
	for i, u := range ids {
		L.Set(i, i, float64(g.Degree(u)))
		for _, v := range g.Neighbors(u) {
			L.Set(i, idx[v], -1)
		}
	}

	report(progress, 0.25)

	eigs, Q, err := matrix.Eigen(L, 1e-9, 500)
	if err != nil {
		return nil, fmt.Errorf("metrics: LaplacianEigenvectors: %w", err)
	}

	report(progress, 0.75)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return eigs[order[a]] < eigs[order[b]] })

	fiedlerCol := order[1]
	nextCol := order[2%n]
	if n == 2 {
		nextCol = order[1]
	}

	fiedler := Q.Column(fiedlerCol)
	next := Q.Column(nextCol)
	for i, id := range ids {
		out.X[id] = fiedler[i]
		out.Y[id] = next[i]
	}

	report(progress, 1.0)
	return out, nil
}
