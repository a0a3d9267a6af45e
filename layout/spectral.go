package layout

import (
	"github.com/katalvlaran/graphstat/core"
	"github.com/katalvlaran/graphstat/metrics"
)

// Spectral places node u at (Fiedler_vector[u], next_eigenvector[u]),
// linearly rescaled into the padded frame. coords must already hold every
// node in g — the façade's job is to run metrics.LaplacianEigenvectors
// first when spectral is requested without it (spec.md §4.D); Spectral
// itself just fails with ErrPreconditionUnmet if coords is nil or
// incomplete.
func Spectral(g *core.Graph, coords *metrics.LaplacianCoords, opts Options) (Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if coords == nil {
		return nil, ErrPreconditionUnmet
	}

	ids := g.NodeIDs()
	if len(ids) == 0 {
		return Result{}, nil
	}

	minXv, maxXv := coords.X[ids[0]], coords.X[ids[0]]
	minYv, maxYv := coords.Y[ids[0]], coords.Y[ids[0]]
	for _, id := range ids {
		x, ok := coords.X[id]
		if !ok {
			return nil, ErrPreconditionUnmet
		}
		y, ok := coords.Y[id]
		if !ok {
			return nil, ErrPreconditionUnmet
		}
		if x < minXv {
			minXv = x
		}
		if x > maxXv {
			maxXv = x
		}
		if y < minYv {
			minYv = y
		}
		if y > maxYv {
			maxYv = y
		}
	}

	minX, minY, maxX, maxY := opts.frame()
	out := make(Result, len(ids))
	for _, id := range ids {
		out[id] = opts.clamp(Point{
			X: rescale(coords.X[id], minXv, maxXv, minX, maxX),
			Y: rescale(coords.Y[id], minYv, maxYv, minY, maxY),
		})
	}
	return out, nil
}

// rescale linearly maps v from [srcMin, srcMax] into [dstMin, dstMax],
// collapsing to the destination midpoint when the source range is
// degenerate (every node shares the same coordinate).
func rescale(v, srcMin, srcMax, dstMin, dstMax float64) float64 {
	if srcMax-srcMin < 1e-12 {
		return (dstMin + dstMax) / 2
	}
	t := (v - srcMin) / (srcMax - srcMin)
	return dstMin + t*(dstMax-dstMin)
}
