package layout

import (
	"github.com/katalvlaran/graphstat/core"
	"github.com/katalvlaran/graphstat/traverse"
)

// Bipartite places the graph's two colour classes (found via
// traverse.BipartiteColoring) on two parallel vertical axes at the frame's
// left and right padding, evenly spaced top to bottom within each side.
// Fails with ErrPreconditionUnmet if g is not bipartite.
func Bipartite(g *core.Graph, opts Options) (Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	color, ok := traverse.BipartiteColoring(g)
	if !ok {
		return nil, ErrPreconditionUnmet
	}

	var left, right []core.NodeID
	for _, id := range g.NodeIDs() {
		if color[id] == 0 {
			left = append(left, id)
		} else {
			right = append(right, id)
		}
	}

	out := make(Result, g.NumNodes())
	minX, minY, maxX, maxY := opts.frame()
	placeAxis(out, left, minX, minY, maxY, opts)
	placeAxis(out, right, maxX, minY, maxY, opts)
	return out, nil
}

// placeAxis spaces ids evenly along the vertical line x=axisX, between
// minY and maxY.
func placeAxis(out Result, ids []core.NodeID, axisX, minY, maxY float64, opts Options) {
	n := len(ids)
	if n == 0 {
		return
	}
	if n == 1 {
		out[ids[0]] = opts.clamp(Point{X: axisX, Y: (minY + maxY) / 2})
		return
	}
	step := (maxY - minY) / float64(n-1)
	for i, id := range ids {
		out[id] = opts.clamp(Point{X: axisX, Y: minY + step*float64(i)})
	}
}
