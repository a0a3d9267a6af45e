package layout

import (
	"math"

	"github.com/katalvlaran/graphstat/core"
)

// Circular places nodes equally spaced on a circle inscribed in the padded
// rectangle, in graph insertion order.
func Circular(g *core.Graph, opts Options) (Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	ids := g.NodeIDs()
	n := len(ids)
	out := make(Result, n)
	if n == 0 {
		return out, nil
	}

	minX, minY, maxX, maxY := opts.frame()
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	r := math.Min(maxX-minX, maxY-minY) / 2

	for i, id := range ids {
		theta := 2 * math.Pi * float64(i) / float64(n)
		out[id] = opts.clamp(Point{X: cx + r*math.Cos(theta), Y: cy + r*math.Sin(theta)})
	}
	return out, nil
}
