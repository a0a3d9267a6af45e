package layout

import (
	"math"

	"github.com/katalvlaran/graphstat/core"
)

// Spiral places nodes along an Archimedean spiral r = a·θ in insertion
// order. opts.Resolution sets the angular step per node (default π/8 when
// zero or negative); the radial scale a is chosen so the spiral's final
// radius fits the padded frame.
func Spiral(g *core.Graph, opts Options) (Result, error) {
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
	maxR := math.Min(maxX-minX, maxY-minY) / 2

	step := opts.Resolution
	if step <= 0 {
		step = math.Pi / 8
	}
	thetaMax := step * float64(n)
	a := 0.0
	if thetaMax > 0 {
		a = maxR / thetaMax
	}

	for i, id := range ids {
		theta := step * float64(i)
		r := a * theta
		out[id] = opts.clamp(Point{X: cx + r*math.Cos(theta), Y: cy + r*math.Sin(theta)})
	}
	return out, nil
}
