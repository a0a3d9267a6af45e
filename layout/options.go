package layout

import "github.com/katalvlaran/graphstat/core"

// Point is a single 2-D coordinate.
type Point struct {
	X, Y float64
}

// Result maps every node to its placed coordinate.
type Result map[core.NodeID]Point

// Options configures every layout; each layout reads only the subset it
// needs and ignores the rest.
type Options struct {
	Width, Height float64
	Padding       float64
	Seed          int64

	Iterations      int     // force-directed / kamada-kawai iteration cap
	K               float64 // force-directed ideal-distance scale constant
	IdealEdgeLength float64 // kamada-kawai base unit distance
	CoolingFactor   float64 // force-directed temperature schedule

	StartNode core.NodeID // bfs layout root

	Align      string // axis hint; not read by any layout
	Resolution float64

	// NodeProperties supplies the external partition multipartite and
	// shell group by (multipartite: group id; shell: shell index).
	NodeProperties map[core.NodeID]int
}

// DefaultOptions returns a sensible 800x600 frame with a 40px margin. It
// leaves Iterations at zero so force-directed applies its default of 50
// iterations and kamada-kawai its default cap of 300.
func DefaultOptions() Options {
	return Options{
		Width:           800,
		Height:          600,
		Padding:         40,
		CoolingFactor:   0.95,
		IdealEdgeLength: 1.0,
	}
}

// frame returns the padded rectangle's corners.
func (o Options) frame() (minX, minY, maxX, maxY float64) {
	return o.Padding, o.Padding, o.Width - o.Padding, o.Height - o.Padding
}

// clamp confines p inside o's padded frame, the bounding-box clamp every
// layout applies so coordinates stay within the documented contract even
// when an iterative simulation overshoots.
func (o Options) clamp(p Point) Point {
	minX, minY, maxX, maxY := o.frame()
	if p.X < minX {
		p.X = minX
	}
	if p.X > maxX {
		p.X = maxX
	}
	if p.Y < minY {
		p.Y = minY
	}
	if p.Y > maxY {
		p.Y = maxY
	}
	return p
}
