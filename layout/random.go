package layout

import (
	"math/rand"

	"github.com/katalvlaran/graphstat/core"
)

// Random places every node uniformly at random inside the padded frame,
// seeded by opts.Seed.
func Random(g *core.Graph, opts Options) (Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	minX, minY, maxX, maxY := opts.frame()
	rng := rand.New(rand.NewSource(opts.Seed))

	out := make(Result, g.NumNodes())
	for _, id := range g.NodeIDs() {
		out[id] = opts.clamp(Point{
			X: minX + rng.Float64()*(maxX-minX),
			Y: minY + rng.Float64()*(maxY-minY),
		})
	}
	return out, nil
}
