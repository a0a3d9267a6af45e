package layout

import (
	"math"
	"sort"

	"github.com/katalvlaran/graphstat/core"
)

// Shell places nodes on concentric circles grouped by opts.NodeProperties
// (an external partition of node -> shell key) or, if NodeProperties is
// nil, by degree bucket (each distinct degree value becomes its own
// shell). Shells are ordered by ascending key, innermost first; nodes
// within a shell are spaced equally in insertion order.
func Shell(g *core.Graph, opts Options) (Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	ids := g.NodeIDs()
	out := make(Result, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	groupOf := opts.NodeProperties
	if groupOf == nil {
		groupOf = make(map[core.NodeID]int, len(ids))
		for _, id := range ids {
			groupOf[id] = g.Degree(id)
		}
	}

	shells := make(map[int][]core.NodeID)
	for _, id := range ids {
		key := groupOf[id]
		shells[key] = append(shells[key], id)
	}

	keys := make([]int, 0, len(shells))
	for k := range shells {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	minX, minY, maxX, maxY := opts.frame()
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	maxR := math.Min(maxX-minX, maxY-minY) / 2
	numShells := len(keys)

	for shellIdx, key := range keys {
		members := shells[key]
		r := maxR * float64(shellIdx+1) / float64(numShells)
		for i, id := range members {
			theta := 2 * math.Pi * float64(i) / float64(len(members))
			out[id] = opts.clamp(Point{X: cx + r*math.Cos(theta), Y: cy + r*math.Sin(theta)})
		}
	}
	return out, nil
}
