package layout

import (
	"sort"

	"github.com/katalvlaran/graphstat/core"
)

// Multipartite places nodes on parallel vertical axes grouped by
// opts.NodeProperties (node -> group id), one axis per distinct group,
// ordered by ascending group id left to right. Requires NodeProperties;
// fails with ErrPreconditionUnmet if nil.
func Multipartite(g *core.Graph, opts Options) (Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if opts.NodeProperties == nil {
		return nil, ErrPreconditionUnmet
	}

	groups := make(map[int][]core.NodeID)
	for _, id := range g.NodeIDs() {
		key := opts.NodeProperties[id]
		groups[key] = append(groups[key], id)
	}

	keys := make([]int, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	minX, minY, maxX, maxY := opts.frame()
	out := make(Result, g.NumNodes())
	numAxes := len(keys)
	for i, key := range keys {
		var axisX float64
		if numAxes == 1 {
			axisX = (minX + maxX) / 2
		} else {
			axisX = minX + (maxX-minX)*float64(i)/float64(numAxes-1)
		}
		placeAxis(out, groups[key], axisX, minY, maxY, opts)
	}
	return out, nil
}
