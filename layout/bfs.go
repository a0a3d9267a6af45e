package layout

import (
	"github.com/katalvlaran/graphstat/core"
	"github.com/katalvlaran/graphstat/traverse"
)

// BFS places nodes on parallel vertical axes indexed by hop-distance from
// opts.StartNode; unreachable nodes are placed on a trailing axis one step
// beyond the farthest reached distance. Fails with ErrPreconditionUnmet if
// opts.StartNode is not in g.
func BFS(g *core.Graph, opts Options) (Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(opts.StartNode) {
		return nil, ErrPreconditionUnmet
	}

	res, err := traverse.BFS(g, opts.StartNode)
	if err != nil {
		return nil, err
	}

	byDepth := make(map[int][]core.NodeID)
	maxDepth := 0
	for _, id := range g.NodeIDs() {
		d, reached := res.Depth[id]
		if !reached {
			continue
		}
		byDepth[d] = append(byDepth[d], id)
		if d > maxDepth {
			maxDepth = d
		}
	}
	var unreached []core.NodeID
	for _, id := range g.NodeIDs() {
		if _, reached := res.Depth[id]; !reached {
			unreached = append(unreached, id)
		}
	}
	if len(unreached) > 0 {
		byDepth[maxDepth+1] = unreached
		maxDepth++
	}

	minX, minY, maxX, maxY := opts.frame()
	out := make(Result, g.NumNodes())
	for d := 0; d <= maxDepth; d++ {
		members := byDepth[d]
		if len(members) == 0 {
			continue
		}
		var axisX float64
		if maxDepth == 0 {
			axisX = (minX + maxX) / 2
		} else {
			axisX = minX + (maxX-minX)*float64(d)/float64(maxDepth)
		}
		placeAxis(out, members, axisX, minY, maxY, opts)
	}
	return out, nil
}
