package metrics

import "github.com/katalvlaran/graphstat/core"

// Degree returns the unweighted incidence count of every node in g.
func Degree(g *core.Graph) (map[core.NodeID]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	out := make(map[core.NodeID]int, g.NumNodes())
	for _, id := range g.NodeIDs() {
		out[id] = g.Degree(id)
	}
	return out, nil
}
