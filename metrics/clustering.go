package metrics

import "github.com/katalvlaran/graphstat/core"

// Clustering computes the local clustering coefficient of every node in g:
// for a node with degree k >= 2, the fraction of neighbour pairs that are
// themselves adjacent, out of the k(k-1)/2 possible pairs. Nodes with
// degree < 2 score 0. Complexity: O(Σ k^2) worst case.
func Clustering(g *core.Graph) (map[core.NodeID]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	out := make(map[core.NodeID]float64, g.NumNodes())

	for _, u := range g.NodeIDs() {
		nbrs := g.Neighbors(u)
		k := len(nbrs)
		if k < 2 {
			out[u] = 0
			continue
		}

		var links int
		for i := 0; i < len(nbrs); i++ {
			for j := i + 1; j < len(nbrs); j++ {
				if g.HasEdge(nbrs[i], nbrs[j]) {
					links++
				}
			}
		}

		out[u] = float64(2*links) / float64(k*(k-1))
	}

	return out, nil
}
