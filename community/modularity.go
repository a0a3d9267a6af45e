package community

import "github.com/katalvlaran/graphstat/core"

// Modularity computes Q for a partition of g using the per-community form
// Q = Σ_c [ Σ_in(c)/2m - (Σ_tot(c)/2m)² ], scaled by resolution γ on its
// second term. This is the formula the rewrite standardises on (see
// DESIGN.md's Open Question resolution): core.Graph forbids self-loops, so
// this form and the equivalent O(n²) pairwise form never diverge here.
func Modularity(g *core.Graph, partition map[core.NodeID]int, resolution float64) float64 {
	m := g.TotalWeight()
	if m == 0 {
		return 0
	}

	sigmaTot := make(map[int]float64)
	sigmaIn := make(map[int]float64)

	for _, id := range g.NodeIDs() {
		sigmaTot[partition[id]] += g.WeightedDegree(id)
	}
	for _, e := range g.Edges() {
		if partition[e.From] == partition[e.To] {
			sigmaIn[partition[e.From]] += e.W
		}
	}

	var q float64
	for c, tot := range sigmaTot {
		// sigmaIn counts each internal edge once already (g.Edges() yields
		// each undirected edge once); the modularity literature's Σ_in
		// counts endpoints from both directions, i.e. 2x this sum.
		in := 2 * sigmaIn[c]
		q += in/(2*m) - resolution*(tot/(2*m))*(tot/(2*m))
	}
	return q
}
