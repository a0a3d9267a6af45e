package community

// levelGraph is Louvain's internal weighted multigraph representation: a
// dense set of integer node ids 0..n-1, an adjacency map for inter-node
// weights, and a parallel self-loop weight vector. Self-loops accumulate
// during contraction (every edge that became internal to a merged
// community folds into its super-node's self-loop weight) — something the
// public core.Graph disallows by invariant, so Louvain keeps its own
// representation rather than reusing core.Graph across contraction levels.
type levelGraph struct {
	n        int
	adj      []map[int]float64
	selfLoop []float64
	// members[i] lists the original-graph node indices folded into
	// super-node i at this level; at level 0 members[i] == {i}.
	members [][]int
}

func newLevelGraph(n int) *levelGraph {
	lg := &levelGraph{
		n:        n,
		adj:      make([]map[int]float64, n),
		selfLoop: make([]float64, n),
		members:  make([][]int, n),
	}
	for i := range lg.adj {
		lg.adj[i] = make(map[int]float64)
		lg.members[i] = []int{i}
	}
	return lg
}

// degree returns k_u = Σ_v adj[u][v] + 2*selfLoop[u], the weighted degree
// convention standard to the modularity literature (a self-loop contributes
// twice to a node's own degree).
func (lg *levelGraph) degree(u int) float64 {
	var sum float64
	for _, w := range lg.adj[u] {
		sum += w
	}
	return sum + 2*lg.selfLoop[u]
}

func (lg *levelGraph) addEdge(u, v int, w float64) {
	if u == v {
		lg.selfLoop[u] += w
		return
	}
	lg.adj[u][v] += w
	lg.adj[v][u] += w
}

// contract builds the next-level graph by collapsing each community in
// label (node -> community id, dense in [0, numCommunities)) into a single
// super-node. Inter-community edge weights sum; intra-community weights
// (including any pre-existing self-loops) become the super-node's
// self-loop weight.
func contract(lg *levelGraph, label []int, numCommunities int) *levelGraph {
	next := newLevelGraph(numCommunities)
	for i := range next.members {
		next.members[i] = nil
	}
	for u := 0; u < lg.n; u++ {
		next.members[label[u]] = append(next.members[label[u]], lg.members[u]...)
	}

	for u := 0; u < lg.n; u++ {
		cu := label[u]
		next.selfLoop[cu] += lg.selfLoop[u]
		for v, w := range lg.adj[u] {
			cv := label[v]
			if cu == cv {
				// Each undirected intra-community edge is visited from both
				// endpoints; halve it so it is folded in exactly once.
				next.selfLoop[cu] += w / 2
				continue
			}
			next.adj[cu][cv] += w / 2
		}
	}
	// Every undirected edge {u,v} appears once as adj[u][v] and once as
	// adj[v][u]; halving each visit and summing both recovers the
	// original weight exactly, whether the edge ended up inter-community
	// (adj) or intra-community (selfLoop).
	return next
}
