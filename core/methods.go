package core

// NodeIDs returns every node in first-appearance (insertion) order. This
// order is the canonical tie-break used whenever an algorithm in graphstat
// must pick among equal candidates (spec.md §4.B). Complexity: O(V).
func (g *Graph) NodeIDs() []NodeID {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	out := make([]NodeID, len(g.nodeOrder))
	copy(out, g.nodeOrder)
	return out
}

// NumNodes returns |V|. Complexity: O(1).
func (g *Graph) NumNodes() int {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	return len(g.nodeOrder)
}

// HasNode reports whether id is in the node set. Complexity: O(1).
func (g *Graph) HasNode(id NodeID) bool {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	_, ok := g.nodeSet[id]
	return ok
}

// Neighbors returns the neighbours of u in insertion order (the order edges
// touching u were added). Returns nil if u has no neighbours or does not
// exist. Complexity: O(deg(u)).
func (g *Graph) Neighbors(u NodeID) []NodeID {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	nbrs := g.adjOrder[u]
	if len(nbrs) == 0 {
		return nil
	}
	out := make([]NodeID, len(nbrs))
	copy(out, nbrs)
	return out
}

// HasEdge reports whether {u, v} is an edge. Complexity: O(1).
func (g *Graph) HasEdge(u, v NodeID) bool {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	_, ok := g.adj[u][v]
	return ok
}

// EdgeWeight returns the weight of {u, v} and whether it exists.
// Complexity: O(1).
func (g *Graph) EdgeWeight(u, v NodeID) (float64, bool) {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	w, ok := g.adj[u][v]
	return w, ok
}

// Degree returns the unweighted incidence count of u. Complexity: O(1).
func (g *Graph) Degree(u NodeID) int {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	return len(g.adj[u])
}

// WeightedDegree returns Σ_v adj[u][v]. Complexity: O(deg(u)).
func (g *Graph) WeightedDegree(u NodeID) float64 {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	var sum float64
	for _, w := range g.adj[u] {
		sum += w
	}
	return sum
}

// NumEdges returns |E|, the number of distinct unordered pairs with an
// edge. Complexity: O(1).
func (g *Graph) NumEdges() int {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()
	return len(g.edgeOrder)
}

// Edges returns every edge exactly once, in first-insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.muEdges.RLock()
	defer g.muEdges.RUnlock()

	out := make([]Edge, 0, len(g.edgeOrder))
	for _, key := range g.edgeOrder {
		out = append(out, Edge{From: key.a, To: key.b, W: g.adj[key.a][key.b]})
	}
	return out
}

// TotalWeight returns Σ over all edges of their weight (the "m" of the
// modularity literature). Complexity: O(E).
func (g *Graph) TotalWeight() float64 {
	var sum float64
	for _, e := range g.Edges() {
		sum += e.W
	}
	return sum
}

// Subgraph returns a fresh Graph containing only the edges of g with both
// endpoints in keep. Nodes in keep with no surviving edge are still added
// (as isolated nodes). g is not mutated. Complexity: O(V + E).
func (g *Graph) Subgraph(keep map[NodeID]struct{}) *Graph {
	out := NewGraph()
	for id := range keep {
		_ = out.AddNode(id)
	}
	for _, e := range g.Edges() {
		_, okU := keep[e.From]
		_, okV := keep[e.To]
		if okU && okV {
			_ = out.AddEdge(e.From, e.To, e.W)
		}
	}
	return out
}

// Clone returns a deep, independent copy of g. Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	out := NewGraph()
	for _, id := range g.NodeIDs() {
		_ = out.AddNode(id)
	}
	for _, e := range g.Edges() {
		_ = out.AddEdge(e.From, e.To, e.W)
	}
	return out
}
