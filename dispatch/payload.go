package dispatch

import (
	"fmt"

	"github.com/katalvlaran/graphstat/core"
)

// EdgeRecord is one wire-format edge: an unordered pair plus its weight.
type EdgeRecord struct {
	U, V core.NodeID
	W    float64
}

// Payload is the graph exactly as handed to a worker: the node list
// (including isolated nodes, in first-appearance order) and the edge
// list. A worker rebuilds its own adjacency index from these two slices.
type Payload struct {
	Nodes []core.NodeID
	Edges []EdgeRecord
}

// Serialize captures g's nodes and edges into a Payload. Complexity O(n+m).
func Serialize(g *core.Graph) Payload {
	ids := g.NodeIDs()
	nodes := make([]core.NodeID, len(ids))
	copy(nodes, ids)

	edges := g.Edges()
	out := make([]EdgeRecord, len(edges))
	for i, e := range edges {
		out[i] = EdgeRecord{U: e.From, V: e.To, W: e.W}
	}

	return Payload{Nodes: nodes, Edges: out}
}

// Deserialize rebuilds a core.Graph from a Payload: every node is added
// first (so isolated nodes survive the round trip), then every edge.
func Deserialize(p Payload) (*core.Graph, error) {
	g := core.NewGraph()
	for _, id := range p.Nodes {
		if err := g.AddNode(id); err != nil {
			return nil, fmt.Errorf("dispatch: Deserialize: AddNode(%s): %w", id, err)
		}
	}
	for _, e := range p.Edges {
		if err := g.AddEdge(e.U, e.V, e.W); err != nil {
			return nil, fmt.Errorf("dispatch: Deserialize: AddEdge(%s,%s): %w", e.U, e.V, err)
		}
	}
	return g, nil
}
