package analysis

import (
	"fmt"

	"github.com/katalvlaran/graphstat/core"
)

// EdgeInput is one raw edge record from an adapter. Weight of 0 is
// treated as "not supplied" and defaults to 1.0; weight below 0, or an
// edge whose endpoints are equal, is rejected with ErrInvalidEdge.
type EdgeInput struct {
	Source core.NodeID
	Target core.NodeID
	Weight float64
}

// NodeInput supplies an isolated node or an attribute carrier. Attrs is
// passed through untouched and reattached to the corresponding NodeStats.
type NodeInput struct {
	ID    core.NodeID
	Attrs map[string]any
}

// normalizeEdges defaults unset weights to 1.0 and rejects self-loops and
// non-positive weights, returning the first violation found.
func normalizeEdges(edges []EdgeInput) ([]EdgeInput, error) {
	out := make([]EdgeInput, len(edges))
	for i, e := range edges {
		if e.Weight == 0 {
			e.Weight = 1.0
		}
		if e.Source == e.Target || e.Weight <= 0 {
			return nil, fmt.Errorf("analysis: edge %s-%s weight=%g: %w", e.Source, e.Target, e.Weight, ErrInvalidEdge)
		}
		out[i] = e
	}
	return out, nil
}

// buildGraph constructs the graph with canonical node order equal to
// first-appearance order across edges, then adds any isolated nodes from
// the explicit node list.
func buildGraph(edges []EdgeInput, nodes []NodeInput) (*core.Graph, map[core.NodeID]map[string]any, error) {
	g := core.NewGraph()
	attrs := make(map[core.NodeID]map[string]any, len(nodes))

	for _, e := range edges {
		if err := g.AddEdge(e.Source, e.Target, e.Weight); err != nil {
			return nil, nil, fmt.Errorf("analysis: buildGraph: AddEdge(%s,%s): %w", e.Source, e.Target, err)
		}
	}
	for _, n := range nodes {
		if err := g.AddNode(n.ID); err != nil {
			return nil, nil, fmt.Errorf("analysis: buildGraph: AddNode(%s): %w", n.ID, err)
		}
		if n.Attrs != nil {
			attrs[n.ID] = n.Attrs
		}
	}
	return g, attrs, nil
}
