package traverse

import "github.com/katalvlaran/graphstat/core"

// BFSResult holds the outcome of an unweighted breadth-first walk: visit
// order, hop-distance from the start, and a parent pointer for each
// reachable node (absent for the start itself).
type BFSResult struct {
	Order  []core.NodeID
	Depth  map[core.NodeID]int
	Parent map[core.NodeID]core.NodeID
}

// BFS explores g from start in increasing hop-distance order, ignoring edge
// weights. Unreachable nodes are simply absent from the result. Complexity:
// O(V + E).
func BFS(g *core.Graph, start core.NodeID) (*BFSResult, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(start) {
		return nil, ErrStartNotFound
	}

	res := &BFSResult{
		Order:  make([]core.NodeID, 0, g.NumNodes()),
		Depth:  make(map[core.NodeID]int, g.NumNodes()),
		Parent: make(map[core.NodeID]core.NodeID, g.NumNodes()),
	}

	visited := map[core.NodeID]bool{start: true}
	res.Depth[start] = 0
	queue := []core.NodeID{start}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, u)

		for _, v := range g.Neighbors(u) {
			if visited[v] {
				continue
			}
			visited[v] = true
			res.Depth[v] = res.Depth[u] + 1
			res.Parent[v] = u
			queue = append(queue, v)
		}
	}

	return res, nil
}
