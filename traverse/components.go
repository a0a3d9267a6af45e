package traverse

import "github.com/katalvlaran/graphstat/core"

// ConnectedComponents partitions g's nodes into connected components,
// returned as a label map (node → component index, 0-based, assigned in
// the order components are first discovered while walking g.NodeIDs() in
// insertion order). Complexity: O(V + E).
func ConnectedComponents(g *core.Graph) map[core.NodeID]int {
	labels := make(map[core.NodeID]int, g.NumNodes())
	next := 0

	for _, id := range g.NodeIDs() {
		if _, seen := labels[id]; seen {
			continue
		}
		queue := []core.NodeID{id}
		labels[id] = next
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range g.Neighbors(u) {
				if _, seen := labels[v]; seen {
					continue
				}
				labels[v] = next
				queue = append(queue, v)
			}
		}
		next++
	}

	return labels
}

// NumComponents returns the number of connected components in g, including
// isolated nodes as singleton components.
func NumComponents(g *core.Graph) int {
	labels := ConnectedComponents(g)
	max := -1
	for _, l := range labels {
		if l > max {
			max = l
		}
	}
	return max + 1
}
