package traverse

import "github.com/katalvlaran/graphstat/core"

// BipartiteColoring attempts a proper two-colouring of g (side 0 / side 1),
// component by component via BFS. ok is false if any component contains an
// odd cycle, in which case the returned coloring is partial and must not be
// used.
func BipartiteColoring(g *core.Graph) (color map[core.NodeID]int, ok bool) {
	color = make(map[core.NodeID]int, g.NumNodes())

	for _, start := range g.NodeIDs() {
		if _, seen := color[start]; seen {
			continue
		}
		color[start] = 0
		queue := []core.NodeID{start}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range g.Neighbors(u) {
				if c, seen := color[v]; seen {
					if c == color[u] {
						return color, false
					}
					continue
				}
				color[v] = 1 - color[u]
				queue = append(queue, v)
			}
		}
	}

	return color, true
}
