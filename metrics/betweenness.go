package metrics

import (
	"container/heap"
	"context"

	"github.com/katalvlaran/graphstat/core"
)

// Betweenness computes normalised betweenness centrality for every node in
// g via Brandes' algorithm: a single-source shortest-path accumulation run
// from every node, back-propagating dependencies along the shortest-path
// DAG. Unweighted graphs (every edge weight exactly 1) use BFS; otherwise
// Dijkstra with a binary heap. Running from every source counts each
// unordered pair twice, so the sums are halved and then normalised by
// 2/((n-1)(n-2)) for n >= 3; all zero for n < 3. ctx is checked once per
// source node.
func Betweenness(ctx context.Context, g *core.Graph, progress ProgressFunc) (map[core.NodeID]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	ids := g.NodeIDs()
	n := len(ids)
	cb := make(map[core.NodeID]float64, n)
	for _, id := range ids {
		cb[id] = 0
	}
	if n == 0 {
		return cb, nil
	}

	unweighted := allUnitWeight(g)

	report(progress, 0.0)
	for i, s := range ids {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		var order []core.NodeID
		var sigma map[core.NodeID]float64
		var preds map[core.NodeID][]core.NodeID

		if unweighted {
			order, sigma, preds = brandesBFS(g, s)
		} else {
			order, sigma, preds = brandesDijkstra(g, s)
		}

		delta := make(map[core.NodeID]float64, n)
		for _, v := range order {
			delta[v] = 0
		}
		for k := len(order) - 1; k >= 0; k-- {
			w := order[k]
			for _, v := range preds[w] {
				if sigma[w] == 0 {
					continue
				}
				delta[v] += (sigma[v] / sigma[w]) * (1 + delta[w])
			}
			if w != s {
				cb[w] += delta[w]
			}
		}

		report(progress, float64(i+1)/float64(n))
	}

	if n >= 3 {
		norm := 2.0 / float64((n-1)*(n-2))
		for id := range cb {
			cb[id] = cb[id] / 2 * norm
		}
	} else {
		for id := range cb {
			cb[id] = 0
		}
	}

	return cb, nil
}

func allUnitWeight(g *core.Graph) bool {
	for _, e := range g.Edges() {
		if e.W != 1 {
			return false
		}
	}
	return true
}

// brandesBFS runs the BFS variant of Brandes' single-source accumulation
// phase: unit-weight shortest paths, sigma = path counts, preds = the
// shortest-path predecessor DAG.
func brandesBFS(g *core.Graph, s core.NodeID) (order []core.NodeID, sigma map[core.NodeID]float64, preds map[core.NodeID][]core.NodeID) {
	dist := map[core.NodeID]int{s: 0}
	sigma = map[core.NodeID]float64{s: 1}
	preds = map[core.NodeID][]core.NodeID{}
	queue := []core.NodeID{s}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		order = append(order, v)

		for _, w := range g.Neighbors(v) {
			if _, seen := dist[w]; !seen {
				dist[w] = dist[v] + 1
				queue = append(queue, w)
			}
			if dist[w] == dist[v]+1 {
				sigma[w] += sigma[v]
				preds[w] = append(preds[w], v)
			}
		}
	}
	return order, sigma, preds
}

type bItem struct {
	id   core.NodeID
	dist float64
}
type bHeap []bItem

func (h bHeap) Len() int            { return len(h) }
func (h bHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h bHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *bHeap) Push(x interface{}) { *h = append(*h, x.(bItem)) }
func (h *bHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// brandesDijkstra runs the weighted variant of Brandes' accumulation phase:
// a Dijkstra relaxation that additionally accumulates sigma (shortest-path
// counts) and the predecessor DAG, since multiple neighbours may tie for
// the shortest distance to a node.
func brandesDijkstra(g *core.Graph, s core.NodeID) (order []core.NodeID, sigma map[core.NodeID]float64, preds map[core.NodeID][]core.NodeID) {
	const inf = 1e18
	dist := make(map[core.NodeID]float64, g.NumNodes())
	for _, id := range g.NodeIDs() {
		dist[id] = inf
	}
	dist[s] = 0
	sigma = map[core.NodeID]float64{s: 1}
	preds = map[core.NodeID][]core.NodeID{}
	visited := make(map[core.NodeID]bool, g.NumNodes())

	pq := &bHeap{{id: s, dist: 0}}
	for pq.Len() > 0 {
		item := heap.Pop(pq).(bItem)
		v := item.id
		if visited[v] {
			continue
		}
		visited[v] = true
		order = append(order, v)

		for _, w := range g.Neighbors(v) {
			weight, _ := g.EdgeWeight(v, w)
			cand := dist[v] + weight
			switch {
			case cand < dist[w]-1e-12:
				dist[w] = cand
				sigma[w] = sigma[v]
				preds[w] = []core.NodeID{v}
				heap.Push(pq, bItem{id: w, dist: cand})
			case cand < dist[w]+1e-12 && cand > dist[w]-1e-12 && !visited[w]:
				sigma[w] += sigma[v]
				preds[w] = append(preds[w], v)
			}
		}
	}
	return order, sigma, preds
}
