package metrics

import (
	"context"

	"github.com/katalvlaran/graphstat/core"
)

// MaximalCliques enumerates every maximal clique in g via Bron–Kerbosch
// with pivoting: at each recursion the pivot is chosen from P ∪ X as the
// vertex of maximal degree within that union, minimising branching. ctx is
// checked once per recursive call.
func MaximalCliques(ctx context.Context, g *core.Graph) ([][]core.NodeID, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	ids := g.NodeIDs()
	neighborSet := make(map[core.NodeID]map[core.NodeID]struct{}, len(ids))
	for _, u := range ids {
		set := make(map[core.NodeID]struct{}, g.Degree(u))
		for _, v := range g.Neighbors(u) {
			set[v] = struct{}{}
		}
		neighborSet[u] = set
	}

	bk := &bronKerbosch{ctx: ctx, neighbors: neighborSet}

	p := make(map[core.NodeID]struct{}, len(ids))
	for _, id := range ids {
		p[id] = struct{}{}
	}

	if err := bk.run(nil, p, make(map[core.NodeID]struct{})); err != nil {
		return nil, err
	}

	return bk.cliques, nil
}

// CliqueCounts returns, for each node, how many maximal cliques contain it.
func CliqueCounts(g *core.Graph, cliques [][]core.NodeID) map[core.NodeID]int {
	out := make(map[core.NodeID]int, g.NumNodes())
	for _, id := range g.NodeIDs() {
		out[id] = 0
	}
	for _, clique := range cliques {
		for _, v := range clique {
			out[v]++
		}
	}
	return out
}

type bronKerbosch struct {
	ctx       context.Context
	neighbors map[core.NodeID]map[core.NodeID]struct{}
	cliques   [][]core.NodeID
}

func (bk *bronKerbosch) run(r []core.NodeID, p, x map[core.NodeID]struct{}) error {
	select {
	case <-bk.ctx.Done():
		return bk.ctx.Err()
	default:
	}

	if len(p) == 0 && len(x) == 0 {
		clique := make([]core.NodeID, len(r))
		copy(clique, r)
		bk.cliques = append(bk.cliques, clique)
		return nil
	}

	pivot := bk.choosePivot(p, x)
	pivotNbrs := bk.neighbors[pivot]

	candidates := make([]core.NodeID, 0, len(p))
	for v := range p {
		if _, adjacent := pivotNbrs[v]; !adjacent {
			candidates = append(candidates, v)
		}
	}

	for _, v := range candidates {
		vNbrs := bk.neighbors[v]

		newP := intersect(p, vNbrs)
		newX := intersect(x, vNbrs)

		if err := bk.run(append(r, v), newP, newX); err != nil {
			return err
		}

		delete(p, v)
		x[v] = struct{}{}
	}

	return nil
}

// choosePivot returns the vertex of maximal degree within p ∪ x, measured
// by degree inside p ∪ x itself so the pivot minimises branching.
func (bk *bronKerbosch) choosePivot(p, x map[core.NodeID]struct{}) core.NodeID {
	union := make(map[core.NodeID]struct{}, len(p)+len(x))
	for v := range p {
		union[v] = struct{}{}
	}
	for v := range x {
		union[v] = struct{}{}
	}

	var best core.NodeID
	bestDeg := -1
	for v := range union {
		deg := 0
		for w := range union {
			if _, adjacent := bk.neighbors[v][w]; adjacent {
				deg++
			}
		}
		if deg > bestDeg {
			bestDeg = deg
			best = v
		}
	}
	return best
}

func intersect(a map[core.NodeID]struct{}, b map[core.NodeID]struct{}) map[core.NodeID]struct{} {
	out := make(map[core.NodeID]struct{})
	for v := range a {
		if _, ok := b[v]; ok {
			out[v] = struct{}{}
		}
	}
	return out
}
