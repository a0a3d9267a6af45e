package metrics

import (
	"math"

	"github.com/katalvlaran/graphstat/core"
	"github.com/katalvlaran/graphstat/matrix"
	"github.com/katalvlaran/graphstat/traverse"
)

// GraphStats holds the optional graph-level aggregates. Diameter and
// AverageShortestPath are only meaningful for a connected graph; Has* flags
// record whether they were computable (false for a disconnected or empty
// graph, per spec §8's boundary cases, rather than reporting a meaningless
// zero or infinity).
type GraphStats struct {
	Density                float64
	AverageClustering      float64
	AverageDegree          float64
	ConnectedComponents    int
	Diameter               int
	AverageShortestPath    float64
	HasDiameter            bool
	HasAverageShortestPath bool
}

// ComputeGraphStats derives density, average clustering, average degree,
// connected-component count, and — when g is connected and non-empty —
// diameter and average shortest path.
func ComputeGraphStats(g *core.Graph, clustering map[core.NodeID]float64) (*GraphStats, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.NumNodes()
	stats := &GraphStats{ConnectedComponents: traverse.NumComponents(g)}
	if n == 0 {
		return stats, nil
	}

	m := g.NumEdges()
	if n > 1 {
		stats.Density = 2 * float64(m) / float64(n*(n-1))
	}
	stats.AverageDegree = 2 * float64(m) / float64(n)

	if len(clustering) > 0 {
		var sum float64
		for _, c := range clustering {
			sum += c
		}
		stats.AverageClustering = sum / float64(len(clustering))
	}

	if stats.ConnectedComponents == 1 && n > 1 {
		diameter, avgPath, ok := diameterAndAveragePath(g)
		if ok {
			stats.Diameter = diameter
			stats.AverageShortestPath = avgPath
			stats.HasDiameter = true
			stats.HasAverageShortestPath = true
		}
	}

	return stats, nil
}

// diameterAndAveragePath builds the dense hop-count distance matrix (every
// edge has length 1, whatever its weight) and runs matrix.FloydWarshall on
// it once, folding the resulting per-pair distances into the graph's
// diameter (max eccentricity) and average shortest path.
func diameterAndAveragePath(g *core.Graph) (diameter int, avg float64, ok bool) {
	ids := g.NodeIDs()
	n := len(ids)
	idx := make(map[core.NodeID]int, n)
	for i, id := range ids {
		idx[id] = i
	}

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return 0, 0, false
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				m.Set(i, j, math.Inf(1))
			}
		}
	}
	for _, e := range g.Edges() {
		i, j := idx[e.From], idx[e.To]
		m.Set(i, j, 1)
		m.Set(j, i, 1)
	}

	if err := matrix.FloydWarshall(m); err != nil {
		return 0, 0, false
	}

	var maxDist, sum float64
	var count int
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			d := m.At(i, j)
			if math.IsInf(d, 1) {
				continue
			}
			if d > maxDist {
				maxDist = d
			}
			sum += d
			count++
		}
	}

	if count == 0 {
		return 0, 0, false
	}

	return int(maxDist), sum / float64(count), true
}
