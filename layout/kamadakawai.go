package layout

import (
	"math"

	"github.com/katalvlaran/graphstat/core"
	"github.com/katalvlaran/graphstat/matrix"
)

// KamadaKawai embeds the graph by minimizing the stress energy between every
// pair's Euclidean distance and its graph-theoretic shortest-path distance
// (scaled by opts.IdealEdgeLength). It moves one node at a time toward its
// local energy minimum via a damped gradient step, stopping when every
// node's gradient magnitude drops below a small tolerance or after
// opts.Iterations sweeps (default 300). Disconnected pairs are excluded from
// the energy term.
func KamadaKawai(g *core.Graph, opts Options) (Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	ids := g.NodeIDs()
	n := len(ids)
	out := make(Result, n)
	if n == 0 {
		return out, nil
	}
	if n == 1 {
		minX, minY, maxX, maxY := opts.frame()
		out[ids[0]] = opts.clamp(Point{X: (minX + maxX) / 2, Y: (minY + maxY) / 2})
		return out, nil
	}

	index := make(map[core.NodeID]int, n)
	for i, id := range ids {
		index[id] = i
	}

	ideal := opts.IdealEdgeLength
	if ideal <= 0 {
		ideal = 1.0
	}

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				m.Set(i, j, math.Inf(1))
			}
		}
	}
	for _, e := range g.Edges() {
		i, j := index[e.From], index[e.To]
		m.Set(i, j, e.W)
		m.Set(j, i, e.W)
	}
	if err := matrix.FloydWarshall(m); err != nil {
		return nil, err
	}

	dist := make([][]float64, n)
	reachable := make([][]bool, n)
	for i := 0; i < n; i++ {
		dist[i] = make([]float64, n)
		reachable[i] = make([]bool, n)
		for j := 0; j < n; j++ {
			d := m.At(i, j)
			if i != j && !math.IsInf(d, 1) {
				dist[i][j] = d * ideal
				reachable[i][j] = true
			}
		}
	}

	minX, minY, maxX, maxY := opts.frame()
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	radius := math.Min(maxX-minX, maxY-minY) / 2
	pos := make([]Point, n)
	for i := range ids {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pos[i] = Point{X: cx + radius*math.Cos(theta), Y: cy + radius*math.Sin(theta)}
	}

	iterations := opts.Iterations
	if iterations <= 0 {
		iterations = 300
	}
	const tol = 1e-3
	const stepScale = 0.1

	for iter := 0; iter < iterations; iter++ {
		maxGrad := 0.0
		for i := 0; i < n; i++ {
			var gx, gy float64
			for j := 0; j < n; j++ {
				if i == j || !reachable[i][j] {
					continue
				}
				dx := pos[i].X - pos[j].X
				dy := pos[i].Y - pos[j].Y
				d := math.Hypot(dx, dy)
				if d < 1e-6 {
					d = 1e-6
				}
				l := dist[i][j]
				coeff := (d - l) / (d * l * l)
				gx += coeff * dx
				gy += coeff * dy
			}
			glen := math.Hypot(gx, gy)
			if glen > maxGrad {
				maxGrad = glen
			}
			if glen < 1e-9 {
				continue
			}
			step := math.Min(glen, 1.0) * stepScale * radius
			p := pos[i]
			p.X -= (gx / glen) * step
			p.Y -= (gy / glen) * step
			pos[i] = opts.clamp(p)
		}
		if maxGrad < tol {
			break
		}
	}

	for i, id := range ids {
		out[id] = pos[i]
	}
	return out, nil
}
