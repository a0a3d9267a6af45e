package layout

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/graphstat/core"
)

// ForceDirected runs the Fruchterman-Reingold spring-embedder: every pair of
// nodes repels with force k^2/d, every edge attracts its endpoints with
// force d^2/k, where k = opts.K (or, if unset, C*sqrt(area/n)). Displacement
// per node is capped by a temperature that is multiplied by
// opts.CoolingFactor after each of opts.Iterations sweeps (geometric
// cooling), and the result is clamped into the frame after every sweep.
func ForceDirected(g *core.Graph, opts Options) (Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	ids := g.NodeIDs()
	n := len(ids)
	out := make(Result, n)
	if n == 0 {
		return out, nil
	}

	minX, minY, maxX, maxY := opts.frame()
	area := (maxX - minX) * (maxY - minY)

	k := opts.K
	if k <= 0 {
		const springConstant = 1.0
		k = springConstant * math.Sqrt(area/float64(n))
	}

	iterations := opts.Iterations
	if iterations <= 0 {
		iterations = 50
	}
	cooling := opts.CoolingFactor
	if cooling <= 0 {
		cooling = 0.95
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	pos := make(map[core.NodeID]Point, n)
	for _, id := range ids {
		pos[id] = Point{
			X: minX + rng.Float64()*(maxX-minX),
			Y: minY + rng.Float64()*(maxY-minY),
		}
	}

	edges := g.Edges()
	temperature := (maxX - minX) / 10

	disp := make(map[core.NodeID]Point, n)
	for iter := 0; iter < iterations; iter++ {
		for _, id := range ids {
			disp[id] = Point{}
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				u, v := ids[i], ids[j]
				dx := pos[u].X - pos[v].X
				dy := pos[u].Y - pos[v].Y
				dist := math.Hypot(dx, dy)
				if dist < 1e-6 {
					dist = 1e-6
				}
				force := (k * k) / dist
				ux, uy := dx/dist, dy/dist
				disp[u] = Point{X: disp[u].X + ux*force, Y: disp[u].Y + uy*force}
				disp[v] = Point{X: disp[v].X - ux*force, Y: disp[v].Y - uy*force}
			}
		}

		for _, e := range edges {
			dx := pos[e.From].X - pos[e.To].X
			dy := pos[e.From].Y - pos[e.To].Y
			dist := math.Hypot(dx, dy)
			if dist < 1e-6 {
				dist = 1e-6
			}
			force := (dist * dist) / k
			ux, uy := dx/dist, dy/dist
			disp[e.From] = Point{X: disp[e.From].X - ux*force, Y: disp[e.From].Y - uy*force}
			disp[e.To] = Point{X: disp[e.To].X + ux*force, Y: disp[e.To].Y + uy*force}
		}

		for _, id := range ids {
			d := disp[id]
			dlen := math.Hypot(d.X, d.Y)
			if dlen < 1e-6 {
				continue
			}
			step := math.Min(dlen, temperature)
			p := pos[id]
			p.X += (d.X / dlen) * step
			p.Y += (d.Y / dlen) * step
			pos[id] = opts.clamp(p)
		}

		temperature *= cooling
	}

	for _, id := range ids {
		out[id] = pos[id]
	}
	return out, nil
}
