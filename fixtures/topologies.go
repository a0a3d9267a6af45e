package fixtures

import (
	"fmt"

	"github.com/katalvlaran/graphstat/core"
)

const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 1
	minCompleteNodes = 1
)

// Path returns a Constructor for the simple path 0-1-...-(n-1).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minPathNodes {
			return fmt.Errorf("fixtures: Path(%d): %w", n, ErrTooFewNodes)
		}
		for i := 1; i < n; i++ {
			u, v := cfg.idFn(i-1), cfg.idFn(i)
			if err := g.AddEdge(u, v, cfg.weightFn(cfg.rng)); err != nil {
				return fmt.Errorf("fixtures: Path: AddEdge(%s,%s): %w", u, v, err)
			}
		}
		return nil
	}
}

// Cycle returns a Constructor for the n-node cycle 0-1-...-(n-1)-0.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minCycleNodes {
			return fmt.Errorf("fixtures: Cycle(%d): %w", n, ErrTooFewNodes)
		}
		for i := 0; i < n; i++ {
			u, v := cfg.idFn(i), cfg.idFn((i+1)%n)
			if err := g.AddEdge(u, v, cfg.weightFn(cfg.rng)); err != nil {
				return fmt.Errorf("fixtures: Cycle: AddEdge(%s,%s): %w", u, v, err)
			}
		}
		return nil
	}
}

// Star returns a Constructor for a star with one hub (index 0) connected
// to n leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minStarNodes {
			return fmt.Errorf("fixtures: Star(%d): %w", n, ErrTooFewNodes)
		}
		hub := cfg.idFn(0)
		if err := g.AddNode(hub); err != nil {
			return fmt.Errorf("fixtures: Star: AddNode(%s): %w", hub, err)
		}
		for i := 1; i <= n; i++ {
			leaf := cfg.idFn(i)
			if err := g.AddEdge(hub, leaf, cfg.weightFn(cfg.rng)); err != nil {
				return fmt.Errorf("fixtures: Star: AddEdge(%s,%s): %w", hub, leaf, err)
			}
		}
		return nil
	}
}

// Complete returns a Constructor for the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minCompleteNodes {
			return fmt.Errorf("fixtures: Complete(%d): %w", n, ErrTooFewNodes)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				u, v := cfg.idFn(i), cfg.idFn(j)
				if err := g.AddEdge(u, v, cfg.weightFn(cfg.rng)); err != nil {
					return fmt.Errorf("fixtures: Complete: AddEdge(%s,%s): %w", u, v, err)
				}
			}
		}
		return nil
	}
}

// RandomSparse returns a Constructor sampling an Erdős–Rényi-style
// undirected graph over n nodes, including each of the n(n-1)/2 unordered
// pairs independently with probability p. Determinism for a fixed seed
// follows from the fixed i-ascending, j-ascending trial order, matching the
// teacher library's RandomSparse ordering contract.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < minStarNodes {
			return fmt.Errorf("fixtures: RandomSparse(%d): %w", n, ErrTooFewNodes)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("fixtures: RandomSparse: p=%.6f: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("fixtures: RandomSparse: %w", ErrNeedRandSource)
		}
		for i := 0; i < n; i++ {
			if err := g.AddNode(cfg.idFn(i)); err != nil {
				return fmt.Errorf("fixtures: RandomSparse: AddNode: %w", err)
			}
		}
		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := i + 1; j < n; j++ {
				include := p == 1.0
				if cfg.rng != nil {
					include = cfg.rng.Float64() <= p
				}
				if !include {
					continue
				}
				v := cfg.idFn(j)
				if err := g.AddEdge(u, v, cfg.weightFn(cfg.rng)); err != nil {
					return fmt.Errorf("fixtures: RandomSparse: AddEdge(%s,%s): %w", u, v, err)
				}
			}
		}
		return nil
	}
}

// Bipartite returns a Constructor for the complete bipartite graph K_{m,n}:
// m nodes on the left (indices 0..m-1), n on the right (indices m..m+n-1),
// every left-right pair connected.
func Bipartite(m, n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if m < 1 || n < 1 {
			return fmt.Errorf("fixtures: Bipartite(%d,%d): %w", m, n, ErrTooFewNodes)
		}
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				u, v := cfg.idFn(i), cfg.idFn(m+j)
				if err := g.AddEdge(u, v, cfg.weightFn(cfg.rng)); err != nil {
					return fmt.Errorf("fixtures: Bipartite: AddEdge(%s,%s): %w", u, v, err)
				}
			}
		}
		return nil
	}
}
