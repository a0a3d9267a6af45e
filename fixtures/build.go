package fixtures

import "github.com/katalvlaran/graphstat/core"

// Constructor builds a topology into g using cfg's ID scheme and weight
// source. Constructors are returned by Path, Cycle, Star, Complete,
// RandomSparse, and Bipartite, and applied by BuildGraph.
type Constructor func(g *core.Graph, cfg config) error

// BuildGraph applies ctor to a fresh graph after folding in opts.
func BuildGraph(ctor Constructor, opts ...Option) (*core.Graph, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := core.NewGraph()
	if err := ctor(g, cfg); err != nil {
		return nil, err
	}
	return g, nil
}
