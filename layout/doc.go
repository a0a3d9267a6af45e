// Package layout computes 2-D node coordinates for a core.Graph: the
// deterministic placements (random, circular, spiral, shell, bipartite,
// multipartite, bfs, spectral) and the two iterative physical simulations
// (Fruchterman–Reingold force-directed, Kamada–Kawai energy minimisation).
// Every layout accepts the same Options and guarantees every coordinate is
// finite and inside the padded [padding, width-padding] x [padding,
// height-padding] frame.
package layout

import "errors"

// ErrNilGraph is returned when a layout is given a nil graph.
var ErrNilGraph = errors.New("layout: graph is nil")

// ErrPreconditionUnmet is returned when a layout's structural precondition
// fails — bipartite run on a non-bipartite graph, bfs given an unknown
// start node, or spectral run without precomputed Laplacian coordinates.
var ErrPreconditionUnmet = errors.New("layout: precondition not met")
