// Package metrics computes per-node centrality and clustering measures and
// graph-level structural statistics over a core.Graph: degree, eigenvector
// centrality (power iteration), betweenness centrality (Brandes), local
// clustering coefficient, maximal-clique counts (Bron–Kerbosch with
// pivoting), Laplacian eigenvectors for the spectral layout, and aggregate
// stats (density, diameter, average clustering, average shortest path,
// connected components, average degree).
//
// Every metric iterates nodes in the graph's insertion order, the canonical
// tie-break used whenever an algorithm must choose among equal candidates.
package metrics

import "errors"

// ErrNilGraph is returned when a metric is given a nil graph.
var ErrNilGraph = errors.New("metrics: graph is nil")
