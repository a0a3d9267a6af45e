// Package community implements the Louvain method: modularity-optimising
// hierarchical partitioning over a core.Graph via alternating local-moving
// and contraction phases. Community ids in the returned partition are
// renumbered to 0..k-1 in first-appearance order for reproducibility, and
// the reported modularity is always recomputed on the original graph with
// the fully unpacked partition, never on an intermediate contracted graph.
package community

import "errors"

// ErrNilGraph is returned when Louvain is given a nil graph.
var ErrNilGraph = errors.New("community: graph is nil")
