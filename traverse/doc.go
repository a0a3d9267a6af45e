// Package traverse provides the shared graph-walking primitives the metrics,
// community, and layout packages build on: unweighted BFS, connected-
// component labelling, and bipartite two-colouring. All operate directly on
// a core.Graph and share its NodeID type, so callers never convert between a
// traversal-specific vertex representation and the graph's own. All-pairs
// weighted shortest paths (diameter, average shortest path, Kamada-Kawai
// ideal distances) go through matrix.FloydWarshall on a dense distance
// matrix instead of a traversal here.
package traverse

import "errors"

// ErrNilGraph is returned when a traversal is given a nil graph.
var ErrNilGraph = errors.New("traverse: graph is nil")

// ErrStartNotFound is returned when the requested start node is not in the
// graph.
var ErrStartNotFound = errors.New("traverse: start node not found")
