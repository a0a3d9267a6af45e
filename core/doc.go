// Package core defines the graph data model shared by every analysis
// algorithm in graphstat: NodeID, Edge, and the thread-safe Graph itself.
//
// Graph is deliberately narrow in scope compared to a general-purpose graph
// library: it is always undirected, always weighted, never has self-loops,
// and never has parallel edges. Adding an edge that already exists replaces
// its weight rather than summing it or erroring. These are the invariants
// the rest of graphstat (metrics, community, layout, scheduler) is built
// against; callers that need directed or multi-edge graphs are out of
// scope (see the Non-goals in SPEC_FULL.md).
//
// Internally the Graph keeps a node set and a nested adjacency index
//
//	adj[u][v] = weight(u,v) = weight(v,u)
//
// An edge list is derived only for enumeration (Louvain's contraction
// step, diameter computation); the adjacency index is always the source
// of truth. Two separate sync.RWMutex locks (muNodes, muEdges) guard the
// node set and the edge/adjacency state respectively, minimizing
// contention the way the teacher library's core package does.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID is returned when a node ID is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNoSuchNode is returned when an operation references a node that
	// does not exist in the graph.
	ErrNoSuchNode = errors.New("core: no such node")

	// ErrInvalidEdge is returned when an edge's endpoints are equal
	// (self-loops are disallowed) or its weight is not strictly positive.
	ErrInvalidEdge = errors.New("core: invalid edge")
)
