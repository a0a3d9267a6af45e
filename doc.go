// Package graphstat is your in-memory toolkit for structural graph
// statistics, community detection, 2-D layout, and cancellable
// background computation in Go.
//
// What is graphstat?
//
//	A thread-safe library that brings together:
//
//	  • Core primitives: build a graph once, analyze it from many angles
//	  • Structural metrics: degree, eigenvector and betweenness centrality,
//	    clustering coefficient, maximal cliques, Laplacian eigenvectors
//	  • Louvain community detection with a pluggable resolution parameter
//	  • Ten 2-D layout algorithms, from circular placement to
//	    Fruchterman-Reingold and Kamada-Kawai energy minimisation
//	  • A cancellable worker-pool scheduler so independent features run
//	    concurrently and a slow one never blocks the rest
//
// Why choose graphstat?
//
//   - Single entry point    — analysis.Analyze drives the whole pipeline
//   - Cooperative cancellation — every long computation honors context.Context
//   - Deterministic          — seeded randomness, stable node ordering
//   - Pure Go                — no cgo
//
// Under the hood, everything is organized under dedicated subpackages:
//
//	core/       — Graph, NodeID, Edge and thread-safe mutation primitives
//	matrix/     — dense matrix, Jacobi eigendecomposition, Floyd–Warshall
//	traverse/   — BFS, connected components, bipartite 2-colouring
//	metrics/    — degree, eigenvector and betweenness centrality, clustering,
//	              maximal cliques, Laplacian eigenvectors, graph-level stats
//	community/  — Louvain modularity-optimising community detection
//	layout/     — the ten 2-D layout algorithms
//	scheduler/  — the cancellable, rate-limited worker pool
//	registry/   — id -> Descriptor catalogues for layouts and community algorithms
//	dispatch/   — the flat wire format for shipping a graph to a worker
//	analysis/   — Analyze, the façade tying all of the above together
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	represents a square with four vertices and four edges; Analyze can
//	report its degree sequence, community structure, and a force-directed
//	layout in one call.
//
//	go get github.com/katalvlaran/graphstat
package graphstat
