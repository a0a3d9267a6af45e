// Package dispatch serializes a core.Graph into the compact wire payload
// a worker reconstructs its own graph from: node ids and edge records,
// with no adjacency maps. This keeps the payload format-stable across
// worker implementations and cheap to copy across a task boundary.
package dispatch
