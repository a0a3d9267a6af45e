// Package analysis is the single public entry point: Analyze takes raw
// edges (and optional explicit nodes), a list of requested features, and
// options, and returns a merged per-node statistics table plus optional
// graph-level stats and layout coordinates. It builds the graph, resolves
// feature dependencies, submits independent work to a scheduler.Pool, and
// merges whatever comes back — a single feature's failure does not abort
// the others unless Options.Strict is set.
package analysis
