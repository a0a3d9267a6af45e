// Package registry catalogues the layout and community-detection
// algorithms available to the analysis façade: a stable id maps to a
// human-readable descriptor, its default options, and the structural
// preconditions the façade must check before dispatching a task. Lookup
// is O(1); Listing is alphabetical by id for predictable CLI/UI output.
package registry

import "errors"

// ErrUnknownAlgorithm is returned by Layout/Community when id is not
// registered.
var ErrUnknownAlgorithm = errors.New("registry: unknown algorithm id")
