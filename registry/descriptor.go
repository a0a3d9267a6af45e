package registry

// Descriptor documents one registered algorithm: enough for a CLI's
// "list" subcommand or an API's capability endpoint to describe it
// without importing the algorithm's own package.
type Descriptor struct {
	ID          string
	Name        string
	Description string

	// DefaultOptions is a zero-value-equivalent instance of the
	// algorithm's options struct, exposed for introspection (e.g. an
	// API that echoes the defaults it would apply).
	DefaultOptions any

	// RequiredPreconditions names structural properties the façade must
	// verify before dispatch (e.g. "bipartite", "laplacian-eigenvectors").
	// Empty for algorithms with no precondition.
	RequiredPreconditions []string
}
