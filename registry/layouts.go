package registry

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/graphstat/layout"
)

var layoutCatalogue = map[string]Descriptor{
	"random": {
		ID:          "random",
		Name:        "Random",
		Description: "Uniform random placement inside the padded frame.",
		DefaultOptions: layout.Options{
			Width: 800, Height: 600, Padding: 40,
		},
	},
	"circular": {
		ID:          "circular",
		Name:        "Circular",
		Description: "Equally spaced on a circle inscribed in the padded frame, insertion order.",
		DefaultOptions: layout.Options{
			Width: 800, Height: 600, Padding: 40,
		},
	},
	"spiral": {
		ID:          "spiral",
		Name:        "Spiral",
		Description: "Archimedean spiral with configurable angular resolution.",
		DefaultOptions: layout.Options{
			Width: 800, Height: 600, Padding: 40, Resolution: 0,
		},
	},
	"shell": {
		ID:          "shell",
		Name:        "Shell",
		Description: "Concentric circles grouped by an external partition, default: degree bucket.",
		DefaultOptions: layout.Options{
			Width: 800, Height: 600, Padding: 40,
		},
	},
	"bipartite": {
		ID:                    "bipartite",
		Name:                  "Bipartite",
		Description:           "Two parallel axes from a 2-colouring; fails on a non-bipartite graph.",
		DefaultOptions:        layout.Options{Width: 800, Height: 600, Padding: 40},
		RequiredPreconditions: []string{"bipartite"},
	},
	"multipartite": {
		ID:                    "multipartite",
		Name:                  "Multipartite",
		Description:           "Parallel axes for an externally supplied group property.",
		DefaultOptions:        layout.Options{Width: 800, Height: 600, Padding: 40},
		RequiredPreconditions: []string{"node-properties"},
	},
	"bfs": {
		ID:                    "bfs",
		Name:                  "BFS",
		Description:           "Parallel axes indexed by BFS hop distance from a start node.",
		DefaultOptions:        layout.Options{Width: 800, Height: 600, Padding: 40},
		RequiredPreconditions: []string{"start-node"},
	},
	"spectral": {
		ID:                    "spectral",
		Name:                  "Spectral",
		Description:           "Coordinates from the Laplacian's Fiedler vector and next eigenvector.",
		DefaultOptions:        layout.Options{Width: 800, Height: 600, Padding: 40},
		RequiredPreconditions: []string{"laplacian-eigenvectors"},
	},
	"force-directed": {
		ID:          "force-directed",
		Name:        "Force-directed",
		Description: "Fruchterman-Reingold spring embedder with geometric cooling.",
		DefaultOptions: layout.Options{
			Width: 800, Height: 600, Padding: 40, Iterations: 50, CoolingFactor: 0.95,
		},
	},
	"kamada-kawai": {
		ID:          "kamada-kawai",
		Name:        "Kamada-Kawai",
		Description: "Stress-energy minimisation using all-pairs shortest-path ideal distances.",
		DefaultOptions: layout.Options{
			Width: 800, Height: 600, Padding: 40, Iterations: 300, IdealEdgeLength: 1.0,
		},
	},
}

// Layout returns the registered descriptor for id.
func Layout(id string) (Descriptor, error) {
	d, ok := layoutCatalogue[id]
	if !ok {
		return Descriptor{}, fmt.Errorf("registry: Layout(%s): %w", id, ErrUnknownAlgorithm)
	}
	return d, nil
}

// Layouts lists every registered layout descriptor, alphabetical by id.
func Layouts() []Descriptor {
	return sortedValues(layoutCatalogue)
}

func sortedValues(m map[string]Descriptor) []Descriptor {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]Descriptor, 0, len(ids))
	for _, id := range ids {
		out = append(out, m[id])
	}
	return out
}
