package registry

import (
	"fmt"

	"github.com/katalvlaran/graphstat/community"
)

var communityCatalogue = map[string]Descriptor{
	"louvain": {
		ID:             "louvain",
		Name:           "Louvain",
		Description:    "Greedy modularity-maximising local-moving plus contraction, multi-level.",
		DefaultOptions: community.DefaultOptions(),
	},
}

// Community returns the registered descriptor for id.
func Community(id string) (Descriptor, error) {
	d, ok := communityCatalogue[id]
	if !ok {
		return Descriptor{}, fmt.Errorf("registry: Community(%s): %w", id, ErrUnknownAlgorithm)
	}
	return d, nil
}

// CommunityAlgorithms lists every registered community-detection
// descriptor, alphabetical by id.
func CommunityAlgorithms() []Descriptor {
	return sortedValues(communityCatalogue)
}
