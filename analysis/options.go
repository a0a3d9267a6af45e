package analysis

import (
	"time"

	"github.com/katalvlaran/graphstat/core"
	"github.com/katalvlaran/graphstat/layout"
)

// Feature ids accepted in the features list passed to Analyze.
const (
	FeatureDegree     = "degree"
	FeatureEigen      = "eigenvector"
	FeatureBetween    = "betweenness"
	FeatureClustering = "clustering"
	FeatureCliques    = "cliques"
	FeatureModularity = "modularity"
	FeatureLaplacian  = "eigenvector-laplacian"
)

var validFeatures = map[string]bool{
	FeatureDegree:     true,
	FeatureEigen:      true,
	FeatureBetween:    true,
	FeatureClustering: true,
	FeatureCliques:    true,
	FeatureModularity: true,
	FeatureLaplacian:  true,
}

// LayoutRequest asks Analyze to additionally compute a 2-D layout
// alongside whatever features are requested. Algorithm must be a
// registry.Layouts() id.
type LayoutRequest struct {
	Algorithm string
	Options   layout.Options
}

// Options configures Analyze. Zero values are replaced by the spec's
// documented defaults.
type Options struct {
	MaxIter        int     // eigenvector iteration cap, default 100 000
	LouvainMaxIter int     // Louvain sweep-per-level and level cap, default 100
	Tol            float64 // eigenvector convergence tolerance
	Resolution     float64 // Louvain gamma
	Seed           int64   // Louvain node order (layouts use Layout.Options.Seed)
	Strict         bool    // abort on first feature error
	TimeoutMs      int     // per-feature deadline
	SmallThreshold int     // node count below which execution stays inline
	MaxWorkers     int     // pool size cap
	GraphStats     bool    // also compute graph-level stats
	LaplacianMax   int     // dense Laplacian size ceiling, 0 disables the check
	Layout         *LayoutRequest
}

// DefaultOptions returns the spec-mandated defaults.
func DefaultOptions() Options {
	return Options{
		MaxIter:        100000,
		LouvainMaxIter: 100,
		Tol:            1e-6,
		Resolution:     1.0,
		TimeoutMs:      60000,
		SmallThreshold: 500,
		LaplacianMax:   2000,
	}
}

func (o Options) timeout() time.Duration {
	if o.TimeoutMs <= 0 {
		return 60 * time.Second
	}
	return time.Duration(o.TimeoutMs) * time.Millisecond
}

// NodeStats is one node's merged result row. Every metric field is a
// pointer so an omitted or failed feature leaves it nil rather than
// reporting a misleading zero value.
type NodeStats struct {
	ID          core.NodeID
	Degree      *int
	Eigenvector *float64
	Betweenness *float64
	Clustering  *float64
	Cliques     *int
	Community   *int
	LaplacianX  *float64
	LaplacianY  *float64
	Attrs       map[string]any
}

// AnalysisResult is Analyze's return value.
type AnalysisResult struct {
	Nodes   []NodeStats
	Graph   *GraphStats
	Layout  layout.Result
	Errors  map[string]FeatureError
	Timings map[string]time.Duration
}

// GraphStats mirrors metrics.GraphStats; duplicated here (rather than
// re-exported) so callers of this package don't need to import metrics
// for the result type.
type GraphStats struct {
	Density                 float64
	AverageClustering       float64
	AverageDegree           float64
	ConnectedComponents     int
	Diameter                int
	HasDiameter              bool
	AverageShortestPath     float64
	HasAverageShortestPath  bool
	NumCommunities          int
	Modularity              float64
	HasCommunities          bool
}
