package analysis_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphstat/analysis"
	"github.com/katalvlaran/graphstat/core"
)

func edge(u, v core.NodeID, w float64) analysis.EdgeInput {
	return analysis.EdgeInput{Source: u, Target: v, Weight: w}
}

func findStats(t *testing.T, res *analysis.AnalysisResult, id core.NodeID) analysis.NodeStats {
	t.Helper()
	for _, n := range res.Nodes {
		if n.ID == id {
			return n
		}
	}
	t.Fatalf("no NodeStats for %s", id)
	return analysis.NodeStats{}
}

func TestTriangleScenario(t *testing.T) {
	edges := []analysis.EdgeInput{edge("A", "B", 1), edge("B", "C", 1), edge("C", "A", 1)}
	features := []string{
		analysis.FeatureDegree, analysis.FeatureClustering,
		analysis.FeatureBetween, analysis.FeatureEigen,
		analysis.FeatureCliques, analysis.FeatureModularity,
	}
	res, err := analysis.Analyze(context.Background(), edges, nil, features, analysis.DefaultOptions())
	require.NoError(t, err)
	require.Empty(t, res.Errors)

	a := findStats(t, res, "A")
	require.Equal(t, 2, *a.Degree)
	require.InDelta(t, 1.0, *a.Clustering, 1e-9)
	require.InDelta(t, 0.0, *a.Betweenness, 1e-9)
	require.InDelta(t, 0.57735, *a.Eigenvector, 1e-3)
	require.Equal(t, 1, *a.Cliques)

	b := findStats(t, res, "B")
	c := findStats(t, res, "C")
	require.Equal(t, *a.Community, *b.Community)
	require.Equal(t, *b.Community, *c.Community)
}

func TestPathBetweennessAndDiameter(t *testing.T) {
	edges := []analysis.EdgeInput{edge("A", "B", 1), edge("B", "C", 1), edge("C", "D", 1)}
	opts := analysis.DefaultOptions()
	opts.GraphStats = true
	res, err := analysis.Analyze(context.Background(), edges, nil,
		[]string{analysis.FeatureBetween, analysis.FeatureDegree}, opts)
	require.NoError(t, err)

	a := findStats(t, res, "A")
	b := findStats(t, res, "B")
	d := findStats(t, res, "D")
	require.InDelta(t, 0.0, *a.Betweenness, 1e-9)
	require.InDelta(t, 2.0/3.0, *b.Betweenness, 1e-9)
	require.Equal(t, 1, *a.Degree)
	require.Equal(t, 1, *d.Degree)

	require.NotNil(t, res.Graph)
	require.True(t, res.Graph.HasDiameter)
	require.Equal(t, 3, res.Graph.Diameter)
}

func TestBridgedTrianglesTwoCommunities(t *testing.T) {
	edges := []analysis.EdgeInput{
		edge("A", "B", 1), edge("B", "C", 1), edge("C", "A", 1),
		edge("D", "E", 1), edge("E", "F", 1), edge("F", "D", 1),
		edge("C", "D", 0.1),
	}
	opts := analysis.DefaultOptions()
	opts.GraphStats = true
	res, err := analysis.Analyze(context.Background(), edges, nil,
		[]string{analysis.FeatureModularity, analysis.FeatureBetween}, opts)
	require.NoError(t, err)

	require.Equal(t, 2, res.Graph.NumCommunities)
	require.Greater(t, res.Graph.Modularity, 0.3)

	c := findStats(t, res, "C")
	d := findStats(t, res, "D")
	require.Greater(t, *c.Betweenness, 0.0)
	require.InDelta(t, *c.Betweenness, *d.Betweenness, 1e-9)
}

func TestDisconnectedPairGraphStats(t *testing.T) {
	edges := []analysis.EdgeInput{edge("A", "B", 1), edge("C", "D", 1)}
	opts := analysis.DefaultOptions()
	opts.GraphStats = true
	res, err := analysis.Analyze(context.Background(), edges, nil,
		[]string{analysis.FeatureModularity}, opts)
	require.NoError(t, err)
	require.Equal(t, 2, res.Graph.ConnectedComponents)
	require.False(t, res.Graph.HasDiameter)
	require.False(t, res.Graph.HasAverageShortestPath)
	require.Equal(t, 2, res.Graph.NumCommunities)
}

func TestInvalidEdgeRejected(t *testing.T) {
	edges := []analysis.EdgeInput{edge("A", "A", 1)}
	_, err := analysis.Analyze(context.Background(), edges, nil, nil, analysis.DefaultOptions())
	require.ErrorIs(t, err, analysis.ErrInvalidEdge)

	edges = []analysis.EdgeInput{{Source: "A", Target: "B", Weight: -1}}
	_, err = analysis.Analyze(context.Background(), edges, nil, nil, analysis.DefaultOptions())
	require.ErrorIs(t, err, analysis.ErrInvalidEdge)
}

func TestUnknownFeatureRejected(t *testing.T) {
	edges := []analysis.EdgeInput{edge("A", "B", 1)}
	_, err := analysis.Analyze(context.Background(), edges, nil, []string{"not-a-feature"}, analysis.DefaultOptions())
	require.ErrorIs(t, err, analysis.ErrUnknownFeature)
}

func TestIsolatedNodesAndAttrsPassThrough(t *testing.T) {
	edges := []analysis.EdgeInput{edge("A", "B", 1)}
	nodes := []analysis.NodeInput{{ID: "Z", Attrs: map[string]any{"group": 3}}}
	res, err := analysis.Analyze(context.Background(), edges, nodes,
		[]string{analysis.FeatureDegree}, analysis.DefaultOptions())
	require.NoError(t, err)

	z := findStats(t, res, "Z")
	require.Equal(t, 0, *z.Degree)
	require.Equal(t, 3, z.Attrs["group"])
}

func TestSpectralLayoutResolvesLaplacianDependency(t *testing.T) {
	edges := []analysis.EdgeInput{edge("A", "B", 1), edge("B", "C", 1), edge("C", "D", 1), edge("D", "A", 1)}
	opts := analysis.DefaultOptions()
	opts.Layout = &analysis.LayoutRequest{Algorithm: "spectral"}
	opts.Layout.Options.Width, opts.Layout.Options.Height, opts.Layout.Options.Padding = 800, 600, 40

	res, err := analysis.Analyze(context.Background(), edges, nil, nil, opts)
	require.NoError(t, err)
	require.Empty(t, res.Errors)
	require.Len(t, res.Layout, 4)

	a := findStats(t, res, "A")
	require.NotNil(t, a.LaplacianX)
	require.NotNil(t, a.LaplacianY)
}

func TestBipartiteLayoutPreconditionSurfacesAsFeatureError(t *testing.T) {
	edges := []analysis.EdgeInput{edge("A", "B", 1), edge("B", "C", 1), edge("C", "A", 1)}
	opts := analysis.DefaultOptions()
	opts.Layout = &analysis.LayoutRequest{Algorithm: "bipartite"}

	res, err := analysis.Analyze(context.Background(), edges, nil, nil, opts)
	require.NoError(t, err)
	fe, ok := res.Errors["bipartite"]
	require.True(t, ok)
	require.Equal(t, analysis.KindLayoutPreconditionUnmet, fe.Kind)
}

func TestStrictModeAbortsOnFirstFailure(t *testing.T) {
	edges := []analysis.EdgeInput{edge("A", "B", 1), edge("B", "C", 1), edge("C", "A", 1)}
	opts := analysis.DefaultOptions()
	opts.Strict = true
	opts.Layout = &analysis.LayoutRequest{Algorithm: "bipartite"}

	_, err := analysis.Analyze(context.Background(), edges, nil, nil, opts)
	require.Error(t, err)
	var strictErr *analysis.StrictError
	require.ErrorAs(t, err, &strictErr)
}
