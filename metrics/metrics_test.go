package metrics_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphstat/core"
	"github.com/katalvlaran/graphstat/metrics"
)

func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("C", "A", 1))
	return g
}

func pathABCD(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))
	return g
}

func star5(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, leaf := range []core.NodeID{"L1", "L2", "L3", "L4", "L5"} {
		require.NoError(t, g.AddEdge("H", leaf, 1))
	}
	return g
}

func TestDegreeTriangle(t *testing.T) {
	g := triangle(t)
	deg, err := metrics.Degree(g)
	require.NoError(t, err)
	require.Equal(t, map[core.NodeID]int{"A": 2, "B": 2, "C": 2}, deg)
}

func TestClusteringTriangleIsOne(t *testing.T) {
	g := triangle(t)
	c, err := metrics.Clustering(g)
	require.NoError(t, err)
	require.InDelta(t, 1.0, c["A"], 1e-9)
	require.InDelta(t, 1.0, c["B"], 1e-9)
	require.InDelta(t, 1.0, c["C"], 1e-9)
}

func TestClusteringPathIsZero(t *testing.T) {
	g := pathABCD(t)
	c, err := metrics.Clustering(g)
	require.NoError(t, err)
	for _, v := range c {
		require.Equal(t, 0.0, v)
	}
}

func TestBetweennessTriangleIsZero(t *testing.T) {
	g := triangle(t)
	cb, err := metrics.Betweenness(context.Background(), g, nil)
	require.NoError(t, err)
	for _, v := range cb {
		require.Equal(t, 0.0, v)
	}
}

func TestBetweennessPathEndpointsZeroMiddleTwoThirds(t *testing.T) {
	g := pathABCD(t)
	cb, err := metrics.Betweenness(context.Background(), g, nil)
	require.NoError(t, err)
	require.InDelta(t, 0.0, cb["A"], 1e-9)
	require.InDelta(t, 2.0/3.0, cb["B"], 1e-9)
	require.InDelta(t, 2.0/3.0, cb["C"], 1e-9)
	require.InDelta(t, 0.0, cb["D"], 1e-9)
}

func TestBetweennessStarHubIsOne(t *testing.T) {
	g := star5(t)
	cb, err := metrics.Betweenness(context.Background(), g, nil)
	require.NoError(t, err)
	require.InDelta(t, 1.0, cb["H"], 1e-9)
	for _, leaf := range []core.NodeID{"L1", "L2", "L3", "L4", "L5"} {
		require.InDelta(t, 0.0, cb[leaf], 1e-9)
	}
}

func TestEigenvectorTriangleUniform(t *testing.T) {
	g := triangle(t)
	ev, err := metrics.EigenvectorCentrality(context.Background(), g, metrics.DefaultEigenvectorOptions(), nil)
	require.NoError(t, err)
	for _, v := range ev {
		require.InDelta(t, 0.57735, v, 1e-3)
	}
}

func TestEigenvectorEmptyGraph(t *testing.T) {
	ev, err := metrics.EigenvectorCentrality(context.Background(), core.NewGraph(), metrics.DefaultEigenvectorOptions(), nil)
	require.NoError(t, err)
	require.Empty(t, ev)
}

func TestCliqueCountsTriangle(t *testing.T) {
	g := triangle(t)
	cliques, err := metrics.MaximalCliques(context.Background(), g)
	require.NoError(t, err)
	require.Len(t, cliques, 1)
	require.ElementsMatch(t, []core.NodeID{"A", "B", "C"}, cliques[0])

	counts := metrics.CliqueCounts(g, cliques)
	require.Equal(t, map[core.NodeID]int{"A": 1, "B": 1, "C": 1}, counts)
}

func TestCliqueCountsSingleNode(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A"))

	cliques, err := metrics.MaximalCliques(context.Background(), g)
	require.NoError(t, err)
	require.Len(t, cliques, 1)
	require.Equal(t, []core.NodeID{"A"}, cliques[0])
}

func TestGraphStatsPathDiameterThree(t *testing.T) {
	g := pathABCD(t)
	clustering, err := metrics.Clustering(g)
	require.NoError(t, err)

	stats, err := metrics.ComputeGraphStats(g, clustering)
	require.NoError(t, err)
	require.Equal(t, 1, stats.ConnectedComponents)
	require.True(t, stats.HasDiameter)
	require.Equal(t, 3, stats.Diameter)
}

func TestGraphStatsDisconnectedHasNoDiameter(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))

	stats, err := metrics.ComputeGraphStats(g, nil)
	require.NoError(t, err)
	require.Equal(t, 2, stats.ConnectedComponents)
	require.False(t, stats.HasDiameter)
	require.False(t, stats.HasAverageShortestPath)
}

func TestLaplacianEigenvectorsRejectsOversizedGraph(t *testing.T) {
	g := star5(t)
	_, err := metrics.LaplacianEigenvectors(context.Background(), g, 3, nil)
	require.ErrorIs(t, err, metrics.ErrGraphTooLarge)
}

func TestLaplacianEigenvectorsSingleNode(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A"))

	coords, err := metrics.LaplacianEigenvectors(context.Background(), g, 0, nil)
	require.NoError(t, err)
	require.Equal(t, 0.0, coords.X["A"])
	require.Equal(t, 0.0, coords.Y["A"])
}

func TestBetweennessBridgedTrianglesSymmetricBridge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("C", "A", 1))
	require.NoError(t, g.AddEdge("D", "E", 1))
	require.NoError(t, g.AddEdge("E", "F", 1))
	require.NoError(t, g.AddEdge("F", "D", 1))
	require.NoError(t, g.AddEdge("C", "D", 0.1))

	cb, err := metrics.Betweenness(context.Background(), g, nil)
	require.NoError(t, err)
	require.Greater(t, cb["C"], 0.0)
	require.InDelta(t, cb["C"], cb["D"], 1e-9, "bridge endpoints must be equal by symmetry")

	stats, err := metrics.ComputeGraphStats(g, nil)
	require.NoError(t, err)
	require.True(t, stats.HasDiameter)
	require.Equal(t, 3, stats.Diameter)
}
