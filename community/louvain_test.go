package community_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphstat/community"
	"github.com/katalvlaran/graphstat/core"
)

func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("C", "A", 1))
	return g
}

func bridgedTriangles(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("C", "A", 1))
	require.NoError(t, g.AddEdge("D", "E", 1))
	require.NoError(t, g.AddEdge("E", "F", 1))
	require.NoError(t, g.AddEdge("F", "D", 1))
	require.NoError(t, g.AddEdge("C", "D", 0.1))
	return g
}

func TestLouvainTriangleSingleCommunityZeroModularity(t *testing.T) {
	g := triangle(t)
	res, err := community.Louvain(context.Background(), g, community.DefaultOptions(), nil)
	require.NoError(t, err)

	require.Equal(t, 1, res.NumCommunities)
	c := res.Communities["A"]
	require.Equal(t, c, res.Communities["B"])
	require.Equal(t, c, res.Communities["C"])
	require.InDelta(t, 0.0, res.Modularity, 1e-9)
}

func TestLouvainStarSingleCommunity(t *testing.T) {
	g := core.NewGraph()
	for _, leaf := range []core.NodeID{"L1", "L2", "L3", "L4", "L5"} {
		require.NoError(t, g.AddEdge("H", leaf, 1))
	}
	res, err := community.Louvain(context.Background(), g, community.DefaultOptions(), nil)
	require.NoError(t, err)
	require.Equal(t, 1, res.NumCommunities)
}

func TestLouvainBridgedTrianglesTwoCommunities(t *testing.T) {
	g := bridgedTriangles(t)
	res, err := community.Louvain(context.Background(), g, community.DefaultOptions(), nil)
	require.NoError(t, err)

	require.Equal(t, 2, res.NumCommunities)
	require.Greater(t, res.Modularity, 0.3)
	require.Equal(t, res.Communities["A"], res.Communities["B"])
	require.Equal(t, res.Communities["A"], res.Communities["C"])
	require.Equal(t, res.Communities["D"], res.Communities["E"])
	require.Equal(t, res.Communities["D"], res.Communities["F"])
	require.NotEqual(t, res.Communities["A"], res.Communities["D"])
}

func TestLouvainDisconnectedPairsTwoCommunities(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))

	res, err := community.Louvain(context.Background(), g, community.DefaultOptions(), nil)
	require.NoError(t, err)
	require.Equal(t, 2, res.NumCommunities)
}

func TestLouvainCommunityIdsDenseFromZero(t *testing.T) {
	g := bridgedTriangles(t)
	res, err := community.Louvain(context.Background(), g, community.DefaultOptions(), nil)
	require.NoError(t, err)

	seen := make(map[int]bool)
	for _, c := range res.Communities {
		seen[c] = true
	}
	for c := 0; c < res.NumCommunities; c++ {
		require.True(t, seen[c], "community id %d must be present", c)
	}
}

func TestLouvainDeterministicForFixedSeed(t *testing.T) {
	g := bridgedTriangles(t)
	opts := community.Options{Resolution: 1.0, Seed: 7, MaxIter: 100}

	r1, err := community.Louvain(context.Background(), g, opts, nil)
	require.NoError(t, err)
	r2, err := community.Louvain(context.Background(), g, opts, nil)
	require.NoError(t, err)

	require.Equal(t, r1.Communities, r2.Communities)
	require.Equal(t, r1.Modularity, r2.Modularity)
}

func TestModularityAtLeastSingletonPartition(t *testing.T) {
	g := bridgedTriangles(t)
	res, err := community.Louvain(context.Background(), g, community.DefaultOptions(), nil)
	require.NoError(t, err)

	singleton := make(map[core.NodeID]int)
	for i, id := range g.NodeIDs() {
		singleton[id] = i
	}
	singletonQ := community.Modularity(g, singleton, 1.0)

	require.GreaterOrEqual(t, res.Modularity, singletonQ)
}
