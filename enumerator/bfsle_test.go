package enumerator_test

import (
	"testing"

	"github.com/katalvlaran/routechoice/enumerator"
	"github.com/katalvlaran/routechoice/netgraph"
	"github.com/katalvlaran/routechoice/pathfinder"
	"github.com/stretchr/testify/require"
)

func triangleGraph(t *testing.T) *netgraph.Graph {
	t.Helper()
	g, err := netgraph.NewGraph(3, []netgraph.LinkInput{
		{From: 0, To: 1, Cost: 1, NetworkLinkIDs: []int32{10}},
		{From: 1, To: 2, Cost: 1, NetworkLinkIDs: []int32{11}},
		{From: 0, To: 2, Cost: 3, NetworkLinkIDs: []int32{12}},
	})
	require.NoError(t, err)
	return g
}

func diamondGraph(t *testing.T) *netgraph.Graph {
	t.Helper()
	g, err := netgraph.NewGraph(4, []netgraph.LinkInput{
		{From: 0, To: 1, Cost: 1, NetworkLinkIDs: []int32{1}},
		{From: 0, To: 2, Cost: 1, NetworkLinkIDs: []int32{2}},
		{From: 1, To: 3, Cost: 1, NetworkLinkIDs: []int32{3}},
		{From: 2, To: 3, Cost: 1, NetworkLinkIDs: []int32{4}},
	})
	require.NoError(t, err)
	return g
}

func newEnumWorkers(g *netgraph.Graph) (*netgraph.Workspace, *pathfinder.Scratch, *enumerator.CostScratch) {
	ws := g.NewWorkspace()
	pfScratch := pathfinder.NewScratch(g.NumNodes())
	costScratch := enumerator.NewCostScratch(g.NumLinks())
	return ws, pfScratch, costScratch
}

func TestBFSLE_TriangleMaxRoutesTwo(t *testing.T) {
	g := triangleGraph(t)
	ws, pfScratch, costScratch := newEnumWorkers(g)
	rng := enumerator.NewLCG(1)

	rs, err := enumerator.BFSLE{}.Enumerate(
		ws, pathfinder.DijkstraSolver{}, pfScratch, costScratch,
		0, 2, enumerator.Config{MaxRoutes: 2, MaxDepth: 5}, rng,
	)
	require.NoError(t, err)
	require.Equal(t, enumerator.Filled, rs.State)
	require.Equal(t, 2, rs.Len())

	// The two routes must be distinct.
	require.NotEqual(t, rs.Routes[0], rs.Routes[1])
}

func TestBFSLE_DiamondEqualCostRoutes(t *testing.T) {
	g := diamondGraph(t)
	ws, pfScratch, costScratch := newEnumWorkers(g)
	rng := enumerator.NewLCG(7)

	rs, err := enumerator.BFSLE{}.Enumerate(
		ws, pathfinder.DijkstraSolver{}, pfScratch, costScratch,
		0, 3, enumerator.Config{MaxRoutes: 2, MaxDepth: 5}, rng,
	)
	require.NoError(t, err)
	require.Equal(t, 2, rs.Len())

	seenLinks := make(map[int32]bool)
	for _, route := range rs.Routes {
		require.Len(t, route, 2)
		for _, link := range route {
			seenLinks[link] = true
		}
	}
	require.Len(t, seenLinks, 4, "the two equal-cost diamond routes together use all four links")
}

func TestBFSLE_SameOriginDestination(t *testing.T) {
	g := triangleGraph(t)
	ws, pfScratch, costScratch := newEnumWorkers(g)

	rs, err := enumerator.BFSLE{}.Enumerate(
		ws, pathfinder.DijkstraSolver{}, pfScratch, costScratch,
		1, 1, enumerator.Config{MaxRoutes: 1}, nil,
	)
	require.NoError(t, err)
	require.Equal(t, enumerator.Filled, rs.State)
	require.Equal(t, 0, rs.Len())
	require.Empty(t, rs.Routes)
}

func TestBFSLE_InvalidNode(t *testing.T) {
	g := triangleGraph(t)
	ws, pfScratch, costScratch := newEnumWorkers(g)

	_, err := enumerator.BFSLE{}.Enumerate(
		ws, pathfinder.DijkstraSolver{}, pfScratch, costScratch,
		0, 99, enumerator.Config{MaxRoutes: 1}, nil,
	)
	require.ErrorIs(t, err, enumerator.ErrInvalidNode)
}
