package netgraph_test

import (
	"testing"

	"github.com/katalvlaran/routechoice/netgraph"
	"github.com/stretchr/testify/require"
)

// Two centroids (0, 1) connected through a through-node (2), plus a
// direct centroid-to-centroid edge and a loop 2->3->0 back into centroid
// 0. The tests block for OD (0,1) and check that the edge 3->0, which
// enters centroid 0 as a non-destination, is redirected to the dead-end
// sentinel and restored by Unblock.
func centroidGraph(t *testing.T) *netgraph.Graph {
	t.Helper()
	g, err := netgraph.NewGraph(4, []netgraph.LinkInput{
		{From: 0, To: 2, Cost: 1, NetworkLinkIDs: []int32{1}},
		{From: 2, To: 1, Cost: 1, NetworkLinkIDs: []int32{2}},
		{From: 0, To: 1, Cost: 5, NetworkLinkIDs: []int32{3}},
		{From: 2, To: 3, Cost: 1, NetworkLinkIDs: []int32{4}},
		{From: 3, To: 0, Cost: 1, NetworkLinkIDs: []int32{5}},
	}, netgraph.WithZones(2))
	require.NoError(t, err)
	return g
}

func TestWorkspace_BlockRedirectsCentroidEdges(t *testing.T) {
	g := centroidGraph(t)
	ws := g.NewWorkspace()

	ws.Block(0, 1)
	// node 3 -> 0 is an edge into centroid 0, which is not the destination
	// (1), so it must be redirected to the dead-end sentinel.
	start, end := ws.Neighbors(3)
	require.Equal(t, int32(1), end-start)
	link := start
	require.Equal(t, g.NumNodes(), ws.Head(link))

	ws.Unblock()
	require.Equal(t, int32(0), ws.Head(link), "unblock restores original head")
}

func TestWorkspace_BlockNoopWithoutZones(t *testing.T) {
	g, err := netgraph.NewGraph(2, []netgraph.LinkInput{{From: 0, To: 1, Cost: 1, NetworkLinkIDs: []int32{1}}})
	require.NoError(t, err)
	ws := g.NewWorkspace()
	ws.Block(0, 1)
	require.Equal(t, int32(1), ws.Head(0))
}

func TestWorkspace_DeadEndHasNoNeighbors(t *testing.T) {
	g := centroidGraph(t)
	ws := g.NewWorkspace()
	start, end := ws.Neighbors(g.NumNodes())
	require.Equal(t, start, end)
}
