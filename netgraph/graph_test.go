package netgraph_test

import (
	"testing"

	"github.com/katalvlaran/routechoice/netgraph"
	"github.com/stretchr/testify/require"
)

func triangle(t *testing.T) *netgraph.Graph {
	t.Helper()
	g, err := netgraph.NewGraph(3, []netgraph.LinkInput{
		{From: 0, To: 1, Cost: 1, NetworkLinkIDs: []int32{10}},
		{From: 1, To: 2, Cost: 1, NetworkLinkIDs: []int32{11}},
		{From: 0, To: 2, Cost: 3, NetworkLinkIDs: []int32{12, 13}},
	})
	require.NoError(t, err)
	return g
}

func TestNewGraph_ForwardStarOrder(t *testing.T) {
	g := triangle(t)
	require.EqualValues(t, 3, g.NumNodes())
	require.EqualValues(t, 3, g.NumLinks())

	start, end := g.Neighbors(0)
	require.Equal(t, int32(2), end-start, "node 0 has two outgoing links")
	for link := start; link < end; link++ {
		require.Equal(t, int32(0), g.Owner(link))
	}

	start, end = g.Neighbors(2)
	require.Equal(t, start, end, "node 2 has no outgoing links")
}

func TestNewGraph_ExpandLink(t *testing.T) {
	g := triangle(t)
	start, end := g.Neighbors(0)
	var sawMulti bool
	for link := start; link < end; link++ {
		if g.Head(link) == 2 {
			require.Equal(t, []int32{12, 13}, g.ExpandLink(link))
			sawMulti = true
		}
	}
	require.True(t, sawMulti)
}

func TestNewGraph_RejectsBadInput(t *testing.T) {
	_, err := netgraph.NewGraph(-1, nil)
	require.ErrorIs(t, err, netgraph.ErrNegativeNodeCount)

	_, err = netgraph.NewGraph(2, []netgraph.LinkInput{{From: 0, To: 5, Cost: 1, NetworkLinkIDs: []int32{1}}})
	require.ErrorIs(t, err, netgraph.ErrLinkNodeOutOfRange)

	_, err = netgraph.NewGraph(2, []netgraph.LinkInput{{From: 0, To: 1, Cost: -1, NetworkLinkIDs: []int32{1}}})
	require.ErrorIs(t, err, netgraph.ErrNegativeCost)

	_, err = netgraph.NewGraph(2, []netgraph.LinkInput{{From: 0, To: 1, Cost: 1}})
	require.ErrorIs(t, err, netgraph.ErrEmptyNetworkExpansion)
}

func TestNewGraph_LatLonValidation(t *testing.T) {
	_, err := netgraph.NewGraph(2, nil, netgraph.WithLatLon([]float64{1}, []float64{1, 2}))
	require.ErrorIs(t, err, netgraph.ErrLatLonLengthMismatch)

	g, err := netgraph.NewGraph(2, nil, netgraph.WithLatLon([]float64{1, 2}, []float64{3, 4}))
	require.NoError(t, err)
	require.True(t, g.HasLatLon())
	lat, lon := g.LatLon(1)
	require.Equal(t, 2.0, lat)
	require.Equal(t, 4.0, lon)
}

func TestNewGraph_NodeMapping(t *testing.T) {
	g, err := netgraph.NewGraph(2, nil, netgraph.WithNodeMapping(map[int64]int32{1001: 0, 1002: 1}))
	require.NoError(t, err)
	idx, ok := g.NodeIndex(1001)
	require.True(t, ok)
	require.EqualValues(t, 0, idx)
	_, ok = g.NodeIndex(9999)
	require.False(t, ok)
}

func TestNewGraph_ExternalNodeIDRoundTrip(t *testing.T) {
	g, err := netgraph.NewGraph(3, nil, netgraph.WithNodeMapping(map[int64]int32{1001: 0, 1002: 1}))
	require.NoError(t, err)
	require.True(t, g.HasNodeMapping())

	for externalID, idx := range map[int64]int32{1001: 0, 1002: 1} {
		got, ok := g.ExternalNodeID(idx)
		require.True(t, ok)
		require.Equal(t, externalID, got)
	}

	_, ok := g.ExternalNodeID(2)
	require.False(t, ok, "node 2 has no entry in the supplied mapping")
}

func TestNewGraph_ExternalNodeIDWithoutMapping(t *testing.T) {
	g := triangle(t)
	require.False(t, g.HasNodeMapping())
	_, ok := g.ExternalNodeID(0)
	require.False(t, ok, "a Graph built without WithNodeMapping has no external IDs at all")
}
