package choice_test

import (
	"testing"

	"github.com/katalvlaran/routechoice/choice"
	"github.com/katalvlaran/routechoice/enumerator"
	"github.com/katalvlaran/routechoice/netgraph"
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

// TestCompute_Triangle mirrors spec.md §8 scenario 1: two routes, costs
// 2.0 and 3.0, both unmasked at the default cutoff_prob == 0 (scaled to
// 1.0), probabilities approximately [0.731, 0.269].
func TestCompute_Triangle(t *testing.T) {
	g := triangleGraph(t)
	routes := []enumerator.Route{
		{0, 2}, // 0->1->2, cost 2 (NewGraph's CSR order: link 2 is 1->2)
		{1},    // 0->2, cost 3
	}

	result, warns, err := choice.Compute(routes, g, choice.Config{CutoffProb: 1.0, Beta: 1.0})
	require.NoError(t, err)
	require.Empty(t, warns)
	require.Equal(t, []float64{2, 3}, result.Cost)
	require.Equal(t, []bool{true, true}, result.Mask)
	require.InDelta(t, 0.731, result.Probability[0], 1e-3)
	require.InDelta(t, 0.269, result.Probability[1], 1e-3)

	sum := result.Probability[0] + result.Probability[1]
	require.InDelta(t, 1.0, sum, 1e-9)
}

// TestCompute_StrictCutoffKeepsOnlyCheapest exercises CutoffProb == 0.5
// (the most selective end of the scaled domain), which spec.md §8's
// "max_routes = 1" boundary behavior generalizes: only the argmin route
// should survive.
func TestCompute_StrictCutoffKeepsOnlyCheapest(t *testing.T) {
	g := triangleGraph(t)
	routes := []enumerator.Route{{0, 2}, {1}}

	result, _, err := choice.Compute(routes, g, choice.Config{CutoffProb: 0.5, Beta: 1.0})
	require.NoError(t, err)
	require.Equal(t, []bool{true, false}, result.Mask)
	require.Equal(t, 1.0, result.Probability[0])
	require.Equal(t, 0.0, result.Probability[1])
}

// TestCompute_DiamondSymmetric mirrors spec.md §8 scenario 3: two
// equal-cost, link-disjoint routes split probability 0.5/0.5 regardless
// of the specific path-overlap value, since symmetric costs and
// symmetric overlap cancel in the PSL ratio.
func TestCompute_DiamondSymmetric(t *testing.T) {
	g, err := netgraph.NewGraph(4, []netgraph.LinkInput{
		{From: 0, To: 1, Cost: 1, NetworkLinkIDs: []int32{1}},
		{From: 0, To: 2, Cost: 1, NetworkLinkIDs: []int32{2}},
		{From: 1, To: 3, Cost: 1, NetworkLinkIDs: []int32{3}},
		{From: 2, To: 3, Cost: 1, NetworkLinkIDs: []int32{4}},
	})
	require.NoError(t, err)

	routes := []enumerator.Route{{0, 2}, {1, 3}}
	result, _, err := choice.Compute(routes, g, choice.Config{CutoffProb: 1.0, Beta: 1.0})
	require.NoError(t, err)
	require.Equal(t, []bool{true, true}, result.Mask)
	require.InDelta(t, 0.5, result.Probability[0], 1e-9)
	require.InDelta(t, 0.5, result.Probability[1], 1e-9)
	require.Equal(t, result.PathOverlap[0], result.PathOverlap[1])
}

// TestCompute_ZeroCostMasksEverything mirrors spec.md §8 scenario 5.
func TestCompute_ZeroCostMasksEverything(t *testing.T) {
	g, err := netgraph.NewGraph(3, []netgraph.LinkInput{
		{From: 0, To: 1, Cost: 1, NetworkLinkIDs: []int32{10}},
		{From: 1, To: 2, Cost: 1, NetworkLinkIDs: []int32{11}},
		{From: 0, To: 2, Cost: 0, NetworkLinkIDs: []int32{12}},
	})
	require.NoError(t, err)

	routes := []enumerator.Route{{0, 2}, {1}}
	result, warns, err := choice.Compute(routes, g, choice.Config{CutoffProb: 1.0, Beta: 1.0})
	require.NoError(t, err)
	require.Len(t, warns, 1)
	require.Equal(t, "zero_cost_route_set", warns[0].Code)
	require.Equal(t, []bool{false, false}, result.Mask)
	require.Equal(t, []float64{0, 0}, result.Probability)
}

func TestCompute_EmptyRouteSet(t *testing.T) {
	g := triangleGraph(t)
	_, _, err := choice.Compute(nil, g, choice.Config{CutoffProb: 1.0, Beta: 1.0})
	require.ErrorIs(t, err, choice.ErrEmptyRouteSet)
}

func TestCompute_InvalidParameters(t *testing.T) {
	g := triangleGraph(t)
	routes := []enumerator.Route{{0, 1}}

	_, _, err := choice.Compute(routes, g, choice.Config{CutoffProb: 0.3, Beta: 1.0})
	require.ErrorIs(t, err, choice.ErrInvalidCutoffProb)

	_, _, err = choice.Compute(routes, g, choice.Config{CutoffProb: 1.0, Beta: 0})
	require.ErrorIs(t, err, choice.ErrInvalidBeta)
}

func TestBuildRows(t *testing.T) {
	g := triangleGraph(t)
	routes := []enumerator.Route{{0, 2}, {1}}
	result, _, err := choice.Compute(routes, g, choice.Config{CutoffProb: 1.0, Beta: 1.0})
	require.NoError(t, err)

	rows := choice.BuildRows(100, 200, routes, g, result)
	require.Len(t, rows, 2)
	require.Equal(t, []int32{10, 11}, rows[0].RouteSet)
	require.True(t, rows[0].Assigned)
	require.Equal(t, 2.0, rows[0].Cost)

	rowsNoAssign := choice.BuildRows(100, 200, routes, g, nil)
	require.False(t, rowsNoAssign[0].Assigned)
	require.Equal(t, []int32{12}, rowsNoAssign[1].RouteSet)
}
