package loading_test

import (
	"fmt"

	"github.com/katalvlaran/routechoice/enumerator"
	"github.com/katalvlaran/routechoice/loading"
	"github.com/katalvlaran/routechoice/netgraph"
)

// Example accumulates one OD's route probabilities into total link
// loads, then reduces a single worker's Accumulator into a Result.
func Example() {
	g, err := netgraph.NewGraph(3, []netgraph.LinkInput{
		{From: 0, To: 1, Cost: 1, NetworkLinkIDs: []int32{10}},
		{From: 1, To: 2, Cost: 1, NetworkLinkIDs: []int32{11}},
		{From: 0, To: 2, Cost: 3, NetworkLinkIDs: []int32{12}},
	})
	if err != nil {
		panic(err)
	}

	acc := loading.NewAccumulator(int(g.NumNetworkLinks()), []string{"base"}, nil)
	// Compact links follow NewGraph's CSR order: 0 is 0->1, 1 is 0->2, 2 is 1->2.
	acc.Accumulate(0, 2, enumerator.Route{0, 2}, 0.731, map[string]float64{"base": 10}, g, nil)
	acc.Accumulate(0, 2, enumerator.Route{1}, 0.269, map[string]float64{"base": 10}, g, nil)

	result := loading.Reduce([]*loading.Accumulator{acc})
	fmt.Printf("%.2f %.2f %.2f\n", result.Total["base"][10], result.Total["base"][11], result.Total["base"][12])
	// Output:
	// 7.31 7.31 2.69
}
