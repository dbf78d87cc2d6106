package demand_test

import (
	"fmt"

	"github.com/katalvlaran/routechoice/demand"
)

// Example loads a small single-column demand table from a dense matrix
// and reads back one OD value.
func Example() {
	tbl := demand.NewTable()
	if err := tbl.AddDenseMatrix64("auto", 2, [][]float64{
		{0, 120},
		{80, 0},
	}); err != nil {
		panic(err)
	}
	if err := tbl.Finalize(); err != nil {
		panic(err)
	}

	v, ok := tbl.Value64("auto", 0, 1)
	fmt.Println("demand(0,1):", v, ok)
	fmt.Println("no demand for (1,1):", tbl.NoDemand(1, 1))

	// Output:
	// demand(0,1): 120 true
	// no demand for (1,1): true
}
