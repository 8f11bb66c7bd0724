package cluster_test

import (
	"fmt"

	"github.com/katalvlaran/percolation/cluster"
	"github.com/katalvlaran/percolation/lattice"
)

// ExampleLabel labels a 4×4 lattice with three clusters.
// Labels start at 2 and follow row-major scan order.
func ExampleLabel() {
	lat, _ := lattice.FromGrid([][]int{
		{1, 1, 0, 0},
		{0, 1, 0, 1},
		{0, 0, 0, 1},
		{1, 0, 1, 1},
	})
	lb, _ := cluster.Label(lat)
	for _, row := range lb.Labels() {
		fmt.Println(row)
	}
	fmt.Println("sizes:", lb.Sizes(), "max:", lb.Max(), "spans:", lb.Spans())

	// Output:
	// [2 2 0 0]
	// [0 2 0 3]
	// [0 0 0 3]
	// [4 0 3 3]
	// sizes: [3 4 1] max: 4 spans: false
}
