package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/lvgrid/grid"
	"github.com/katalvlaran/lvgrid/gridgraph"
)

// ExampleGridGraph_ConnectedComponents lists islands as row-major offsets.
func ExampleGridGraph_ConnectedComponents() {
	gg, _ := gridgraph.From2D([][]int{
		{1, 1, 0, 0, 0},
		{1, 0, 0, 1, 1},
		{0, 0, 0, 0, 1},
		{0, 1, 0, 0, 0},
	}, gridgraph.Conn4)

	for i, comp := range gg.ConnectedComponents() {
		fmt.Println(i, comp)
	}
	// Output:
	// 0 [0 1 5]
	// 1 [8 9 14]
	// 2 [16]
}

// ExampleGridGraph_ComponentsIn searches only the top two rows.
func ExampleGridGraph_ComponentsIn() {
	gg, _ := gridgraph.From2D([][]int{
		{1, 1, 0, 0, 0},
		{1, 0, 0, 1, 1},
		{0, 0, 0, 0, 1},
		{0, 1, 0, 0, 0},
	}, gridgraph.Conn4)

	comps, err := gg.ComponentsIn(grid.Index2{0, 0}, grid.Index2{2, 5})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(comps)
	// Output:
	// [[0 1 5] [8 9]]
}

// ExampleGridGraph_ExpandIsland bridges the first two islands.
func ExampleGridGraph_ExpandIsland() {
	gg, _ := gridgraph.From2D([][]int{
		{1, 1, 0, 0, 0},
		{1, 0, 0, 1, 1},
		{0, 0, 0, 0, 1},
		{0, 1, 0, 0, 0},
	}, gridgraph.Conn4)

	path, cost, err := gg.ExpandIsland(0, 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, idx := range path {
		x, y, _ := gg.Coordinate(idx)
		fmt.Printf("(%d,%d) ", x, y)
	}
	fmt.Println("cost", cost)
	// Output:
	// (0,1) (1,1) (2,1) (3,1) cost 2
}
