package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/lvgrid/grid"
	"github.com/katalvlaran/lvgrid/gridgraph"
	"github.com/stretchr/testify/require"
)

// TestExpandIsland checks minimal costs and exact BFS paths.
func TestExpandIsland(t *testing.T) {
	cases := []struct {
		name     string
		conn     gridgraph.Connectivity
		src, dst int
		path     []int
		cost     int
	}{
		{"Conn4_0to1", gridgraph.Conn4, 0, 1, []int{5, 6, 7, 8}, 2},
		{"Conn4_0to2", gridgraph.Conn4, 0, 2, []int{5, 6, 11, 16}, 2},
		{"Conn4_1to2", gridgraph.Conn4, 1, 2, []int{14, 19, 18, 17, 16}, 3},
		{"Conn8_0to1", gridgraph.Conn8, 0, 1, []int{1, 2, 8}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gg, err := gridgraph.From2D(sample(), tc.conn)
			require.NoError(t, err)

			path, cost, err := gg.ExpandIsland(tc.src, tc.dst)
			require.NoError(t, err)
			require.Equal(t, tc.path, path)
			require.Equal(t, tc.cost, cost)
			requireConnected(t, gg, path)
		})
	}
}

// TestExpandIslandSameComponent returns a single cell at zero cost.
func TestExpandIslandSameComponent(t *testing.T) {
	gg, err := gridgraph.From2D(sample(), gridgraph.Conn4)
	require.NoError(t, err)

	path, cost, err := gg.ExpandIsland(1, 1)
	require.NoError(t, err)
	require.Len(t, path, 1)
	require.Zero(t, cost)
}

// TestExpandIslandThreshold counts cells below LandThreshold as water.
func TestExpandIslandThreshold(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{5, 2, 7}, {1, 9, 3}},
		gridgraph.GridOptions{LandThreshold: 5, Conn: gridgraph.Conn4})
	require.NoError(t, err)

	path, cost, err := gg.ExpandIsland(0, 1)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, path)
	require.Equal(t, 1, cost)
}

// TestExpandIslandBadIndex rejects unknown components.
func TestExpandIslandBadIndex(t *testing.T) {
	gg, err := gridgraph.From2D(sample(), gridgraph.Conn4)
	require.NoError(t, err)

	_, _, err = gg.ExpandIsland(0, 3)
	require.ErrorIs(t, err, gridgraph.ErrComponentIndex)
	_, _, err = gg.ExpandIsland(-1, 0)
	require.ErrorIs(t, err, gridgraph.ErrComponentIndex)
}

// requireConnected asserts consecutive path cells are neighbors under gg.Conn.
func requireConnected(t *testing.T, gg *gridgraph.GridGraph, path []int) {
	t.Helper()
	for i := 1; i < len(path); i++ {
		ax, ay, err := gg.Coordinate(path[i-1])
		require.NoError(t, err)
		bx, by, err := gg.Coordinate(path[i])
		require.NoError(t, err)

		step := grid.Index2{by - ay, bx - ax}
		require.Contains(t, gg.NeighborOffsets(), step, "%d -> %d", path[i-1], path[i])
	}
}
