package gridgraph_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/lvgrid/grid"
	"github.com/katalvlaran/lvgrid/gridgraph"
	"github.com/stretchr/testify/require"
)

// TestConnectedComponents checks island discovery order and membership.
func TestConnectedComponents(t *testing.T) {
	for _, conn := range []gridgraph.Connectivity{gridgraph.Conn4, gridgraph.Conn8} {
		t.Run(conn.String(), func(t *testing.T) {
			gg, err := gridgraph.From2D(sample(), conn)
			require.NoError(t, err)

			want := [][]int{{0, 1, 5}, {8, 9, 14}, {16}}
			if diff := cmp.Diff(want, gg.ConnectedComponents()); diff != "" {
				t.Errorf("components mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestConnectedComponentsThreshold shows diagonals joining islands under Conn8.
func TestConnectedComponentsThreshold(t *testing.T) {
	values := [][]int{{5, 2, 7}, {1, 9, 3}}
	opts := gridgraph.GridOptions{LandThreshold: 5, Conn: gridgraph.Conn4}

	gg, err := gridgraph.NewGridGraph(values, opts)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0}, {2}, {4}}, gg.ConnectedComponents())

	opts.Conn = gridgraph.Conn8
	gg, err = gridgraph.NewGridGraph(values, opts)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 4, 2}}, gg.ConnectedComponents())
}

// TestConnectedComponentsAllWater returns no components.
func TestConnectedComponentsAllWater(t *testing.T) {
	gg, err := gridgraph.From2D([][]int{{0, 0}, {0, 0}}, gridgraph.Conn8)
	require.NoError(t, err)
	require.Empty(t, gg.ConnectedComponents())
}

// TestComponentsIn restricts the search to a window.
func TestComponentsIn(t *testing.T) {
	gg, err := gridgraph.From2D(sample(), gridgraph.Conn4)
	require.NoError(t, err)

	// Rows 0..1, columns 0..3: (1,4) is cut off, (1,3) stands alone.
	got, err := gg.ComponentsIn(grid.Index2{0, 0}, grid.Index2{2, 4})
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1, 5}, {8}}, got)

	got, err = gg.ComponentsIn(grid.Index2{1, 1}, grid.Index2{4, 5})
	require.NoError(t, err)
	require.Equal(t, [][]int{{8, 9, 14}, {16}}, got)

	got, err = gg.ComponentsIn(grid.Index2{2, 2}, grid.Index2{2, 5})
	require.NoError(t, err)
	require.Empty(t, got)
}

// TestComponentsInErrors passes grid bound errors through.
func TestComponentsInErrors(t *testing.T) {
	gg, err := gridgraph.From2D(sample(), gridgraph.Conn4)
	require.NoError(t, err)

	_, err = gg.ComponentsIn(grid.Index2{3, 0}, grid.Index2{1, 5})
	require.ErrorIs(t, err, grid.ErrInvalidBounds)

	_, err = gg.ComponentsIn(grid.Index2{0, 0}, grid.Index2{5, 5})
	require.ErrorIs(t, err, grid.ErrInvalidBounds)
	require.Contains(t, err.Error(), "gridgraph: ComponentsIn:")
}
