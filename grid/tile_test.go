package grid_test

import (
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/lvgrid/grid"
	"github.com/stretchr/testify/require"
)

// TestNewTileDefaults verifies origin zero and a row-major default layout.
func TestNewTileDefaults(t *testing.T) {
	tile, err := grid.NewTile(grid.Index2{4, 3})
	require.NoError(t, err)

	require.Equal(t, grid.Index2{0, 0}, tile.Low())
	require.Equal(t, grid.Index2{4, 3}, tile.High())
	require.Equal(t, grid.Index2{4, 3}, tile.Shape())
	require.Equal(t, 12, tile.Volume())
	require.Equal(t, grid.RowMajorOrder[grid.Index2](), tile.Layout().Order())
}

// TestNewTileOptions covers WithOrigin, WithOrder and WithColumnMajor.
func TestNewTileOptions(t *testing.T) {
	tile, err := grid.NewTile(grid.Index2{2, 3},
		grid.WithOrigin(grid.Index2{-1, 10}),
		grid.WithColumnMajor[grid.Index2](),
	)
	require.NoError(t, err)
	require.Equal(t, grid.Index2{-1, 10}, tile.Low())
	require.Equal(t, grid.Index2{1, 13}, tile.High())
	require.Equal(t, grid.Index2{0, 1}, tile.Layout().Order())

	// Later options win.
	tile, err = grid.NewTile(grid.Index2{2, 3},
		grid.WithColumnMajor[grid.Index2](),
		grid.WithOrder(grid.Index2{1, 0}),
		nil,
	)
	require.NoError(t, err)
	require.Equal(t, grid.Index2{1, 0}, tile.Layout().Order())
}

// TestNewTileErrors ensures NewTile validation surfaces the sentinels.
func TestNewTileErrors(t *testing.T) {
	_, err := grid.NewTile(grid.Index2{-1, 3})
	require.ErrorIs(t, err, grid.ErrInvalidBounds)

	_, err = grid.NewTile(grid.Index2{1, 3}, grid.WithOrder(grid.Index2{1, 1}))
	require.ErrorIs(t, err, grid.ErrInvalidOrder)

	_, err = grid.NewTile(grid.Index2{2, 2}, grid.WithOrigin(grid.Index2{math.MaxInt, 0}))
	require.ErrorIs(t, err, grid.ErrVolumeOverflow)
}

// TestTileOffsetIndex verifies tile-global addressing through an offset origin.
func TestTileOffsetIndex(t *testing.T) {
	tile, err := grid.NewTile(grid.Index2{2, 3}, grid.WithOrigin(grid.Index2{10, 20}))
	require.NoError(t, err)

	off, err := tile.Offset(grid.Index2{11, 21})
	require.NoError(t, err)
	require.Equal(t, 4, off) // local (1,1) row-major in a 2×3 shape

	at, err := tile.Index(4)
	require.NoError(t, err)
	require.Equal(t, grid.Index2{11, 21}, at)

	_, err = tile.Offset(grid.Index2{0, 0})
	require.ErrorIs(t, err, grid.ErrOutOfRange)
	_, err = tile.Offset(grid.Index2{12, 20}) // high is exclusive
	require.ErrorIs(t, err, grid.ErrOutOfRange)
	_, err = tile.Index(6)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
}

// TestTileAll verifies the default whole-tile walk.
func TestTileAll(t *testing.T) {
	tile, err := grid.NewTile(grid.Index2{2, 2}, grid.WithOrigin(grid.Index2{1, 1}))
	require.NoError(t, err)

	got := slices.Collect(tile.All())
	require.Equal(t, []grid.Index2{{1, 1}, {1, 2}, {2, 1}, {2, 2}}, got)

	for off, at := range tile.Enumerate() {
		back, err := tile.Offset(at)
		require.NoError(t, err)
		require.Equal(t, off, back)
	}
}

// TestTileString checks the diagnostic rendering.
func TestTileString(t *testing.T) {
	tile, err := grid.NewTile(grid.Index2{4, 3})
	require.NoError(t, err)
	require.Equal(t, "Tile[(0,0), (4,3)) Layout{shape (4,3), order (1,0)}", tile.String())
}
