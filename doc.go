// Package lvgrid addresses N-dimensional rectangular regions: it maps
// coordinates of a tile, or of a bounded slice of it, to linear offsets and
// back, and walks them in a chosen nesting order.
//
// What:
//
//	A small, allocation-free, generic toolkit:
//		• grid/      : Index1..Index4, Layout, Tile, Slice, Cursor, sentinel errors
//		• gridgraph/ : 2D cell grids as graphs (islands, windows, bridging) on grid.Tile
//		• cmd/gridwalk : CLI that prints offsets and coordinates of a slice
//
// Why:
//
//   - One bijection per Layout: Offset(Index(o)) == o and Index(Offset(i)) == i.
//   - Slices carry their own Layout, so the same region can be visited
//     row-major, column-major or in any dimension order without copying data.
//   - Immutable values: share Tiles and Slices across goroutines freely.
//
// Quick example:
//
//	tile, _ := grid.NewTile(grid.Index2{4, 3})
//	s, _ := tile.Slice(grid.Index2{1, 0}, grid.Index2{3, 3}, grid.ColumnMajorOrder[grid.Index2]())
//	for off, at := range s.Enumerate() {
//		fmt.Println(off, at) // 0 (1,0), 1 (2,0), 2 (1,1), ...
//	}
//
//	go get github.com/katalvlaran/lvgrid
package lvgrid
