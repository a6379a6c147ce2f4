// SPDX-License-Identifier: MIT

// Package grid addresses N-dimensional rectangular regions: it converts
// integer coordinates to linear offsets and back, and enumerates every
// coordinate of a region in a chosen traversal order.
//
// What:
//
//   - Index: a fixed-rank integer coordinate (Index1..Index4, or any type that
//     satisfies the Coordinate constraint).
//   - Layout: a bijection between [0, shape) and [0, volume) together with a
//     nesting order that says which dimension varies fastest.
//   - Tile: the canonical domain [low, high) with its own default Layout.
//   - Slice: a sub-rectangle [low, high) of a Tile walked under its own Layout.
//   - Cursor: the explicit iterator behind All and Enumerate.
//
// Why:
//
//   - The same region can be walked in the native packing of a buffer or in the
//     order an algorithm prefers, without copying or reshaping data.
//   - Every value is an immutable fixed-size descriptor: copy it freely and
//     share it across goroutines without locks.
//
// Orders:
//
//	order[0] is the fastest-varying dimension, order[rank-1] the slowest.
//	RowMajorOrder    (rank-1, ..., 1, 0)  last dimension fastest (C order)
//	ColumnMajorOrder (0, 1, ..., rank-1)  first dimension fastest (Fortran order)
//
// Errors:
//
//   - ErrInvalidBounds: negative extent, low > high, or a slice leaving its tile.
//   - ErrOutOfRange: index or offset outside its domain (as *AddressError).
//   - ErrIncompatibleLayout: layout shape differs from high - low.
//   - ErrInvalidOrder: order is not a permutation of the dimensions.
//   - ErrVolumeOverflow: the volume does not fit in an int.
//   - ErrRankMismatch: FromInts received the wrong number of components.
//
// Quick example:
//
//	tile, _ := grid.NewTile(grid.Index2{4, 3})            // rows [0,4) × cols [0,3)
//	s, _ := tile.Slice(grid.Index2{1, 0}, grid.Index2{3, 3},
//		grid.ColumnMajorOrder[grid.Index2]())
//	for off, at := range s.Enumerate() {
//		fmt.Println(off, at) // 0 (1,0), 1 (2,0), 2 (1,1), ...
//	}
//
// Complexity:
//
//   - Offset, Index, Contains: O(rank), zero allocations on success.
//   - Cursor.Next: amortized O(1), zero allocations.
package grid
