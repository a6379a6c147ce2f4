// SPDX-License-Identifier: MIT

package grid

// Coordinate is the capability contract of an index type: a comparable,
// fixed-rank tuple of ints. Rank must not depend on the value.
//
// With returns a copy with component d replaced; it never mutates the
// receiver. At and With panic when d is outside [0, Rank()), like array
// indexing does; that is a programmer error, not a runtime condition.
type Coordinate[I any] interface {
	comparable
	Rank() int
	At(d int) int
	With(d, v int) I
}

// Tiler is the contract a tile-like type satisfies to be sliced.
// The index type is I, the layout type is Layout[I], and the iterator type used
// for whole-tile walks is Cursor[I].
type Tiler[I Coordinate[I]] interface {
	Low() I
	High() I
	Layout() Layout[I]
}

// Index1 is a rank-1 coordinate.
type Index1 [1]int

// Index2 is a rank-2 coordinate, e.g. (row, col).
type Index2 [2]int

// Index3 is a rank-3 coordinate, e.g. (z, y, x) of a voxel.
type Index3 [3]int

// Index4 is a rank-4 coordinate.
type Index4 [4]int

// Rank returns 1.
func (i Index1) Rank() int { return len(i) }

// At returns component d.
func (i Index1) At(d int) int { return i[d] }

// With returns a copy of i with component d set to v.
func (i Index1) With(d, v int) Index1 {
	i[d] = v
	return i
}

// String renders i as "(c0,c1,...)".
func (i Index1) String() string { return Format(i) }

// Rank returns 2.
func (i Index2) Rank() int { return len(i) }

// At returns component d.
func (i Index2) At(d int) int { return i[d] }

// With returns a copy of i with component d set to v.
func (i Index2) With(d, v int) Index2 {
	i[d] = v
	return i
}

// String renders i as "(c0,c1,...)".
func (i Index2) String() string { return Format(i) }

// Rank returns 3.
func (i Index3) Rank() int { return len(i) }

// At returns component d.
func (i Index3) At(d int) int { return i[d] }

// With returns a copy of i with component d set to v.
func (i Index3) With(d, v int) Index3 {
	i[d] = v
	return i
}

// String renders i as "(c0,c1,...)".
func (i Index3) String() string { return Format(i) }

// Rank returns 4.
func (i Index4) Rank() int { return len(i) }

// At returns component d.
func (i Index4) At(d int) int { return i[d] }

// With returns a copy of i with component d set to v.
func (i Index4) With(d, v int) Index4 {
	i[d] = v
	return i
}

// String renders i as "(c0,c1,...)".
func (i Index4) String() string { return Format(i) }

// Compile-time contract checks.
var (
	_ Tiler[Index1] = Tile[Index1]{}
	_ Tiler[Index2] = Tile[Index2]{}
	_ Tiler[Index3] = Tile[Index3]{}
	_ Tiler[Index4] = Tile[Index4]{}
)
