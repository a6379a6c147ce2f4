// SPDX-License-Identifier: MIT

// Package grid - Slice: a bounded, layout-tagged view over part of a tile.
//
// Purpose:
//   - Restrict a tile to a sub-rectangle [low, high) and walk it under a Layout
//     that may differ from the tile's own.
//   - Accept and return tile-global coordinates; translate by low internally.
//   - Own private copies of the tile, bounds and layout: a Slice is never a
//     reference into the Tile, so it is safe to share and to store by value.
//
// Construction policy:
//   - low[d] > high[d] is an error (ErrInvalidBounds), not an empty region.
//   - [low, high) must lie inside [tile.Low(), tile.High()) (ErrInvalidBounds).
//   - layout.Shape() must equal high - low (ErrIncompatibleLayout).
//   - low == high in any dimension is legal: volume 0, empty iteration.

package grid

import (
	"fmt"
	"iter"
)

// sliceErrorf wraps an error with a uniform Slice constructor context.
func sliceErrorf(ctor string, err error) error {
	return fmt.Errorf("%s: %w", ctor, err)
}

// Slice is the sub-rectangle [low, high) of a tile-like T, addressed through
// its own Layout. T is kept by value.
type Slice[I Coordinate[I], T Tiler[I]] struct {
	tile   T         // private copy of the originating tile descriptor
	low    I         // inclusive low corner, tile-global
	high   I         // exclusive high corner, tile-global
	layout Layout[I] // shape == high - low
}

// Reslice views the entire tile [tile.Low(), tile.High()) under a different layout.
// It is exactly NewSlice(tile, tile.Low(), tile.High(), layout).
func Reslice[I Coordinate[I], T Tiler[I]](tile T, layout Layout[I]) (Slice[I, T], error) {
	return newSlice("Reslice", tile, tile.Low(), tile.High(), layout)
}

// NewSlice restricts tile to [low, high) and visits it with layout.
// MAIN DESCRIPTION:
//   - Validated constructor; the Slice is fully formed or not built at all.
//
// Implementation:
//   - Stage 1: low <= high (ValidateBounds).
//   - Stage 2: [low, high) inside the tile (ValidateWithin).
//   - Stage 3: layout shape == high - low (ValidateLayout).
//
// Errors:
//   - ErrInvalidBounds, ErrVolumeOverflow, ErrIncompatibleLayout.
//
// Complexity:
//   - Time O(rank), Space O(1) beyond the descriptor copy.
func NewSlice[I Coordinate[I], T Tiler[I]](tile T, low, high I, layout Layout[I]) (Slice[I, T], error) {
	return newSlice("NewSlice", tile, low, high, layout)
}

func newSlice[I Coordinate[I], T Tiler[I]](ctor string, tile T, low, high I, layout Layout[I]) (Slice[I, T], error) {
	if err := ValidateBounds(low, high); err != nil {
		return Slice[I, T]{}, sliceErrorf(ctor, err)
	}
	if err := ValidateWithin(low, high, tile.Low(), tile.High()); err != nil {
		return Slice[I, T]{}, sliceErrorf(ctor, err)
	}
	if err := ValidateLayout(layout, Sub(high, low)); err != nil {
		return Slice[I, T]{}, sliceErrorf(ctor, err)
	}

	return Slice[I, T]{tile: tile, low: low, high: high, layout: layout}, nil
}

// Tile returns the copy of the originating tile.
func (s Slice[I, T]) Tile() T { return s.tile }

// Low returns the inclusive low corner.
func (s Slice[I, T]) Low() I { return s.low }

// High returns the exclusive high corner.
func (s Slice[I, T]) High() I { return s.high }

// Layout returns the slice layout.
func (s Slice[I, T]) Layout() Layout[I] { return s.layout }

// Shape returns high - low.
func (s Slice[I, T]) Shape() I { return s.layout.shape }

// Volume returns ∏ (high[d] - low[d]).
func (s Slice[I, T]) Volume() int { return s.layout.volume }

// Contains reports whether low <= i < high component-wise.
func (s Slice[I, T]) Contains(i I) bool { return LessEq(s.low, i) && Less(i, s.high) }

// Offset returns the layout offset of the tile-global coordinate i.
// The coordinate is translated to the slice origin (i - low) first.
//
// Errors: *AddressError wrapping ErrOutOfRange when i is outside [low, high).
// Complexity: O(rank), no allocation on success.
func (s Slice[I, T]) Offset(i I) (int, error) {
	if !s.Contains(i) {
		return 0, indexError("Slice.Offset", i, s.low, s.high)
	}

	return s.layout.offset(Sub(i, s.low)), nil
}

// Index returns the tile-global coordinate at offset: layout.Index(offset) + low.
//
// Errors: *AddressError wrapping ErrOutOfRange when offset is outside [0, volume).
// Complexity: O(rank), no allocation on success.
func (s Slice[I, T]) Index(offset int) (I, error) {
	if offset < 0 || offset >= s.layout.volume {
		var zero I
		return zero, offsetError("Slice.Index", offset, s.layout.volume)
	}

	return Add(s.layout.index(offset), s.low), nil
}

// AtIndex is Offset under the name of its call shape: slice[index] -> offset.
func (s Slice[I, T]) AtIndex(i I) (int, error) { return s.Offset(i) }

// AtOffset is Index under the name of its call shape: slice[offset] -> index.
func (s Slice[I, T]) AtOffset(offset int) (I, error) { return s.Index(offset) }

// Cursor returns a fresh iterator positioned before the first coordinate.
func (s Slice[I, T]) Cursor() Cursor[I] { return newCursor(s.layout, s.low) }

// All yields every tile-global coordinate of the slice exactly once, in layout
// order. Each range over the returned sequence starts again from offset 0.
func (s Slice[I, T]) All() iter.Seq[I] { return seq(s.layout, s.low) }

// Enumerate yields (offset, coordinate) pairs; offsets run 0..Volume()-1.
func (s Slice[I, T]) Enumerate() iter.Seq2[int, I] { return enumerate(s.layout, s.low) }

// String renders the slice as "Slice[(1,0), (3,3)) Layout{...}".
func (s Slice[I, T]) String() string {
	return "Slice[" + Format(s.low) + ", " + Format(s.high) + ") " + s.layout.String()
}
