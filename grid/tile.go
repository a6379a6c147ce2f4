// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"iter"
)

// tileErrorf wraps an error with a uniform Tile context.
func tileErrorf(method string, err error) error {
	return fmt.Errorf("Tile.%s: %w", method, err)
}

// Tile is the full rectangular domain [low, high) of a grid together with its
// default Layout, sized to high - low. A Tile is immutable and cheap to copy;
// copies share nothing.
type Tile[I Coordinate[I]] struct {
	low    I
	high   I
	layout Layout[I]
}

// NewTile describes the domain [origin, origin+shape), packed row-major unless
// WithOrder/WithColumnMajor says otherwise. The origin defaults to zero.
//
// Errors: ErrInvalidBounds (negative extent), ErrInvalidOrder,
// ErrVolumeOverflow (volume or origin+shape does not fit in an int).
// Complexity: O(rank²).
func NewTile[I Coordinate[I]](shape I, opts ...TileOption[I]) (Tile[I], error) {
	o := gatherTileOptions(opts...)
	layout, err := NewLayout(shape, o.order)
	if err != nil {
		return Tile[I]{}, tileErrorf("NewTile", err)
	}
	if err = validateTranslate(o.origin, shape); err != nil {
		return Tile[I]{}, tileErrorf("NewTile", err)
	}

	return Tile[I]{low: o.origin, high: Add(o.origin, shape), layout: layout}, nil
}

// Low returns the inclusive low corner.
func (t Tile[I]) Low() I { return t.low }

// High returns the exclusive high corner.
func (t Tile[I]) High() I { return t.high }

// Shape returns high - low.
func (t Tile[I]) Shape() I { return t.layout.shape }

// Layout returns the tile's default layout.
func (t Tile[I]) Layout() Layout[I] { return t.layout }

// Volume returns the number of coordinates in the tile.
func (t Tile[I]) Volume() int { return t.layout.volume }

// Contains reports whether low <= i < high component-wise.
func (t Tile[I]) Contains(i I) bool { return LessEq(t.low, i) && Less(i, t.high) }

// Offset returns the default-layout offset of the tile-global coordinate i.
// Errors: *AddressError wrapping ErrOutOfRange.
func (t Tile[I]) Offset(i I) (int, error) {
	if !t.Contains(i) {
		return 0, indexError("Tile.Offset", i, t.low, t.high)
	}

	return t.layout.offset(Sub(i, t.low)), nil
}

// Index returns the tile-global coordinate at a default-layout offset.
// Errors: *AddressError wrapping ErrOutOfRange.
func (t Tile[I]) Index(offset int) (I, error) {
	if offset < 0 || offset >= t.layout.volume {
		var zero I
		return zero, offsetError("Tile.Index", offset, t.layout.volume)
	}

	return Add(t.layout.index(offset), t.low), nil
}

// Cursor returns an iterator over the whole tile in default-layout order.
func (t Tile[I]) Cursor() Cursor[I] { return newCursor(t.layout, t.low) }

// All yields every tile-global coordinate in default-layout order.
func (t Tile[I]) All() iter.Seq[I] { return seq(t.layout, t.low) }

// Enumerate yields (offset, coordinate) pairs in default-layout order.
func (t Tile[I]) Enumerate() iter.Seq2[int, I] { return enumerate(t.layout, t.low) }

// Slice restricts the tile to [low, high) walked in the given nesting order.
// It builds NewLayout(high-low, order) and delegates to NewSlice.
func (t Tile[I]) Slice(low, high, order I) (Slice[I, Tile[I]], error) {
	if err := ValidateBounds(low, high); err != nil {
		return Slice[I, Tile[I]]{}, tileErrorf("Slice", err)
	}
	layout, err := NewLayout(Sub(high, low), order)
	if err != nil {
		return Slice[I, Tile[I]]{}, tileErrorf("Slice", err)
	}

	return NewSlice(t, low, high, layout)
}

// Reslice walks the whole tile in a different nesting order.
func (t Tile[I]) Reslice(order I) (Slice[I, Tile[I]], error) {
	layout, err := NewLayout(t.layout.shape, order)
	if err != nil {
		return Slice[I, Tile[I]]{}, tileErrorf("Reslice", err)
	}

	return Reslice(t, layout)
}

// String renders the tile as "Tile[(0,0), (4,3)) Layout{...}".
func (t Tile[I]) String() string {
	return "Tile[" + Format(t.low) + ", " + Format(t.high) + ") " + t.layout.String()
}
