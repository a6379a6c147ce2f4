// SPDX-License-Identifier: MIT

package grid

import "iter"

// Cursor walks every coordinate of a region in layout order.
// It is the iterator type of Tile and Slice: obtain one with Cursor(), then
//
//	c := s.Cursor()
//	for c.Next() {
//		use(c.Offset(), c.Index())
//	}
//
// Next advances an odometer along the nesting order, so a full walk costs O(1)
// amortized per step with no division and no allocation. A Cursor is a small
// mutable value owned by one goroutine; the region it walks is not affected.
type Cursor[I Coordinate[I]] struct {
	layout Layout[I]
	origin I   // added to local coordinates to produce Index
	local  I   // coordinate inside [0, shape)
	offset int // -1 before the first Next, volume after the last
}

func newCursor[I Coordinate[I]](layout Layout[I], origin I) Cursor[I] {
	return Cursor[I]{layout: layout, origin: origin, offset: -1}
}

// Next moves to the following coordinate and reports whether there is one.
// Once Next returns false it keeps returning false until Reset.
func (c *Cursor[I]) Next() bool {
	switch {
	case c.offset+1 >= c.layout.volume:
		c.offset = c.layout.volume
		return false
	case c.offset < 0:
		var zero I
		c.local = zero
		c.offset = 0
		return true
	}

	// Increment the fastest dimension; carry into slower ones on wrap.
	order := c.layout.order
	for k := 0; k < order.Rank(); k++ {
		d := order.At(k)
		if v := c.local.At(d) + 1; v < c.layout.shape.At(d) {
			c.local = c.local.With(d, v)
			break
		}
		c.local = c.local.With(d, 0)
	}
	c.offset++

	return true
}

// Offset returns the layout offset of the current coordinate.
// Valid only after Next returned true.
func (c *Cursor[I]) Offset() int { return c.offset }

// Local returns the current coordinate relative to the region's low corner.
func (c *Cursor[I]) Local() I { return c.local }

// Index returns the current coordinate in tile-global terms.
func (c *Cursor[I]) Index() I { return Add(c.origin, c.local) }

// Reset rewinds the cursor to before the first coordinate.
func (c *Cursor[I]) Reset() {
	var zero I
	c.local = zero
	c.offset = -1
}

// seq adapts a fresh cursor to iter.Seq; every range restarts from offset 0.
func seq[I Coordinate[I]](layout Layout[I], origin I) iter.Seq[I] {
	return func(yield func(I) bool) {
		c := newCursor(layout, origin)
		for c.Next() {
			if !yield(c.Index()) {
				return
			}
		}
	}
}

// enumerate is seq with the layout offset as the key.
func enumerate[I Coordinate[I]](layout Layout[I], origin I) iter.Seq2[int, I] {
	return func(yield func(int, I) bool) {
		c := newCursor(layout, origin)
		for c.Next() {
			if !yield(c.offset, c.Index()) {
				return
			}
		}
	}
}
