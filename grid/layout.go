// SPDX-License-Identifier: MIT

// Package grid - Layout: ordered linearization of a rectangular shape.
//
// Purpose:
//   - Map every Index in [0, shape) to a unique offset in [0, volume) and back.
//   - Fix the nesting order: order[0] varies fastest as the offset grows by one.
//   - Stay a small comparable value so Tiles and Slices can embed it by copy.
//
// Determinism & Policy:
//   - offset = Σ index[d] * strides[d]; strides follow the nesting order.
//   - Out-of-range input is an error (ErrOutOfRange), never clamped.
//
// Complexity quicksheet:
//   - NewLayout: O(rank²) validation; Offset/Index/Contains: O(rank), zero allocations.

package grid

import "fmt"

// layoutErrorf wraps an error with a uniform Layout context.
func layoutErrorf(method string, err error) error {
	return fmt.Errorf("Layout.%s: %w", method, err)
}

// Layout is a bijection between the coordinates of [0, shape) and the offsets
// of [0, volume).
//   - shape holds the extent per dimension (>= 0).
//   - order lists dimensions from fastest to slowest varying.
//   - strides[d] is the offset step of dimension d.
//
// The zero Layout is empty: volume 0, Contains always false.
type Layout[I Coordinate[I]] struct {
	shape   I   // extent per dimension
	order   I   // permutation, fastest dimension first
	strides I   // derived from shape and order
	volume  int // ∏ shape[d]
}

// NewLayout builds the layout of shape packed in the given nesting order.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape and order validation.
//
// Implementation:
//   - Stage 1: validate shape (non-negative, volume fits in int).
//   - Stage 2: validate order is a permutation of 0..rank-1.
//   - Stage 3: walk order fastest-first, assigning each dimension the running
//     product of the extents visited before it.
//
// Behavior highlights:
//   - Zero extents are legal and produce an empty layout.
//   - Strides never overflow: they are partial products of a checked volume.
//
// Errors:
//   - ErrInvalidBounds, ErrVolumeOverflow (shape), ErrInvalidOrder (order).
//
// Complexity:
//   - Time O(rank²), Space O(1).
//
// AI-Hints:
//   - Use RowMajor/ColumnMajor for the two common packings.
func NewLayout[I Coordinate[I]](shape, order I) (Layout[I], error) {
	if err := ValidateShape(shape); err != nil {
		return Layout[I]{}, layoutErrorf("NewLayout", err)
	}
	if err := ValidateOrder(order); err != nil {
		return Layout[I]{}, layoutErrorf("NewLayout", err)
	}

	var strides I
	step := 1
	for k := 0; k < order.Rank(); k++ {
		d := order.At(k)
		strides = strides.With(d, step)
		step *= shape.At(d)
	}

	return Layout[I]{shape: shape, order: order, strides: strides, volume: step}, nil
}

// RowMajor returns the layout of shape with the last dimension varying fastest.
func RowMajor[I Coordinate[I]](shape I) (Layout[I], error) {
	return NewLayout(shape, RowMajorOrder[I]())
}

// ColumnMajor returns the layout of shape with the first dimension varying fastest.
func ColumnMajor[I Coordinate[I]](shape I) (Layout[I], error) {
	return NewLayout(shape, ColumnMajorOrder[I]())
}

// RowMajorOrder returns (rank-1, ..., 1, 0).
func RowMajorOrder[I Coordinate[I]]() I {
	var o I
	n := o.Rank()
	for k := 0; k < n; k++ {
		o = o.With(k, n-1-k)
	}

	return o
}

// ColumnMajorOrder returns (0, 1, ..., rank-1).
func ColumnMajorOrder[I Coordinate[I]]() I {
	var o I
	for k := 0; k < o.Rank(); k++ {
		o = o.With(k, k)
	}

	return o
}

// Rank returns the number of dimensions.
func (l Layout[I]) Rank() int { return l.shape.Rank() }

// Shape returns the extent per dimension.
func (l Layout[I]) Shape() I { return l.shape }

// Order returns the nesting order, fastest dimension first.
func (l Layout[I]) Order() I { return l.order }

// Strides returns the offset step of each dimension.
func (l Layout[I]) Strides() I { return l.strides }

// Volume returns the number of addressable coordinates.
func (l Layout[I]) Volume() int { return l.volume }

// Contains reports whether 0 <= i[d] < shape[d] for every dimension.
// Complexity: O(rank).
func (l Layout[I]) Contains(i I) bool {
	for d := 0; d < i.Rank(); d++ {
		if v := i.At(d); v < 0 || v >= l.shape.At(d) {
			return false
		}
	}

	return true
}

// Offset linearizes i, a coordinate local to [0, shape).
// MAIN DESCRIPTION:
//   - Safe linearization; the inverse of Index.
//
// Implementation:
//   - Stage 1: bounds-check via Contains.
//   - Stage 2: Σ i[d] * strides[d].
//
// Errors:
//   - *AddressError wrapping ErrOutOfRange when i is outside [0, shape).
//
// Complexity:
//   - Time O(rank), Space O(1); no allocation on success.
func (l Layout[I]) Offset(i I) (int, error) {
	if !l.Contains(i) {
		var zero I
		return 0, indexError("Layout.Offset", i, zero, l.shape)
	}

	return l.offset(i), nil
}

// Index decodes an offset in [0, volume) into its local coordinate.
// MAIN DESCRIPTION:
//   - Safe delinearization; the inverse of Offset.
//
// Implementation:
//   - Stage 1: range-check offset.
//   - Stage 2: peel dimensions slowest-first: i[d] = o / strides[d], o %= strides[d].
//
// Errors:
//   - *AddressError wrapping ErrOutOfRange when offset is outside [0, volume).
//
// Complexity:
//   - Time O(rank), Space O(1); no allocation on success.
func (l Layout[I]) Index(offset int) (I, error) {
	if offset < 0 || offset >= l.volume {
		var zero I
		return zero, offsetError("Layout.Index", offset, l.volume)
	}

	return l.index(offset), nil
}

// Reshape returns a layout with the same nesting order over a new shape.
// Errors: as NewLayout.
func (l Layout[I]) Reshape(shape I) (Layout[I], error) {
	if err := ValidateOrder(l.order); err != nil {
		// Zero Layout: there is no order to keep.
		return Layout[I]{}, layoutErrorf("Reshape", err)
	}

	return NewLayout(shape, l.order)
}

// String renders the layout as "Layout{shape (4,3), order (1,0)}".
func (l Layout[I]) String() string {
	return "Layout{shape " + Format(l.shape) + ", order " + Format(l.order) + "}"
}

// offset is Offset without the bounds check; i must be inside [0, shape).
func (l Layout[I]) offset(i I) int {
	o := 0
	for d := 0; d < i.Rank(); d++ {
		o += i.At(d) * l.strides.At(d)
	}

	return o
}

// index is Index without the range check; offset must be inside [0, volume),
// which also guarantees every stride is positive.
func (l Layout[I]) index(offset int) I {
	var i I
	for k := l.order.Rank() - 1; k >= 0; k-- {
		d := l.order.At(k)
		s := l.strides.At(d)
		i = i.With(d, offset/s)
		offset %= s
	}

	return i
}
