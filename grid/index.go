// SPDX-License-Identifier: MIT

package grid

import (
	"math"
	"strconv"
	"strings"
)

// Add returns the component-wise sum a + b.
func Add[I Coordinate[I]](a, b I) I {
	var r I
	for d := 0; d < r.Rank(); d++ {
		r = r.With(d, a.At(d)+b.At(d))
	}

	return r
}

// Sub returns the component-wise difference a - b; Sub(high, low) is the
// extent of [low, high).
func Sub[I Coordinate[I]](a, b I) I {
	var r I
	for d := 0; d < r.Rank(); d++ {
		r = r.With(d, a.At(d)-b.At(d))
	}

	return r
}

// LessEq reports whether a[d] <= b[d] for every dimension d.
func LessEq[I Coordinate[I]](a, b I) bool {
	for d := 0; d < a.Rank(); d++ {
		if a.At(d) > b.At(d) {
			return false
		}
	}

	return true
}

// Less reports whether a[d] < b[d] for every dimension d.
// Note that Less is a component-wise partial order, not a strict total order:
// Less(a, b) is false for (0,5) and (1,5).
func Less[I Coordinate[I]](a, b I) bool {
	for d := 0; d < a.Rank(); d++ {
		if a.At(d) >= b.At(d) {
			return false
		}
	}

	return true
}

// Compare orders a and b lexicographically (dimension 0 first) and returns
// -1, 0 or +1. It is a total order suitable for slices.SortFunc.
func Compare[I Coordinate[I]](a, b I) int {
	for d := 0; d < a.Rank(); d++ {
		switch x, y := a.At(d), b.At(d); {
		case x < y:
			return -1
		case x > y:
			return 1
		}
	}

	return 0
}

// Fill returns the coordinate with every component set to v.
func Fill[I Coordinate[I]](v int) I {
	var r I
	for d := 0; d < r.Rank(); d++ {
		r = r.With(d, v)
	}

	return r
}

// Volume returns ∏ extent[d].
// A negative component yields ErrInvalidBounds. ErrVolumeOverflow is returned
// when the product of the non-zero components does not fit in an int, even if
// some other component is zero: strides are built from those partial products.
func Volume[I Coordinate[I]](extent I) (int, error) {
	nz, empty := 1, false
	for d := 0; d < extent.Rank(); d++ {
		e := extent.At(d)
		switch {
		case e < 0:
			return 0, ErrInvalidBounds
		case e == 0:
			empty = true
		case nz > math.MaxInt/e:
			return 0, ErrVolumeOverflow
		default:
			nz *= e
		}
	}
	if empty {
		return 0, nil
	}

	return nz, nil
}

// FromInts converts a component list into I.
// Returns ErrRankMismatch when len(v) differs from the rank of I.
func FromInts[I Coordinate[I]](v []int) (I, error) {
	var r I
	if len(v) != r.Rank() {
		return r, ErrRankMismatch
	}
	for d, c := range v {
		r = r.With(d, c)
	}

	return r, nil
}

// Ints returns the components of i as a new slice.
func Ints[I Coordinate[I]](i I) []int {
	out := make([]int, i.Rank())
	for d := range out {
		out[d] = i.At(d)
	}

	return out
}

// Format renders i as "(c0,c1,...)".
func Format[I Coordinate[I]](i I) string {
	var b strings.Builder
	b.WriteByte('(')
	for d := 0; d < i.Rank(); d++ {
		if d > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(i.At(d)))
	}
	b.WriteByte(')')

	return b.String()
}
