// SPDX-License-Identifier: MIT
// Package: grid
//
// Purpose:
//   - Provide a single, canonical source of truth for bound/order/layout checks.
//   - Keep constructors minimal by delegating validation here.
//   - Return sentinel errors wrapped with the validator tag so call sites can
//     add their own tag on top; errors.Is always reaches the sentinel.
//
// Determinism & Performance:
//   - All checks are pure, O(rank) (ValidateOrder is O(rank²)) and allocate
//     nothing on success.

package grid

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShape ensures every extent is non-negative and the volume fits in an int.
//
// Errors: ErrInvalidBounds, ErrVolumeOverflow.
// Complexity: O(rank).
func ValidateShape[I Coordinate[I]](shape I) error {
	for d := 0; d < shape.Rank(); d++ {
		if shape.At(d) < 0 {
			return fmt.Errorf("ValidateShape: dim %d extent %d: %w", d, shape.At(d), ErrInvalidBounds)
		}
	}
	if _, err := Volume(shape); err != nil {
		return validatorErrorf("ValidateShape", err)
	}

	return nil
}

// ValidateOrder ensures order is a permutation of 0..rank-1.
//
// Errors: ErrInvalidOrder.
// Complexity: O(rank²), no allocation; ranks are small.
func ValidateOrder[I Coordinate[I]](order I) error {
	n := order.Rank()
	for k := 0; k < n; k++ {
		d := order.At(k)
		if d < 0 || d >= n {
			return fmt.Errorf("ValidateOrder: order[%d]=%d: %w", k, d, ErrInvalidOrder)
		}
		for j := 0; j < k; j++ {
			if order.At(j) == d {
				return fmt.Errorf("ValidateOrder: dimension %d repeated: %w", d, ErrInvalidOrder)
			}
		}
	}

	return nil
}

// ValidateBounds ensures low[d] <= high[d] for every dimension.
// low == high is legal and describes an empty region.
//
// Errors: ErrInvalidBounds, ErrVolumeOverflow when high - low overflows.
// Complexity: O(rank).
func ValidateBounds[I Coordinate[I]](low, high I) error {
	for d := 0; d < low.Rank(); d++ {
		lo, hi := low.At(d), high.At(d)
		if lo > hi {
			return fmt.Errorf("ValidateBounds: dim %d low %d > high %d: %w", d, lo, hi, ErrInvalidBounds)
		}
		if lo < 0 && hi > math.MaxInt+lo {
			return fmt.Errorf("ValidateBounds: dim %d extent: %w", d, ErrVolumeOverflow)
		}
	}

	return nil
}

// ValidateWithin ensures [low, high) lies inside [outerLow, outerHigh).
// Assumes both boxes already passed ValidateBounds.
//
// Errors: ErrInvalidBounds.
// Complexity: O(rank).
func ValidateWithin[I Coordinate[I]](low, high, outerLow, outerHigh I) error {
	if !LessEq(outerLow, low) || !LessEq(high, outerHigh) {
		return fmt.Errorf("ValidateWithin: [%s, %s) not inside [%s, %s): %w",
			Format(low), Format(high), Format(outerLow), Format(outerHigh), ErrInvalidBounds)
	}

	return nil
}

// ValidateLayout ensures the layout shape equals the region extent.
//
// Errors: ErrIncompatibleLayout.
// Complexity: O(rank).
func ValidateLayout[I Coordinate[I]](layout Layout[I], extent I) error {
	if layout.shape != extent {
		return fmt.Errorf("ValidateLayout: layout shape %s, extent %s: %w",
			Format(layout.shape), Format(extent), ErrIncompatibleLayout)
	}

	return nil
}

// validateTranslate ensures origin + shape does not overflow.
func validateTranslate[I Coordinate[I]](origin, shape I) error {
	for d := 0; d < origin.Rank(); d++ {
		if origin.At(d) > math.MaxInt-shape.At(d) {
			return fmt.Errorf("validateTranslate: dim %d: %w", d, ErrVolumeOverflow)
		}
	}

	return nil
}
