// SPDX-License-Identifier: MIT
// Package grid: sentinel error set and the structured address error.
// All constructors and lookups return these sentinels (possibly wrapped with a
// call-site tag); tests and callers MUST match them via errors.Is.
// Nothing in this package panics on user input.

package grid

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrInvalidBounds is returned for a negative extent, for low[d] > high[d],
	// or when a slice does not fit inside its tile.
	ErrInvalidBounds = errors.New("grid: invalid bounds")

	// ErrOutOfRange indicates an index outside [low, high) or an offset outside
	// [0, volume). Lookups return it wrapped in *AddressError.
	ErrOutOfRange = errors.New("grid: address out of range")

	// ErrIncompatibleLayout indicates a layout whose shape differs from the
	// extent (high - low) of the region it is attached to.
	ErrIncompatibleLayout = errors.New("grid: layout shape does not match region extent")

	// ErrInvalidOrder indicates a nesting order that is not a permutation of
	// 0..rank-1.
	ErrInvalidOrder = errors.New("grid: order is not a permutation of the dimensions")

	// ErrVolumeOverflow indicates that the product of the extents (or a
	// translated bound) does not fit in an int.
	ErrVolumeOverflow = errors.New("grid: volume overflows int")

	// ErrRankMismatch indicates a component list whose length differs from the
	// rank of the target coordinate type.
	ErrRankMismatch = errors.New("grid: coordinate rank mismatch")
)

// AddressError describes a failed coordinate or offset lookup.
// Input and Domain are pre-formatted so the error carries no generic state;
// they are only rendered on the failure path.
//
// AddressError implements slog.LogValuer, which is the seam for callers that
// want to report failures on a structured log channel:
//
//	if _, err := s.Offset(at); err != nil {
//		logger.Error("lookup failed", "addr", err)
//	}
type AddressError struct {
	Op     string // method that failed, e.g. "Slice.Offset"
	Input  string // offending index "(3,0)" or offset "7"
	Domain string // valid domain "[(1,0), (3,3))" or "[0, 6)"
	Err    error  // sentinel, ErrOutOfRange
}

var _ slog.LogValuer = (*AddressError)(nil)

// Error renders "Op(Input) outside Domain: Err".
func (e *AddressError) Error() string {
	return fmt.Sprintf("%s(%s) outside %s: %v", e.Op, e.Input, e.Domain, e.Err)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *AddressError) Unwrap() error { return e.Err }

// LogValue groups the lookup details as structured attributes.
func (e *AddressError) LogValue() slog.Value {
	msg := ""
	if e.Err != nil {
		msg = e.Err.Error()
	}

	return slog.GroupValue(
		slog.String("op", e.Op),
		slog.String("input", e.Input),
		slog.String("domain", e.Domain),
		slog.String("err", msg),
	)
}

// indexError builds the failure for an index outside [low, high).
func indexError[I Coordinate[I]](op string, at, low, high I) error {
	return &AddressError{
		Op:     op,
		Input:  Format(at),
		Domain: "[" + Format(low) + ", " + Format(high) + ")",
		Err:    ErrOutOfRange,
	}
}

// offsetError builds the failure for an offset outside [0, volume).
func offsetError(op string, offset, volume int) error {
	return &AddressError{
		Op:     op,
		Input:  fmt.Sprintf("%d", offset),
		Domain: fmt.Sprintf("[0, %d)", volume),
		Err:    ErrOutOfRange,
	}
}
