package main

import (
	"fmt"

	"github.com/katalvlaran/lvgrid/grid"
)

// point is one visited element: its slice offset and tile-global coordinate.
type point struct {
	Offset int   `json:"offset"`
	Index  []int `json:"index"`
}

// plan is a slice of fixed rank behind a rank-erased interface, so commands
// can work from []int coordinates parsed at run time.
type plan interface {
	fmt.Stringer
	Volume() int
	Walk(fn func(p point, label string) error) error
	Offset(index []int) (int, error)
	Index(offset int) (point, string, error)
	Strides() []int
}

// newPlan dispatches on the rank of r.Shape.
func newPlan(r regionSpec) (plan, error) {
	switch len(r.Shape) {
	case 1:
		return buildPlan[grid.Index1](r)
	case 2:
		return buildPlan[grid.Index2](r)
	case 3:
		return buildPlan[grid.Index3](r)
	case 4:
		return buildPlan[grid.Index4](r)
	default:
		return nil, fmt.Errorf("shape %v: %w", r.Shape, errRank)
	}
}

type rankedPlan[I grid.Coordinate[I]] struct {
	slice grid.Slice[I, grid.Tile[I]]
}

func buildPlan[I grid.Coordinate[I]](r regionSpec) (plan, error) {
	shape, err := grid.FromInts[I](r.Shape)
	if err != nil {
		return nil, fmt.Errorf("shape: %w", err)
	}
	var opts []grid.TileOption[I]
	if r.Origin != nil {
		origin, err := grid.FromInts[I](r.Origin)
		if err != nil {
			return nil, fmt.Errorf("origin: %w", err)
		}
		opts = append(opts, grid.WithOrigin(origin))
	}
	tile, err := grid.NewTile(shape, opts...)
	if err != nil {
		return nil, err
	}

	low, high, order := tile.Low(), tile.High(), grid.RowMajorOrder[I]()
	for _, c := range []struct {
		name string
		dst  *I
		src  []int
	}{
		{"low", &low, r.Low},
		{"high", &high, r.High},
		{"order", &order, r.Order},
	} {
		if c.src == nil {
			continue
		}
		if *c.dst, err = grid.FromInts[I](c.src); err != nil {
			return nil, fmt.Errorf("%s: %w", c.name, err)
		}
	}

	s, err := tile.Slice(low, high, order)
	if err != nil {
		return nil, err
	}

	return rankedPlan[I]{slice: s}, nil
}

func (p rankedPlan[I]) String() string { return p.slice.String() }

func (p rankedPlan[I]) Volume() int { return p.slice.Volume() }

func (p rankedPlan[I]) Strides() []int { return grid.Ints(p.slice.Layout().Strides()) }

func (p rankedPlan[I]) Walk(fn func(pt point, label string) error) error {
	for off, at := range p.slice.Enumerate() {
		if err := fn(point{Offset: off, Index: grid.Ints(at)}, grid.Format(at)); err != nil {
			return err
		}
	}

	return nil
}

func (p rankedPlan[I]) Offset(index []int) (int, error) {
	at, err := grid.FromInts[I](index)
	if err != nil {
		return 0, err
	}

	return p.slice.AtIndex(at)
}

func (p rankedPlan[I]) Index(offset int) (point, string, error) {
	at, err := p.slice.AtOffset(offset)
	if err != nil {
		return point{}, "", err
	}

	return point{Offset: offset, Index: grid.Ints(at)}, grid.Format(at), nil
}
