package gridgraph

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/lvgrid/grid"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	tile, err := grid.NewTile(grid.Index2{h, w})
	if err != nil {
		return nil, fmt.Errorf("gridgraph: NewGridGraph: %w", err)
	}

	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := range cells {
		cells[y] = slices.Clone(values[y])
	}
	steps := conn4Steps
	if opts.Conn == Conn8 {
		steps = conn8Steps
	}

	return &GridGraph{
		Width:         w,
		Height:        h,
		CellValues:    cells,
		Conn:          opts.Conn,
		LandThreshold: opts.LandThreshold,
		tile:          tile,
		steps:         steps,
	}, nil
}

// From2D builds a GridGraph with the default land threshold and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// Tile returns the row-major (y, x) tile addressing the cells.
func (gg *GridGraph) Tile() grid.Tile[grid.Index2] { return gg.tile }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return gg.tile.Contains(grid.Index2{y, x})
}

// NeighborOffsets returns the (dy, dx) neighbor steps for gg.Conn.
// The result is a copy.
func (gg *GridGraph) NeighborOffsets() []grid.Index2 {
	return slices.Clone(gg.steps)
}

// Index maps (x,y) to its row-major offset y*Width + x.
// Errors: grid.ErrOutOfRange (as *grid.AddressError) outside the grid.
func (gg *GridGraph) Index(x, y int) (int, error) {
	return gg.tile.Offset(grid.Index2{y, x})
}

// Coordinate converts a row-major offset back to (x,y).
// Errors: grid.ErrOutOfRange outside [0, Width×Height).
func (gg *GridGraph) Coordinate(idx int) (x, y int, err error) {
	at, err := gg.tile.Index(idx)
	if err != nil {
		return 0, 0, err
	}

	return at[1], at[0], nil
}

// Value returns CellValues[y][x].
// Errors: grid.ErrOutOfRange outside the grid.
func (gg *GridGraph) Value(x, y int) (int, error) {
	if _, err := gg.Index(x, y); err != nil {
		return 0, err
	}

	return gg.CellValues[y][x], nil
}

// Cells yields every cell in row-major order.
func (gg *GridGraph) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for at := range gg.tile.All() {
			if !yield(Cell{X: at[1], Y: at[0], Value: gg.value(at)}) {
				return
			}
		}
	}
}

// value reads the cell at tile coordinate (y, x); at must be in bounds.
func (gg *GridGraph) value(at grid.Index2) int { return gg.CellValues[at[0]][at[1]] }

// land reports whether the in-bounds cell at is land.
func (gg *GridGraph) land(at grid.Index2) bool { return gg.value(at) >= gg.LandThreshold }

// offset is Offset for a coordinate already known to be inside the tile.
func (gg *GridGraph) offset(at grid.Index2) int {
	o, _ := gg.tile.Offset(at)
	return o
}
