package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lvgrid/grid"
)

// window is the region a component search is confined to.
type window = grid.Slice[grid.Index2, grid.Tile[grid.Index2]]

// ConnectedComponents finds all contiguous regions (“islands”) of land cells
// (CellValues[y][x] ≥ LandThreshold), according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell offsets
// (row-major) in BFS discovery order. Components are ordered by their first
// cell in row-major order.
//
// To convert an offset back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	whole, err := grid.Reslice(gg.tile, gg.tile.Layout())
	if err != nil {
		return nil // unreachable: a tile layout always fits the tile
	}

	return gg.components(whole)
}

// ComponentsIn is ConnectedComponents restricted to the window [low, high) of
// (y, x) coordinates. Cells outside the window are treated as absent, so an
// island crossing the window edge may split into several components.
//
// Errors: grid.ErrInvalidBounds when low > high or the window leaves the grid.
func (gg *GridGraph) ComponentsIn(low, high grid.Index2) ([][]int, error) {
	w, err := gg.tile.Slice(low, high, grid.RowMajorOrder[grid.Index2]())
	if err != nil {
		return nil, fmt.Errorf("gridgraph: ComponentsIn: %w", err)
	}

	return gg.components(w), nil
}

func (gg *GridGraph) components(w window) [][]int {
	seen := make([]bool, gg.tile.Volume())
	var comps [][]int

	for start := range w.All() {
		if !gg.land(start) {
			continue // water
		}
		i0 := gg.offset(start)
		if seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []grid.Index2{start}
		seen[i0] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, gg.offset(u))
			for _, d := range gg.steps {
				v := grid.Add(u, d)
				if !w.Contains(v) || !gg.land(v) {
					continue
				}
				if vi := gg.offset(v); !seen[vi] {
					seen[vi] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}
