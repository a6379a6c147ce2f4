// Package gridgraph treats a 2D grid of cells as a graph, enabling
// component analysis and minimal-cost “island” expansions.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//   - Cells are addressed through a row-major grid.Tile[grid.Index2] with
//     coordinates (y, x); offsets are y*Width + x.
//   - Identifies connected components (“islands”) of cells with value ≥ LandThreshold,
//     over the whole grid or inside a window walked as a grid.Slice.
//   - Computes minimal conversions (0-1 BFS) to connect two island sets.
//
// Why:
//
//   - Game maps: contiguous land detection, optimal bridging.
//   - Resource planning: connect facilities with minimal upgrades.
//   - Topology analysis: count lakes, islands, and heterogeneous regions.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ComponentsIn:        O(W×H + w×h×d), Memory: O(W×H).
//   - ExpandIsland:        O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
//   - grid.ErrOutOfRange, grid.ErrInvalidBounds: cell lookups and windows
//     outside the grid, passed through from package grid.
package gridgraph
