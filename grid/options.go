// SPDX-License-Identifier: MIT

// Package grid: functional configuration for Tile construction.
//   - TileOption / tileOptions (functional options with internal state),
//   - documented defaults: origin at zero, row-major order,
//   - gatherTileOptions helper that applies setters in order.
//
// Options never validate by themselves; NewTile validates the resolved state
// and reports errors instead of panicking, since origins and orders usually
// come from user input.
package grid

// TileOption mutates internal tile options. Later options win.
type TileOption[I Coordinate[I]] func(*tileOptions[I])

// tileOptions stores the effective configuration after applying TileOption setters.
type tileOptions[I Coordinate[I]] struct {
	origin I // low corner of the tile; zero by default
	order  I // nesting order of the default layout; RowMajorOrder by default
}

// WithOrigin places the low corner of the tile at origin; high becomes origin + shape.
func WithOrigin[I Coordinate[I]](origin I) TileOption[I] {
	return func(o *tileOptions[I]) { o.origin = origin }
}

// WithOrder sets the nesting order of the tile's default layout
// (fastest dimension first). NewTile rejects non-permutations with ErrInvalidOrder.
func WithOrder[I Coordinate[I]](order I) TileOption[I] {
	return func(o *tileOptions[I]) { o.order = order }
}

// WithColumnMajor is WithOrder(ColumnMajorOrder[I]()).
func WithColumnMajor[I Coordinate[I]]() TileOption[I] {
	return WithOrder(ColumnMajorOrder[I]())
}

// gatherTileOptions resolves defaults and applies setters in order; nil setters are skipped.
func gatherTileOptions[I Coordinate[I]](opts ...TileOption[I]) tileOptions[I] {
	o := tileOptions[I]{order: RowMajorOrder[I]()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
