package grid_test

import (
	"slices"
	"sync"
	"testing"

	"github.com/katalvlaran/lvgrid/grid"
	"github.com/stretchr/testify/require"
)

// TestSliceConcurrentReaders shares one Slice across goroutines; each walks it
// with its own cursor and must observe the same sequence. Run with -race.
func TestSliceConcurrentReaders(t *testing.T) {
	tile, err := grid.NewTile(grid.Index3{6, 5, 4})
	require.NoError(t, err)
	s, err := tile.Slice(grid.Index3{1, 1, 0}, grid.Index3{5, 4, 4}, grid.Index3{1, 0, 2})
	require.NoError(t, err)
	want := slices.Collect(s.All())

	const workers = 8
	results := make([][]grid.Index3, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			got := make([]grid.Index3, 0, s.Volume())
			for off, at := range s.Enumerate() {
				back, err := s.Offset(at)
				if err != nil || back != off {
					return
				}
				got = append(got, at)
			}
			results[w] = got
		}(w)
	}
	wg.Wait()

	for w, got := range results {
		require.Equal(t, want, got, "worker %d", w)
	}
}
