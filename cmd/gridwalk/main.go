// Command gridwalk describes a tile and a slice of it from flags or a YAML
// region file and prints offsets and coordinates in layout order.
//
// Usage:
//
//	gridwalk walk --shape 4,3 --low 1,0 --high 3,3
//	gridwalk offset 2,1 --shape 4,3 --low 1,0 --high 3,3 --order 0,1
//	gridwalk index 4 --file region.yaml --json
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gridwalk:", err)
		os.Exit(1)
	}
}
