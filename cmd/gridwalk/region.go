package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	errNoShape = errors.New("shape is required (--shape or file)")
	errRank    = errors.New("rank must be between 1 and 4")
)

// regionSpec is the tile and slice description shared by flags and files:
//
//	shape: [4, 3]
//	origin: [0, 0]
//	low: [1, 0]
//	high: [3, 3]
//	order: [1, 0]   # fastest dimension first
type regionSpec struct {
	Shape  []int `yaml:"shape"`
	Origin []int `yaml:"origin,omitempty"`
	Low    []int `yaml:"low,omitempty"`
	High   []int `yaml:"high,omitempty"`
	Order  []int `yaml:"order,omitempty"`
}

// loadRegion decodes a YAML region file; unknown keys are rejected.
func loadRegion(path string) (regionSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return regionSpec{}, fmt.Errorf("open region file: %w", err)
	}
	defer f.Close()

	var r regionSpec
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&r); err != nil {
		return regionSpec{}, fmt.Errorf("decode region file %s: %w", path, err)
	}

	return r, nil
}

// resolveRegion merges the region file (if any) with the flags that were set
// explicitly on the command line, and checks the rank.
func (o *RootOptions) resolveRegion(cmd *cobra.Command) (regionSpec, error) {
	r := o.Region
	if o.File != "" {
		fromFile, err := loadRegion(o.File)
		if err != nil {
			return regionSpec{}, err
		}
		flags := cmd.Flags()
		for _, f := range []struct {
			name string
			dst  *[]int
			src  []int
		}{
			{"shape", &r.Shape, fromFile.Shape},
			{"origin", &r.Origin, fromFile.Origin},
			{"low", &r.Low, fromFile.Low},
			{"high", &r.High, fromFile.High},
			{"order", &r.Order, fromFile.Order},
		} {
			if !flags.Changed(f.name) {
				*f.dst = f.src
			}
		}
	}

	if len(r.Shape) == 0 {
		return regionSpec{}, errNoShape
	}
	if len(r.Shape) > 4 {
		return regionSpec{}, fmt.Errorf("shape %v: %w", r.Shape, errRank)
	}

	return r, nil
}
