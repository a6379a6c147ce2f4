package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewWalkCommand creates the walk command.
func NewWalkCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "walk",
		Short: "Print every offset and coordinate of the slice in layout order",
		Long: `Print one "offset<TAB>coordinate" line per slice element, in layout order.
With --json, print an array of {"offset", "index"} objects instead.

Example:
  gridwalk walk --shape 4,3 --low 1,0 --high 3,3
  gridwalk walk --shape 4,3 --low 1,0 --high 3,3 --order 0,1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWalk(rootOpts, cmd)
		},
	}
}

func runWalk(opts *RootOptions, cmd *cobra.Command) error {
	p, err := opts.plan(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if opts.JSON {
		points := make([]point, 0, p.Volume())
		if err := p.Walk(func(pt point, _ string) error {
			points = append(points, pt)
			return nil
		}); err != nil {
			return err
		}
		return printJSON(out, points)
	}

	return p.Walk(func(pt point, label string) error {
		_, err := fmt.Fprintf(out, "%d\t%s\n", pt.Offset, label)
		return err
	})
}
