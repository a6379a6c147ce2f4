package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// description is the --json form of describe.
type description struct {
	Slice   string `json:"slice"`
	Volume  int    `json:"volume"`
	Strides []int  `json:"strides"`
}

// NewDescribeCommand creates the describe command.
func NewDescribeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Print the resolved slice, its volume and strides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := rootOpts.plan(cmd)
			if err != nil {
				return err
			}
			d := description{Slice: p.String(), Volume: p.Volume(), Strides: p.Strides()}
			if rootOpts.JSON {
				return printJSON(cmd.OutOrStdout(), d)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\nvolume %d\nstrides %v\n", d.Slice, d.Volume, d.Strides)
			return err
		},
	}
}
