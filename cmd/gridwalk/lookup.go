package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewOffsetCommand creates the offset command.
func NewOffsetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "offset <c0,c1,...>",
		Short: "Print the slice offset of a tile-global coordinate",
		Long: `Print the layout offset of a coordinate inside [--low, --high).

Example:
  gridwalk offset 2,1 --shape 4,3 --low 1,0 --high 3,3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOffset(rootOpts, cmd, args[0])
		},
	}
}

func runOffset(opts *RootOptions, cmd *cobra.Command, arg string) error {
	index, err := parseCoordinate(arg)
	if err != nil {
		return fmt.Errorf("coordinate %q: %w", arg, err)
	}
	p, err := opts.plan(cmd)
	if err != nil {
		return err
	}
	off, err := p.Offset(index)
	if err != nil {
		return opts.addressFailure(err)
	}

	if opts.JSON {
		return printJSON(cmd.OutOrStdout(), point{Offset: off, Index: index})
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), off)
	return err
}

// NewIndexCommand creates the index command.
func NewIndexCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "index <offset>",
		Short: "Print the tile-global coordinate at a slice offset",
		Long: `Print the coordinate stored at a layout offset in [0, volume).

Example:
  gridwalk index 4 --shape 4,3 --low 1,0 --high 3,3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndex(rootOpts, cmd, args[0])
		},
	}
}

func runIndex(opts *RootOptions, cmd *cobra.Command, arg string) error {
	offset, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("offset %q: %w", arg, err)
	}
	p, err := opts.plan(cmd)
	if err != nil {
		return err
	}
	pt, label, err := p.Index(offset)
	if err != nil {
		return opts.addressFailure(err)
	}

	if opts.JSON {
		return printJSON(cmd.OutOrStdout(), pt)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), label)
	return err
}
