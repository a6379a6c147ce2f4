package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	JSON    bool
	File    string // YAML region file; explicit flags override its values
	Region  regionSpec

	logger *slog.Logger
}

// NewRootCommand creates the root command for the gridwalk CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "gridwalk",
		Short: "Walk N-dimensional tiles and slices",
		Long: `gridwalk builds a tile from --shape and --origin, restricts it to the
slice [--low, --high) and visits it under --order (fastest dimension first).

Coordinates are comma-separated, one component per dimension; rank 1 to 4.
Omitted values default to the whole tile in row-major order.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.Verbose)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log region details to stderr")
	cmd.PersistentFlags().BoolVar(&opts.JSON, "json", false, "output in JSON format")
	cmd.PersistentFlags().StringVarP(&opts.File, "file", "f", "", "YAML region file")
	cmd.PersistentFlags().IntSliceVar(&opts.Region.Shape, "shape", nil, "tile extent per dimension")
	cmd.PersistentFlags().IntSliceVar(&opts.Region.Origin, "origin", nil, "tile low corner (default all zero)")
	cmd.PersistentFlags().IntSliceVar(&opts.Region.Low, "low", nil, "slice low corner, inclusive (default tile low)")
	cmd.PersistentFlags().IntSliceVar(&opts.Region.High, "high", nil, "slice high corner, exclusive (default tile high)")
	cmd.PersistentFlags().IntSliceVar(&opts.Region.Order, "order", nil, "nesting order, fastest dimension first (default row-major)")

	// Add subcommands
	cmd.AddCommand(NewWalkCommand(opts))
	cmd.AddCommand(NewOffsetCommand(opts))
	cmd.AddCommand(NewIndexCommand(opts))
	cmd.AddCommand(NewDescribeCommand(opts))

	return cmd
}

// newLogger writes text records to w; verbose lowers the level to debug.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// plan resolves the region for cmd and builds the slice it describes.
func (o *RootOptions) plan(cmd *cobra.Command) (plan, error) {
	region, err := o.resolveRegion(cmd)
	if err != nil {
		return nil, err
	}
	p, err := newPlan(region)
	if err != nil {
		return nil, fmt.Errorf("region: %w", err)
	}
	o.log().Debug("region", "slice", p.String(), "volume", p.Volume(), "file", o.File)

	return p, nil
}

// log returns the configured logger, or a discarding one before PersistentPreRunE.
func (o *RootOptions) log() *slog.Logger {
	if o.logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return o.logger
}
