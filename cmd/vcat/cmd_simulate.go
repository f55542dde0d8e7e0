package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vcat-tools/vcat/internal/progress"
	"github.com/vcat-tools/vcat/internal/simulate"
	"github.com/vcat-tools/vcat/internal/ui"
)

// simulate replaces the magic "/.xyzzy" filename the tool historically
// used: an explicit subcommand cannot collide with a real file.
func createSimulateCmd() *cobra.Command {
	var (
		size     int64
		step     int64
		interval time.Duration
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Render a simulated transfer (no data is copied)",
		Long: `Drives the progress bar through a synthetic multi-gigabyte transfer,
advancing a position counter at a fixed rate. Useful for visually
verifying ETA, percentage, and bar-fill behavior without a large file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := newDeps(loadCfg())
			if err := barPreflight(d); err != nil {
				return err
			}
			p := ui.NewPrinter()
			p.Info(fmt.Sprintf("simulating a %s transfer", ui.FormatBytes(size)))
			r := progress.NewRenderer(d.Stderr, d.Ctrl, d.Width)
			simulate.Run(r, simulate.Options{
				Size:     size,
				Step:     step,
				Interval: interval,
			})
			return nil
		},
	}
	cmd.Flags().Int64Var(&size, "size", simulate.DefaultSize, "Synthetic file size in bytes")
	cmd.Flags().Int64Var(&step, "step", simulate.DefaultStep, "Bytes advanced per tick")
	cmd.Flags().DurationVar(&interval, "interval", simulate.DefaultInterval, "Pause between ticks")
	return cmd
}

func init() {
	rootCmd.AddCommand(createSimulateCmd())
}
