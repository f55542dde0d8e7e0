package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vcat-tools/vcat/internal/config"
	"github.com/vcat-tools/vcat/internal/exitcodes"
)

// Version information - set via -ldflags during build
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var (
	flagBlockSize   int
	flagRenderEvery int64
	flagOutput      string
)

// rootCmd wires the CLI surface using Cobra. The root command is the
// copy operation itself; simulate/version/completion are subcommands.
var rootCmd = &cobra.Command{
	Use:   "vcat <file...>",
	Short: "cat with a visual progress bar",
	Long: `Copies the contents of each file argument to standard output, just like
cat, but also displays a progress bar while copying each file. The bar
is drawn on standard error, which must refer to an ANSI terminal.
Standard output must be directed at something other than a TTY.

Use "-" to read from standard input. To copy a file literally named
"-" (or named like a subcommand), prefix it with "./".`,
	Example: `  vcat /some/file/path >output
  vcat /file/a /file/b /file/c >concatenated
  vcat - </some/file/path >output
  vcat simulate >/dev/null`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCat(newDeps(loadCfg()), args)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagBlockSize, "block-size", 0, "Copy block size in bytes (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagRenderEvery, "render-every", 0, "Redraw threshold in bytes (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "text", "Output format for version: json|yaml|text")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var se silentErr
		if !errors.As(err, &se) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitcodes.CodeForError(err))
	}
}

// loadCfg reads defaults + ~/.vcat.yaml + env via internal/config.Load()
// and then applies overrides from flags.
func loadCfg() config.Config {
	cfg := config.Load()
	if flagBlockSize > 0 {
		cfg.BlockSize = flagBlockSize
	}
	if flagRenderEvery > 0 {
		cfg.RenderEvery = flagRenderEvery
	}
	return cfg
}
