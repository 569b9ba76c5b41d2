// Package main provides the llrbset command line tool: a thin shell
// around the llrb ordered set for sorting, inspecting and drawing
// small element sets.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Build metadata, injected with -ldflags.
var (
	version = "dev"
	commit  = "none"
)

var verbose bool

func main() {
	initConfig()

	rootCmd := &cobra.Command{
		Use:   "llrbset",
		Short: "llrbset - ordered integer sets on a left-leaning red-black tree",
		Long: `llrbset exercises the llrb library from the command line.

Commands:
  sort     Insert the given elements and drain them in ascending order
  draw     Render the tree holding the given elements
  stats    Show arena occupancy for the tree holding the given elements`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}

			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newSortCommand())
	rootCmd.AddCommand(newDrawCommand())
	rootCmd.AddCommand(newStatsCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// initConfig wires defaults and LLRBSET_* environment overrides.
func initConfig() {
	viper.SetDefault("format", formatTikz)
	viper.SetEnvPrefix("LLRBSET")
	viper.AutomaticEnv()
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "llrbset %s (commit: %s)\n", version, commit)
		},
	}
}
