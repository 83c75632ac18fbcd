// Package cli provides the stacklens command-line interface.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/stacklens/core/internal/cli/commands"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stacklens",
		Short: "StackLens - n8n / Supabase stack reconciler",
		Long: `StackLens cross-references n8n workflow exports with a Supabase schema
catalog and produces a unified stack_data.json for the visualizer, marking
which tables and functions are actually used by at least one workflow.`,
		Version: Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose"); verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./stacklens.yaml)")
	rootCmd.PersistentFlags().String("workflows", "", "path to the n8n workflow export")
	rootCmd.PersistentFlags().String("catalog", "", "path to the Supabase catalog export")
	rootCmd.PersistentFlags().String("output", "", "path to write the unified report")
	rootCmd.PersistentFlags().String("listen", "", "listen address for the API server")
	rootCmd.PersistentFlags().String("cors-origin", "", "allowed CORS origin for the API server")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		commands.NewMergeCommand(),
		commands.NewServeCommand(),
		commands.NewVersionCommand(Version, GitCommit),
	)

	return rootCmd
}
