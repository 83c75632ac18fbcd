// Package commands implements the stacklens subcommands.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/stacklens/core/internal/config"
)

// loadConfig builds the effective config for a command invocation from the
// root command's persistent flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Root().PersistentFlags()
	cfgFile, _ := flags.GetString("config")
	return config.Load(cfgFile, flags)
}
