// Package config provides CLI commands for kbreg configuration management.
// Includes: config show, config keys, config set
package config

import (
	"github.com/agentchanti/kbreg/internal/cli/shared"
	"github.com/spf13/cobra"
)

// Register adds all configuration commands to the root command.
// This function is called from the root CLI package during initialization.
func Register(rootCmd *cobra.Command) {
	rootCmd.AddCommand(newConfigCmd())
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit kbreg configuration",
		Long: `Inspect and edit kbreg configuration.

Configuration is layered: built-in defaults, then the file given with
--config (.json, .yml, .yaml or .toml), then KBREG_* environment variables.`,
		GroupID: shared.GroupConfiguration,
	}
	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newKeysCmd())
	cmd.AddCommand(newSetCmd())
	return cmd
}
