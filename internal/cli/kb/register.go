// Package kb provides the registry CLI commands: validate, stats and bump.
package kb

import (
	"github.com/spf13/cobra"
)

// Register adds the registry commands to the root command.
func Register(rootCmd *cobra.Command) {
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newBumpCmd())
}
