package shared

import (
	"github.com/spf13/cobra"
)

// Global flag names
const (
	FlagConfig  = "config"
	FlagRoot    = "root"
	FlagDebug   = "debug"
	FlagNoColor = "no-color"
)

// AddGlobalFlags defines the persistent flags every kbreg command reads.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(FlagConfig, "c", "", "Path to config file (.json, .yml, .yaml or .toml)")
	cmd.PersistentFlags().String(FlagRoot, "", "Registry root directory (overrides registry_root)")
	cmd.PersistentFlags().BoolP(FlagDebug, "d", false, "Enable debug logging")
	cmd.PersistentFlags().Bool(FlagNoColor, false, "Disable colored output")
}
