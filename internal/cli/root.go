// kbreg - Knowledge-Base Registry Tooling
// Source: https://github.com/agentchanti/kbreg

// Package cli provides the Cobra-based command tree for kbreg: registry
// commands (validate, stats, bump), configuration management (config) and
// informational commands (version, schema).
package cli

import (
	"github.com/agentchanti/kbreg/internal/cli/config"
	"github.com/agentchanti/kbreg/internal/cli/kb"
	"github.com/agentchanti/kbreg/internal/cli/shared"
	"github.com/agentchanti/kbreg/internal/cli/util"
	"github.com/spf13/cobra"
)

// Command group IDs for organizing help output (re-exported from shared)
const (
	GroupRegistry      = shared.GroupRegistry
	GroupConfiguration = shared.GroupConfiguration
	GroupInfo          = shared.GroupInfo
)

// NewRootCmd builds the complete kbreg command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kbreg",
		Short: "Knowledge-base registry tooling",
		Long: `kbreg - Knowledge-Base Registry Tooling

Validates the documents and error entries of a knowledge-base registry,
reports content statistics and maintains the registry manifest.

Source: https://github.com/agentchanti/kbreg`,
		Example: `  # Validate the registry in the current directory
  kbreg validate

  # Validate another registry with a config file
  kbreg -c kbreg.yml validate ../kb

  # Show counts and refresh the manifest
  kbreg stats --write

  # Release a minor version
  kbreg bump minor`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Define command groups in display order
	rootCmd.AddGroup(&cobra.Group{ID: GroupRegistry, Title: "Registry:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupConfiguration, Title: "Configuration:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupInfo, Title: "Info:"})

	// Assign built-in help and completion to configuration group
	rootCmd.SetHelpCommandGroupID(GroupConfiguration)
	rootCmd.SetCompletionCommandGroupID(GroupConfiguration)

	shared.AddGlobalFlags(rootCmd)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return shared.WithExitCode(shared.ExitInvalidArguments, err)
	})

	// Register commands from subpackages
	kb.Register(rootCmd)
	config.Register(rootCmd)
	util.Register(rootCmd)

	return rootCmd
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}
