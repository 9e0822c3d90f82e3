package kb

import (
	"fmt"
	"os"

	"github.com/agentchanti/kbreg/internal/cli/shared"
	"github.com/agentchanti/kbreg/internal/manifest"
	"github.com/spf13/cobra"
)

func newBumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bump [major|minor|patch]",
		Short: "Bump the manifest version and refresh its counts",
		Long: `Bump the semantic version in the manifest and refresh its content counts.

The bump type is taken from the argument, then the bump_type config key
(or KBREG_BUMP_TYPE), then the BUMP_TYPE environment variable, and finally
defaults to patch.

  major  X.Y.Z -> (X+1).0.0
  minor  X.Y.Z -> X.(Y+1).0
  patch  X.Y.Z -> X.Y.(Z+1)`,
		Example: `  # Patch release
  kbreg bump

  # Preview a minor bump without writing
  kbreg bump minor --dry-run`,
		GroupID: shared.GroupRegistry,
		Args:    shared.ArgsWithCode(cobra.MaximumNArgs(1)),
		RunE:    runBump,
	}
	for _, kind := range manifest.BumpKinds {
		cmd.ValidArgs = append(cmd.ValidArgs, string(kind))
	}
	cmd.Flags().Bool("dry-run", false, "Show the new version without writing the manifest")
	return cmd
}

func runBump(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	rt, err := shared.LoadRuntime(cmd)
	if err != nil {
		return err
	}

	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	kind, source, err := manifest.ResolveBumpKind(arg, rt.Config.BumpType, os.Getenv)
	if err != nil {
		return shared.WithExitCode(shared.ExitInvalidArguments, err)
	}

	root := rt.RegistryRoot(nil)
	path := rt.ManifestPath(root)

	m, err := manifest.Load(path)
	if err != nil {
		return err
	}
	current := m.Version()
	next, err := manifest.Bump(current, kind)
	if err != nil {
		return fmt.Errorf("bumping %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Current version: %s\n", current)
	fmt.Fprintf(out, "Bump type:       %s (%s)\n", kind, source)
	fmt.Fprintf(out, "New version:     %s\n", next)

	if dryRun {
		fmt.Fprintln(out, "Dry run: manifest not modified")
		return nil
	}

	counts, err := manifest.Count(root, rt.Logger)
	if err != nil {
		return fmt.Errorf("counting registry: %w", err)
	}
	if err := m.ApplyCounts(counts); err != nil {
		return err
	}
	if err := m.SetVersion(next); err != nil {
		return err
	}
	if err := m.Save(); err != nil {
		return fmt.Errorf("saving manifest: %w", err)
	}
	rt.Logger.Debug("manifest updated", "path", path, "version", next, "entries", counts.TotalEntries)
	fmt.Fprintf(out, "Updated %s\n", path)
	return nil
}
