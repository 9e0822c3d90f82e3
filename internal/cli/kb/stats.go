package kb

import (
	"fmt"
	"io"
	"strconv"

	"github.com/agentchanti/kbreg/internal/cli/shared"
	"github.com/agentchanti/kbreg/internal/manifest"
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [root]",
		Short: "Show registry content counts",
		Long: `Count error entries per language and documents per category.

With --write the counts are stored in the manifest under categories, leaving
every other manifest key untouched.`,
		Example: `  # Show counts
  kbreg stats

  # Refresh the manifest counts
  kbreg stats --write`,
		GroupID: shared.GroupRegistry,
		Args:    shared.ArgsWithCode(cobra.MaximumNArgs(1)),
		RunE:    runStats,
	}
	cmd.Flags().BoolP("write", "w", false, "Write the counts to the manifest")
	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	write, _ := cmd.Flags().GetBool("write")

	rt, err := shared.LoadRuntime(cmd)
	if err != nil {
		return err
	}
	root := rt.RegistryRoot(args)

	counts, err := manifest.Count(root, rt.Logger)
	if err != nil {
		return fmt.Errorf("counting registry: %w", err)
	}

	out := cmd.OutOrStdout()
	printCounts(out, counts)

	if !write {
		return nil
	}
	path := rt.ManifestPath(root)
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}
	if err := m.ApplyCounts(counts); err != nil {
		return err
	}
	if err := m.Save(); err != nil {
		return fmt.Errorf("saving manifest: %w", err)
	}
	fmt.Fprintf(out, "\nUpdated counts in %s\n", path)
	return nil
}

func printCounts(out io.Writer, c *manifest.Counts) {
	categories := &shared.Table{Headers: []string{"Category", "Count"}}
	categories.Rows = append(categories.Rows, []string{"errors (entries)", strconv.Itoa(c.TotalEntries)})
	for _, dir := range manifest.CountedDirs {
		categories.Rows = append(categories.Rows, []string{dir + " (files)", strconv.Itoa(c.Files[dir])})
	}
	categories.Render(out)

	names := c.LanguageNames()
	if len(names) == 0 {
		fmt.Fprintln(out, "\nNo error entries found.")
		return
	}
	fmt.Fprintln(out)
	languages := &shared.Table{
		Headers: []string{"Language", "Entries"},
		Footer:  []string{"total", strconv.Itoa(c.TotalEntries)},
	}
	for _, name := range names {
		languages.Rows = append(languages.Rows, []string{name, strconv.Itoa(c.Languages[name])})
	}
	languages.Render(out)
}
