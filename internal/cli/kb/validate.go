package kb

import (
	"fmt"

	"github.com/agentchanti/kbreg/internal/cli/shared"
	"github.com/agentchanti/kbreg/internal/progress"
	"github.com/agentchanti/kbreg/internal/registry"
	"github.com/agentchanti/kbreg/internal/validation"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "validate [root]",
		Aliases: []string{"check"},
		Short:   "Validate registry documents and error entries",
		Long: `Validate every document header and error entry under a registry root.

Checks run in order: frontmatter, yml-schema, duplicate-id, related-errors,
severity, category, language and semver. Records that fail a schema check are
skipped by the checks after it. The report is printed to stdout.

Exit codes:
  0 - all checks passed
  1 - at least one check failed
  3 - invalid arguments or configuration`,
		Example: `  # Validate the registry in the current directory
  kbreg validate

  # Validate another registry
  kbreg validate ../kb-registry

  # Plain output for CI logs
  kbreg validate --no-color`,
		GroupID: shared.GroupRegistry,
		Args:    shared.ArgsWithCode(cobra.MaximumNArgs(1)),
		RunE:    runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	// validate reads no bump settings, so a bad bump_type must not stop it.
	rt, err := shared.LoadRuntime(cmd, "registry_root", "no_color")
	if err != nil {
		return err
	}
	root := rt.RegistryRoot(args)
	display := rt.Progress()

	scan := progress.StepInfo{Name: "scanning registry", Number: 1, TotalSteps: 2, Status: progress.StepInProgress}
	if err := display.StartStep(scan); err != nil {
		return err
	}
	reg, err := registry.NewLoader(root, rt.Logger).Load()
	if err != nil {
		display.FailStep(scan, err)
		return fmt.Errorf("loading registry: %w", err)
	}
	display.CompleteStep(scan, fmt.Sprintf("%d documents, %d entry files", len(reg.Docs), len(reg.Entries)))

	checks := progress.StepInfo{Name: "running checks", Number: 2, TotalSteps: 2, Status: progress.StepInProgress}
	if err := display.StartStep(checks); err != nil {
		return err
	}
	report := validation.Run(reg)
	display.CompleteStep(checks, fmt.Sprintf("%d failures", len(report.Failures())))

	rt.Logger.Debug("validation finished",
		"root", root,
		"findings", len(report.Findings),
		"exit_code", report.ExitCode())

	if err := (validation.Renderer{Color: rt.Color}).Render(cmd.OutOrStdout(), report); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	if report.HasErrors() {
		return shared.NewExitError(report.ExitCode())
	}
	return nil
}
