package util

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/agentchanti/kbreg/internal/build"
	"github.com/agentchanti/kbreg/internal/cli/shared"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

// SourceURL is the project source URL
const SourceURL = "https://github.com/agentchanti/kbreg"

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Display version information (v)",
		Long:    "Display version, commit, build date, and Go version information for kbreg",
		Example: `  # Show version info
  kbreg version

  # Plain output (for scripts)
  kbreg version --plain`,
		GroupID: shared.GroupInfo,
		Args:    shared.ArgsWithCode(cobra.NoArgs),
		Run: func(cmd *cobra.Command, args []string) {
			plain, _ := cmd.Flags().GetBool("plain")
			if plain {
				printPlainVersion(cmd.OutOrStdout())
				return
			}
			noColor, _ := cmd.Flags().GetBool(shared.FlagNoColor)
			printPrettyVersion(cmd.OutOrStdout(), shared.GetTerminalWidth(), !noColor && !color.NoColor)
		},
	}
	cmd.Flags().Bool("plain", false, "Plain output without formatting")
	return cmd
}

// versionInfo returns the label/value pairs shown by both output styles.
func versionInfo() [][2]string {
	version := build.Version
	if build.IsDevBuild() {
		version += " (development build)"
	}
	return [][2]string{
		{"Version", version},
		{"Commit", build.ShortCommit()},
		{"Built", build.BuildDate},
		{"Go", runtime.Version()},
		{"Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)},
	}
}

// printPlainVersion prints a simple version output for scripting
func printPlainVersion(out io.Writer) {
	fmt.Fprintf(out, "kbreg %s\n", build.Version)
	fmt.Fprintf(out, "commit: %s\n", build.Commit)
	fmt.Fprintf(out, "built: %s\n", build.BuildDate)
	fmt.Fprintf(out, "go: %s\n", runtime.Version())
	fmt.Fprintf(out, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

// printPrettyVersion prints the tagline and a centered box of build details.
func printPrettyVersion(out io.Writer, termWidth int, useColor bool) {
	cyan := styler(useColor, color.FgCyan, color.Bold)
	dim := styler(useColor, color.Faint)
	white := styler(useColor, color.FgWhite, color.Bold)
	yellow := styler(useColor, color.FgYellow)

	fmt.Fprintln(out)
	fmt.Fprintln(out, cyan(shared.CenterText("kbreg", termWidth)))
	fmt.Fprintln(out, dim(shared.CenterText(shared.Tagline, termWidth)))
	fmt.Fprintln(out)

	// Box width: 44 columns, shrunk to fit narrow terminals
	boxWidth := 44
	if termWidth < 50 {
		boxWidth = termWidth - 6
	}
	contentWidth := boxWidth - 4 // Account for borders and padding

	pad := strings.Repeat(" ", max(0, (termWidth-boxWidth)/2))

	fmt.Fprintln(out, pad+shared.BoxTopLeft+strings.Repeat(shared.BoxHorizontal, boxWidth-2)+shared.BoxTopRight)
	fmt.Fprintln(out, pad+shared.BoxVertical+strings.Repeat(" ", boxWidth-2)+shared.BoxVertical)

	for _, item := range versionInfo() {
		label := fmt.Sprintf("%10s", item[0])
		// Pad on plain text so escape codes do not skew the width
		lineLen := runewidth.StringWidth(label) + 4 + runewidth.StringWidth(item[1])
		fill := ""
		if lineLen < contentWidth {
			fill = strings.Repeat(" ", contentWidth-lineLen)
		}
		line := yellow(label) + "    " + white(item[1]) + fill
		fmt.Fprintln(out, pad+shared.BoxVertical+" "+line+" "+shared.BoxVertical)
	}

	fmt.Fprintln(out, pad+shared.BoxVertical+strings.Repeat(" ", boxWidth-2)+shared.BoxVertical)
	fmt.Fprintln(out, pad+shared.BoxBottomLeft+strings.Repeat(shared.BoxHorizontal, boxWidth-2)+shared.BoxBottomRight)
	fmt.Fprintln(out)
}

// styler returns a sprint function for attrs with color forced on or off.
func styler(enabled bool, attrs ...color.Attribute) func(a ...interface{}) string {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.SprintFunc()
}
