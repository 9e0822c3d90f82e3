package util

import (
	"fmt"
	"io"
	"strings"

	"github.com/agentchanti/kbreg/internal/cli/shared"
	"github.com/agentchanti/kbreg/internal/validation"
	"github.com/spf13/cobra"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema <doc|entry>",
		Short: "Print the field schema for documents or error entries",
		Long: `Print the fields a record must carry to pass validation.

  doc    frontmatter header of patterns, adrs, docs and behavioral documents
  entry  each item of an errors/**/*.yml list`,
		Example: `  # Document frontmatter fields
  kbreg schema doc

  # Error entry fields
  kbreg schema entry`,
		GroupID:   shared.GroupInfo,
		Args:      shared.ArgsWithCode(cobra.ExactArgs(1)),
		ValidArgs: validation.ValidSchemaTypes(),
		RunE: func(cmd *cobra.Command, args []string) error {
			schemaType, err := validation.ParseSchemaType(args[0])
			if err != nil {
				return shared.WithExitCode(shared.ExitInvalidArguments, err)
			}
			return printSchema(schemaType, cmd.OutOrStdout())
		},
	}
}

// printSchema prints the schema for a record type.
func printSchema(schemaType validation.SchemaType, out io.Writer) error {
	schema, err := validation.GetSchema(schemaType)
	if err != nil {
		return fmt.Errorf("getting schema for %s: %w", schemaType, err)
	}

	fmt.Fprintf(out, "Schema for %s records\n", schemaType)
	fmt.Fprintf(out, "%s\n\n", strings.Repeat("=", 40))
	fmt.Fprintf(out, "%s\n\n", schema.Description)

	fmt.Fprintf(out, "Fields:\n")
	fmt.Fprintf(out, "%s\n", strings.Repeat("-", 40))

	for _, field := range schema.Fields {
		printSchemaField(field, out)
	}
	return nil
}

// printSchemaField prints a single schema field.
func printSchemaField(field validation.SchemaField, out io.Writer) {
	required := ""
	if field.Required {
		required = " (required)"
	}

	typeStr := string(field.Type)
	switch {
	case len(field.Enum) > 0:
		typeStr = fmt.Sprintf("enum[%s]", strings.Join(field.Enum, ", "))
	case field.Pattern != "":
		typeStr = fmt.Sprintf("%s /%s/", typeStr, field.Pattern)
	}

	fmt.Fprintf(out, "%s: %s%s\n", field.Name, typeStr, required)
	if field.Description != "" {
		fmt.Fprintf(out, "  # %s\n", field.Description)
	}
}
