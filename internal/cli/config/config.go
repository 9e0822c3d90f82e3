package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/agentchanti/kbreg/internal/cli/shared"
	cfgpkg "github.com/agentchanti/kbreg/internal/config"
	"github.com/spf13/cobra"
)

// showFormats maps a --format value to a file name whose extension selects
// the parser.
var showFormats = map[string]string{
	"yaml": "config.yml",
	"json": "config.json",
	"toml": "config.toml",
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long:  `Print the configuration after defaults, the config file and the environment are merged.`,
		Example: `  # Show as YAML
  kbreg config show

  # Show a TOML config as JSON
  kbreg -c kbreg.toml config show --format json`,
		Args: shared.ArgsWithCode(cobra.NoArgs),
		RunE: runConfigShow,
	}
	cmd.Flags().StringP("format", "f", "yaml", "Output format: yaml, json or toml")
	return cmd
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("format")
	name, ok := showFormats[strings.ToLower(format)]
	if !ok {
		return shared.WithExitCode(shared.ExitInvalidArguments,
			fmt.Errorf("invalid format %q (valid formats: json, toml, yaml)", format))
	}

	rt, err := shared.LoadRuntime(cmd)
	if err != nil {
		return err
	}

	parser, err := cfgpkg.ParserFor(name)
	if err != nil {
		return err
	}
	data, err := parser.Marshal(rt.Config.Values())
	if err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}
	if strings.HasSuffix(name, ".json") {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return fmt.Errorf("formatting configuration: %w", err)
		}
		buf.WriteByte('\n')
		data = buf.Bytes()
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List all available configuration keys",
		Long:  `Display all valid configuration keys with their types, defaults and descriptions.`,
		Args:  shared.ArgsWithCode(cobra.NoArgs),
		RunE:  runConfigKeys,
	}
}

func runConfigKeys(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	// Collect and sort keys
	keys := make([]string, 0, len(cfgpkg.KnownKeys))
	for key := range cfgpkg.KnownKeys {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Fprintln(out, "Available configuration keys:")
	fmt.Fprintln(out)

	for _, key := range keys {
		schema := cfgpkg.KnownKeys[key]
		typeInfo := schema.Type.String()
		if schema.Type == cfgpkg.TypeEnum {
			typeInfo = fmt.Sprintf("enum (%s)", strings.Join(schema.AllowedValues, ", "))
		}
		fmt.Fprintf(out, "  %-16s %s (default %q)\n", key, typeInfo, fmt.Sprint(schema.Default))
		fmt.Fprintf(out, "    %s\n", schema.Description)
		fmt.Fprintf(out, "    env: %s%s\n", cfgpkg.EnvPrefix, strings.ToUpper(key))
		fmt.Fprintln(out)
	}
	return nil
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value in a YAML config file.

Writes to the file given with --config, or kbreg.yml in the current
directory. The file is created if needed and its comments are kept.
The value is validated against the key's type before writing.`,
		Example: `  # Always bump minor versions
  kbreg config set bump_type minor

  # Disable color in a specific file
  kbreg -c ci/kbreg.yml config set no_color true`,
		Args: shared.ArgsWithCode(cobra.ExactArgs(2)),
		RunE: runConfigSet,
	}
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	filePath, _ := cmd.Flags().GetString(shared.FlagConfig)
	if filePath == "" {
		filePath = cfgpkg.DefaultConfigFile
	}

	if _, err := cfgpkg.GetKeySchema(key); err != nil {
		return shared.WithExitCode(shared.ExitInvalidArguments, formatUnknownKeyError(key))
	}
	previous, found := cfgpkg.GetConfigValue(filePath, key)
	if err := cfgpkg.SetConfigValue(filePath, key, value); err != nil {
		return shared.WithExitCode(shared.ExitInvalidArguments, fmt.Errorf("setting config value: %w", err))
	}

	out := cmd.OutOrStdout()
	if found && previous != value {
		fmt.Fprintf(out, "Set %s = %s in %s (was %s)\n", key, value, filePath, previous)
		return nil
	}
	fmt.Fprintf(out, "Set %s = %s in %s\n", key, value, filePath)
	return nil
}

func formatUnknownKeyError(key string) error {
	keys := make([]string, 0, len(cfgpkg.KnownKeys))
	for k := range cfgpkg.KnownKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Errorf("unknown configuration key: %q\n\nValid keys:\n  %s",
		key, strings.Join(keys, "\n  "))
}
