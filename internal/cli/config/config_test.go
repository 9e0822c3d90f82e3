// Package config tests the config show, keys and set commands.
// Related: internal/cli/config/config.go
// Tags: cli, config, show, keys, set

package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/agentchanti/kbreg/internal/cli/shared"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoot() *cobra.Command {
	root := &cobra.Command{Use: "kbreg", SilenceUsage: true, SilenceErrors: true}
	root.AddGroup(&cobra.Group{ID: shared.GroupConfiguration, Title: "Configuration:"})
	shared.AddGlobalFlags(root)
	Register(root)
	return root
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newTestRoot()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConfigShow_JSON(t *testing.T) {
	path := writeConfig(t, "kbreg.toml", "registry_root = \"kb\"\nbump_type = \"minor\"\n")

	out, err := execute(t, "--config", path, "config", "show", "--format", "json")
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "kb", got["registry_root"])
	assert.Equal(t, "minor", got["bump_type"])
	assert.Equal(t, "manifest.json", got["manifest_file"])
	assert.Equal(t, false, got["no_color"])
}

func TestConfigShow_EnvOverridesFile(t *testing.T) {
	t.Setenv("KBREG_MANIFEST_FILE", "from-env.json")
	path := writeConfig(t, "kbreg.yml", "manifest_file: from-file.json\n")

	out, err := execute(t, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "manifest_file: from-env.json")
}

func TestConfigShow_Formats(t *testing.T) {
	tests := map[string]struct {
		format   string
		want     string
		wantCode int
	}{
		"yaml":    {format: "yaml", want: "no_color: false"},
		"toml":    {format: "toml", want: "no_color = false"},
		"json":    {format: "JSON", want: `"no_color": false`},
		"invalid": {format: "xml", wantCode: shared.ExitInvalidArguments},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := execute(t, "config", "show", "--format", tt.format)
			assert.Equal(t, tt.wantCode, shared.ExitCode(err))
			if tt.want != "" {
				assert.Contains(t, out, tt.want)
			}
		})
	}
}

func TestConfigShow_InvalidConfig(t *testing.T) {
	path := writeConfig(t, "kbreg.yml", "no_color: [oops\n")

	_, err := execute(t, "--config", path, "config", "show")
	require.Error(t, err)
	assert.Equal(t, shared.ExitInvalidArguments, shared.ExitCode(err))
}

func TestConfigKeys(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "config", "keys")
	require.NoError(t, err)

	assert.Contains(t, out, "Available configuration keys:")
	assert.Contains(t, out, `bump_type        enum (major, minor, patch) (default "")`)
	assert.Contains(t, out, `registry_root    string (default ".")`)
	assert.Contains(t, out, "env: KBREG_NO_COLOR")

	// Keys are listed alphabetically
	assert.Less(t, bytes.Index([]byte(out), []byte("bump_type")), bytes.Index([]byte(out), []byte("registry_root")))
}

func TestConfigSet(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "kbreg.yml")

	out, err := execute(t, "--config", path, "config", "set", "bump_type", "major")
	require.NoError(t, err)
	assert.Equal(t, "Set bump_type = major in "+path+"\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "bump_type: major\n", string(data))

	out, err = execute(t, "--config", path, "config", "set", "bump_type", "patch")
	require.NoError(t, err)
	assert.Equal(t, "Set bump_type = patch in "+path+" (was major)\n", out)
}

func TestConfigSet_Errors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		args    []string
		wantErr string
	}{
		"unknown key":   {args: []string{"config", "set", "timeout", "5"}, wantErr: "Valid keys:"},
		"invalid value": {args: []string{"config", "set", "no_color", "maybe"}, wantErr: "invalid boolean"},
		"missing value": {args: []string{"config", "set", "no_color"}, wantErr: "accepts 2 arg(s)"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "kbreg.yml")
			_, err := execute(t, append([]string{"--config", path}, tt.args...)...)
			require.Error(t, err)
			assert.Equal(t, shared.ExitInvalidArguments, shared.ExitCode(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
