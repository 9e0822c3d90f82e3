package shared

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/agentchanti/kbreg/internal/config"
	"github.com/agentchanti/kbreg/internal/progress"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Runtime bundles what a command needs once global flags and configuration
// are resolved.
type Runtime struct {
	Config *config.Configuration
	Logger *slog.Logger
	// Color is true when styled output is allowed on stdout.
	Color bool

	cmd     *cobra.Command
	rootArg string
	debug   bool
}

// LoadRuntime resolves configuration and logging for cmd. Configuration
// problems are reported with ExitInvalidArguments. When keys are given, only
// those config keys are validated.
func LoadRuntime(cmd *cobra.Command, keys ...string) (*Runtime, error) {
	flags := cmd.Flags()
	configPath, _ := flags.GetString(FlagConfig)
	rootFlag, _ := flags.GetString(FlagRoot)
	debug, _ := flags.GetBool(FlagDebug)
	noColor, _ := flags.GetBool(FlagNoColor)

	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	cfg, err := config.LoadKeys(configPath, keys...)
	if err != nil {
		return nil, WithExitCode(ExitInvalidArguments, err)
	}
	for _, key := range cfg.UnknownKeys {
		logger.Warn("ignoring unknown config key", "key", key, "file", configPath)
	}
	logger.Debug("configuration loaded",
		"file", configPath,
		"registry_root", cfg.RegistryRoot,
		"manifest_file", cfg.ManifestFile)

	return &Runtime{
		Config:  cfg,
		Logger:  logger,
		Color:   !noColor && !cfg.NoColor && !color.NoColor,
		cmd:     cmd,
		rootArg: rootFlag,
		debug:   debug,
	}, nil
}

// RegistryRoot picks the registry root.
// Priority: positional argument > --root flag > registry_root config
func (r *Runtime) RegistryRoot(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	if r.rootArg != "" {
		return r.rootArg
	}
	return r.Config.RegistryRoot
}

// ManifestPath returns the manifest location for root. An absolute
// manifest_file is used as is.
func (r *Runtime) ManifestPath(root string) string {
	if filepath.IsAbs(r.Config.ManifestFile) {
		return r.Config.ManifestFile
	}
	return filepath.Join(root, r.Config.ManifestFile)
}

// Progress returns a step display on the command's stderr. It stays silent
// when stderr is redirected or debug logging is on.
func (r *Runtime) Progress() *progress.Display {
	out := r.cmd.ErrOrStderr()
	var caps progress.TerminalCapabilities
	if out == os.Stderr && !r.debug {
		caps = progress.DetectTerminalCapabilities()
	}
	if !r.Color {
		caps.SupportsColor = false
	}
	return progress.NewDisplay(caps, out)
}
