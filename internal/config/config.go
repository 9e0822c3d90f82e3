package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables that override config keys.
const EnvPrefix = "KBREG_"

// Configuration represents the kbreg CLI tool configuration
type Configuration struct {
	RegistryRoot string `koanf:"registry_root" validate:"required"`
	ManifestFile string `koanf:"manifest_file" validate:"required"`
	NoColor      bool   `koanf:"no_color"`
	BumpType     string `koanf:"bump_type" validate:"omitempty,oneof=major minor patch"`

	// UnknownKeys lists keys found in the config file that kbreg does not use.
	UnknownKeys []string `koanf:"-"`
}

// Load loads configuration from defaults, an optional config file and the
// environment.
// Priority: Environment variables > Config file > Defaults
//
// An empty configPath loads no file. A configPath that does not exist is an
// error, since it was asked for explicitly.
func Load(configPath string) (*Configuration, error) {
	return LoadKeys(configPath)
}

// LoadKeys is Load with value validation limited to the given config keys.
// Other keys are still loaded but may hold invalid values. No keys means all
// keys are validated.
func LoadKeys(configPath string, keys ...string) (*Configuration, error) {
	k := koanf.New(".")

	// Apply defaults first
	for key, value := range GetDefaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	var unknown []string
	if configPath != "" {
		keys, err := loadFile(k, configPath)
		if err != nil {
			return nil, err
		}
		unknown = unknownKeys(keys)
	}

	// Override with environment variables (highest priority)
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.UnknownKeys = unknown

	if err := validateConfig(&cfg, configPath, keys); err != nil {
		return nil, err
	}

	cfg.RegistryRoot = expandHomePath(cfg.RegistryRoot)
	return &cfg, nil
}

// Values returns the effective configuration keyed by config key.
func (c *Configuration) Values() map[string]interface{} {
	return map[string]interface{}{
		"registry_root": c.RegistryRoot,
		"manifest_file": c.ManifestFile,
		"no_color":      c.NoColor,
		"bump_type":     c.BumpType,
	}
}

// loadFile merges the config file at path into k and returns the keys the
// file defined.
func loadFile(k *koanf.Koanf, path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ValidationError{FilePath: path, Message: "config file does not exist"}
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	parser, err := ParserFor(path)
	if err != nil {
		return nil, err
	}
	if err := ValidateSyntax(data, path); err != nil {
		return nil, err
	}
	// Empty file - will use defaults
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, nil
	}

	fileK := koanf.New(".")
	if err := fileK.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if err := k.Merge(fileK); err != nil {
		return nil, fmt.Errorf("failed to merge config %s: %w", path, err)
	}
	return fileK.Keys(), nil
}

// validateConfig runs the struct validation rules and converts the first
// violation into a ValidationError naming the config key.
func validateConfig(cfg *Configuration, filePath string, keys []string) error {
	validate := validator.New()
	var err error
	if len(keys) == 0 {
		err = validate.Struct(cfg)
	} else {
		err = validate.StructPartial(cfg, fieldsForKeys(keys)...)
	}
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("config validation failed: %w", err)
	}

	fe := fieldErrs[0]
	key := keyForField(fe.StructField())
	msg := "is required"
	if fe.Tag() == "oneof" {
		msg = fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	}
	return &ValidationError{FilePath: filePath, Field: key, Message: msg}
}

// envTransform converts environment variable names to config keys
// Example: KBREG_REGISTRY_ROOT -> registry_root
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
