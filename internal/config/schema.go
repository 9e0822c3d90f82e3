package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ConfigValueType defines the expected type for a configuration value.
type ConfigValueType int

const (
	TypeBool ConfigValueType = iota
	TypeString
	TypeEnum
)

// String returns the string representation of ConfigValueType.
func (t ConfigValueType) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeString:
		return "string"
	case TypeEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// ConfigKeySchema defines a known configuration key with its expected type and validation rules.
type ConfigKeySchema struct {
	Path          string          // Key name (e.g., "registry_root")
	Field         string          // Configuration struct field the key populates
	Type          ConfigValueType // Expected value type for validation
	AllowedValues []string        // Valid values for enum types (empty for non-enums)
	Description   string          // Human-readable description for help text
	Default       interface{}     // Default value
}

// KnownKeys is the registry of all known configuration keys with their schemas.
var KnownKeys = map[string]ConfigKeySchema{
	"registry_root": {
		Path:        "registry_root",
		Field:       "RegistryRoot",
		Type:        TypeString,
		Description: "Registry root directory scanned by validate, stats and bump",
		Default:     ".",
	},
	"manifest_file": {
		Path:        "manifest_file",
		Field:       "ManifestFile",
		Type:        TypeString,
		Description: "Manifest file name, relative to the registry root",
		Default:     "manifest.json",
	},
	"no_color": {
		Path:        "no_color",
		Field:       "NoColor",
		Type:        TypeBool,
		Description: "Disable colored output",
		Default:     false,
	},
	"bump_type": {
		Path:          "bump_type",
		Field:         "BumpType",
		Type:          TypeEnum,
		AllowedValues: []string{"major", "minor", "patch"},
		Description:   "Version component bumped when none is given on the command line",
		Default:       "",
	},
}

// ErrUnknownKey is returned when trying to access an unknown configuration key.
type ErrUnknownKey struct {
	Key string
}

func (e ErrUnknownKey) Error() string {
	return "unknown configuration key: " + e.Key
}

// GetKeySchema returns the schema for a known configuration key.
// Returns ErrUnknownKey if the key is not in the registry.
func GetKeySchema(path string) (ConfigKeySchema, error) {
	schema, ok := KnownKeys[path]
	if !ok {
		return ConfigKeySchema{}, ErrUnknownKey{Key: path}
	}
	return schema, nil
}

// ValidateValue checks a raw string value against the schema for key.
func ValidateValue(key, value string) error {
	schema, err := GetKeySchema(key)
	if err != nil {
		return err
	}
	switch schema.Type {
	case TypeBool:
		if _, err := strconv.ParseBool(value); err != nil {
			return fmt.Errorf("invalid boolean: %q (expected true or false)", value)
		}
	case TypeEnum:
		if value == "" {
			return nil
		}
		for _, allowed := range schema.AllowedValues {
			if value == allowed {
				return nil
			}
		}
		return fmt.Errorf("invalid value: %q (valid options: %s)",
			value, strings.Join(schema.AllowedValues, ", "))
	}
	return nil
}

// keyForField returns the config key populating a Configuration field,
// or the field name itself when no key does.
func keyForField(field string) string {
	for _, schema := range KnownKeys {
		if schema.Field == field {
			return schema.Path
		}
	}
	return field
}

// fieldsForKeys maps known config keys to their Configuration fields.
func fieldsForKeys(keys []string) []string {
	fields := make([]string, 0, len(keys))
	for _, k := range keys {
		if schema, ok := KnownKeys[k]; ok {
			fields = append(fields, schema.Field)
		}
	}
	return fields
}

// unknownKeys returns, sorted, the keys that are not in KnownKeys.
func unknownKeys(keys []string) []string {
	var out []string
	for _, k := range keys {
		if _, ok := KnownKeys[k]; !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
