package config

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

type fileFormat int

const (
	formatJSON fileFormat = iota
	formatYAML
	formatTOML
)

// SupportedExtensions lists the config file extensions kbreg can read.
var SupportedExtensions = []string{".json", ".yml", ".yaml", ".toml"}

func formatOf(path string) (fileFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON, nil
	case ".yml", ".yaml":
		return formatYAML, nil
	case ".toml":
		return formatTOML, nil
	default:
		return 0, &ValidationError{
			FilePath: path,
			Message: fmt.Sprintf("unsupported config format %q (supported: %s)",
				filepath.Ext(path), strings.Join(SupportedExtensions, ", ")),
		}
	}
}

// ParserFor returns the koanf parser for the config file at path, chosen by
// extension.
func ParserFor(path string) (koanf.Parser, error) {
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	switch format {
	case formatYAML:
		return YAMLParser{}, nil
	case formatTOML:
		return TOMLParser{}, nil
	default:
		return json.Parser(), nil
	}
}

// YAMLParser implements koanf.Parser with gopkg.in/yaml.v3.
type YAMLParser struct{}

// Unmarshal parses YAML bytes into a key/value map. An empty document is an
// empty map.
func (YAMLParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	out := map[string]interface{}{}
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Marshal renders a key/value map as YAML.
func (YAMLParser) Marshal(m map[string]interface{}) ([]byte, error) {
	return yaml.Marshal(m)
}

// TOMLParser implements koanf.Parser with github.com/BurntSushi/toml.
type TOMLParser struct{}

// Unmarshal parses TOML bytes into a key/value map.
func (TOMLParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	out := map[string]interface{}{}
	if err := toml.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Marshal renders a key/value map as TOML.
func (TOMLParser) Marshal(m map[string]interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
