package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the file `config set` writes when no --config is given.
const DefaultConfigFile = "kbreg.yml"

// SetConfigValue sets key to value in the YAML config file at filePath,
// keeping the rest of the document (comments included) intact. The key and
// value are checked against KnownKeys first. The file is created if missing.
func SetConfigValue(filePath, key, value string) error {
	if err := ValidateValue(key, value); err != nil {
		return fmt.Errorf("validating %s: %w", key, err)
	}
	format, err := formatOf(filePath)
	if err != nil {
		return err
	}
	if format != formatYAML {
		return &ValidationError{FilePath: filePath, Message: "config set only writes YAML files"}
	}

	root, err := loadOrCreateYAML(filePath)
	if err != nil {
		return err
	}
	mapping, err := documentMapping(root)
	if err != nil {
		return err
	}
	setScalar(mapping, key, typedValue(KnownKeys[key].Type, value))

	content, err := yaml.Marshal(root)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	if err := writeAtomically(filePath, content); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// GetConfigValue returns the raw value of key in the YAML config file at
// filePath. found is false when the file or the key is absent.
func GetConfigValue(filePath, key string) (value string, found bool) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", false
	}
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return "", false
	}
	mapping, err := documentMapping(&root)
	if err != nil {
		return "", false
	}
	if i := findKeyIndex(mapping, key); i >= 0 {
		return mapping.Content[i+1].Value, true
	}
	return "", false
}

// typedValue converts a validated string into the Go value written to YAML.
func typedValue(typ ConfigValueType, value string) interface{} {
	if typ == TypeBool {
		b, _ := strconv.ParseBool(value)
		return b
	}
	return value
}

// documentMapping returns the top-level mapping of a parsed document,
// creating it when the document is empty.
func documentMapping(root *yaml.Node) (*yaml.Node, error) {
	if root.Kind == 0 {
		root.Kind = yaml.DocumentNode
	}
	switch root.Kind {
	case yaml.DocumentNode:
		if len(root.Content) == 0 {
			root.Content = append(root.Content, &yaml.Node{Kind: yaml.MappingNode})
		}
		if root.Content[0].Kind != yaml.MappingNode {
			return nil, errors.New("config file is not a mapping")
		}
		return root.Content[0], nil
	case yaml.MappingNode:
		return root, nil
	default:
		return nil, fmt.Errorf("root node must be document or mapping, got %v", root.Kind)
	}
}

// findKeyIndex finds the index of a key in a mapping node's content.
// Returns -1 if the key is not found.
func findKeyIndex(node *yaml.Node, key string) int {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return i
		}
	}
	return -1
}

// setScalar sets key in mapping, appending it when absent.
func setScalar(mapping *yaml.Node, key string, value interface{}) {
	var valueNode *yaml.Node
	if i := findKeyIndex(mapping, key); i >= 0 {
		valueNode = mapping.Content[i+1]
	} else {
		valueNode = &yaml.Node{}
		mapping.Content = append(mapping.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, valueNode)
	}

	valueNode.Kind = yaml.ScalarNode
	valueNode.Content = nil
	valueNode.Style = 0
	switch v := value.(type) {
	case bool:
		valueNode.Tag = "!!bool"
		valueNode.Value = strconv.FormatBool(v)
	default:
		valueNode.Tag = "!!str"
		valueNode.Value = fmt.Sprintf("%v", v)
	}
}

// loadOrCreateYAML loads a YAML file or creates an empty document node.
func loadOrCreateYAML(filePath string) (*yaml.Node, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &yaml.Node{
				Kind:    yaml.DocumentNode,
				Content: []*yaml.Node{{Kind: yaml.MappingNode}},
			}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := ValidateSyntax(data, filePath); err != nil {
		return nil, err
	}
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	return &root, nil
}

// writeAtomically writes content to a file atomically using a temporary file and rename.
// Creates parent directories if they don't exist.
func writeAtomically(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	tmpFile, err := os.CreateTemp(dir, ".config-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		// Clean up temp file on error
		if tmpPath != "" {
			os.Remove(tmpPath)
		}
	}()
	if _, err := tmpFile.Write(content); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing to temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}
	tmpPath = "" // Prevent cleanup since rename succeeded
	return nil
}
