package validation

import (
	"fmt"
	"regexp"
)

// SchemaType names the record schema a file is validated against.
type SchemaType string

const (
	// SchemaTypeDoc covers every markdown document kind (patterns, adrs, docs, behavioral).
	SchemaTypeDoc SchemaType = "doc"
	// SchemaTypeEntry covers error entries in errors/**/*.yml.
	SchemaTypeEntry SchemaType = "entry"
)

// FieldType represents the expected type of a schema field.
type FieldType string

const (
	FieldTypeString FieldType = "string"
	FieldTypeDate   FieldType = "date"
	FieldTypeArray  FieldType = "array"
)

// SchemaField defines a field in a record schema.
type SchemaField struct {
	Name        string    // Field name in YAML
	Type        FieldType // Expected type
	Required    bool      // Whether field must be present
	Pattern     string    // Regex pattern for string validation (optional)
	Enum        []string  // Valid values for enum fields (optional)
	Description string    // Human-readable description
}

// Schema represents the complete schema for a record type.
type Schema struct {
	Type        SchemaType
	Description string
	Fields      []SchemaField
}

// Permitted values for the enumerated fields.
var (
	Severities = []string{"critical", "warning", "info"}
	Categories = []string{"pattern", "adr", "doc", "behavioral", "error"}
	Languages  = []string{"all", "python", "javascript", "typescript", "java", "go", "rust", "csharp"}
)

// SemverPattern is the accepted form of a version field.
const SemverPattern = `^\d+\.\d+\.\d+$`

var semverRe = regexp.MustCompile(SemverPattern)

// DocSchema defines the frontmatter schema for markdown documents.
var DocSchema = Schema{
	Type:        SchemaTypeDoc,
	Description: "Markdown document (pattern, ADR, reference doc or behavioral guide) with a YAML frontmatter header",
	Fields: []SchemaField{
		{Name: "id", Type: FieldTypeString, Required: true, Description: "Registry-wide unique identifier"},
		{Name: "title", Type: FieldTypeString, Required: true, Description: "Document title"},
		{Name: "category", Type: FieldTypeString, Required: true, Enum: Categories, Description: "Content category"},
		{Name: "language", Type: FieldTypeString, Required: true, Enum: Languages, Description: "Programming language the document applies to"},
		{Name: "version", Type: FieldTypeString, Required: true, Pattern: SemverPattern, Description: "Document version (X.Y.Z)"},
		{Name: "created_at", Type: FieldTypeDate, Required: true, Description: "Creation date"},
	},
}

// EntrySchema defines the schema for each item of an error entry list.
var EntrySchema = Schema{
	Type:        SchemaTypeEntry,
	Description: "Error entry describing a recognizable error pattern and its fix",
	Fields: []SchemaField{
		{Name: "id", Type: FieldTypeString, Required: true, Description: "Registry-wide unique identifier"},
		{Name: "error_type", Type: FieldTypeString, Required: true, Description: "Error class or type name"},
		{Name: "severity", Type: FieldTypeString, Required: true, Enum: Severities, Description: "Impact of the error"},
		{Name: "pattern", Type: FieldTypeString, Required: true, Description: "Text or regex matching the error message"},
		{Name: "fix_template", Type: FieldTypeString, Required: true, Description: "Suggested fix"},
		{Name: "tags", Type: FieldTypeArray, Required: true, Description: "Free-form classification tags"},
		{Name: "related_errors", Type: FieldTypeArray, Required: false, Description: "IDs of related error entries"},
	},
}

// RequiredFields returns the names of the required fields, in schema order.
func (s *Schema) RequiredFields() []string {
	var names []string
	for _, f := range s.Fields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// GetSchema returns the schema for the given schema type.
func GetSchema(schemaType SchemaType) (*Schema, error) {
	switch schemaType {
	case SchemaTypeDoc:
		return &DocSchema, nil
	case SchemaTypeEntry:
		return &EntrySchema, nil
	default:
		return nil, fmt.Errorf("unknown schema type: %s", schemaType)
	}
}

// ParseSchemaType parses a string into a SchemaType.
func ParseSchemaType(s string) (SchemaType, error) {
	switch s {
	case "doc":
		return SchemaTypeDoc, nil
	case "entry":
		return SchemaTypeEntry, nil
	default:
		return "", fmt.Errorf("invalid schema type: %s (valid types: doc, entry)", s)
	}
}

// ValidSchemaTypes returns a list of valid schema type strings.
func ValidSchemaTypes() []string {
	return []string{"doc", "entry"}
}
