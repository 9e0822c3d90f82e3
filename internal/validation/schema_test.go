// Package validation_test tests record schema definitions and type parsing.
// Related: internal/validation/schema.go
// Tags: validation, schema, doc, entry, enum
package validation

import (
	"reflect"
	"testing"
)

func TestGetSchema_Doc(t *testing.T) {
	schema, err := GetSchema(SchemaTypeDoc)
	if err != nil {
		t.Fatalf("GetSchema(doc) returned error: %v", err)
	}
	if schema.Type != SchemaTypeDoc {
		t.Errorf("schema.Type = %q, want %q", schema.Type, SchemaTypeDoc)
	}

	want := []string{"id", "title", "category", "language", "version", "created_at"}
	if got := schema.RequiredFields(); !reflect.DeepEqual(got, want) {
		t.Errorf("RequiredFields() = %v, want %v", got, want)
	}
}

func TestGetSchema_Entry(t *testing.T) {
	schema, err := GetSchema(SchemaTypeEntry)
	if err != nil {
		t.Fatalf("GetSchema(entry) returned error: %v", err)
	}

	want := []string{"id", "error_type", "severity", "pattern", "fix_template", "tags"}
	if got := schema.RequiredFields(); !reflect.DeepEqual(got, want) {
		t.Errorf("RequiredFields() = %v, want %v", got, want)
	}

	// related_errors is described but optional
	found := false
	for _, f := range schema.Fields {
		if f.Name == "related_errors" {
			found = true
			if f.Required {
				t.Error("related_errors should be optional")
			}
		}
	}
	if !found {
		t.Error("entry schema missing related_errors field")
	}
}

func TestGetSchema_UnknownType(t *testing.T) {
	_, err := GetSchema(SchemaType("unknown"))
	if err == nil {
		t.Error("GetSchema(unknown) should return error")
	}
}

func TestParseSchemaType(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected SchemaType
		wantErr  bool
	}{
		"doc":                {input: "doc", expected: SchemaTypeDoc},
		"entry":              {input: "entry", expected: SchemaTypeEntry},
		"unknown":            {input: "pattern", wantErr: true},
		"DOC case-sensitive": {input: "DOC", wantErr: true},
		"empty string":       {input: "", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseSchemaType(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseSchemaType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if got != tt.expected {
				t.Errorf("ParseSchemaType(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestValidSchemaTypes(t *testing.T) {
	types := ValidSchemaTypes()
	for _, typ := range types {
		if _, err := ParseSchemaType(typ); err != nil {
			t.Errorf("ValidSchemaTypes() lists unparseable type %q", typ)
		}
	}
	if len(types) != 2 {
		t.Errorf("ValidSchemaTypes() returned %d types, want 2", len(types))
	}
}

func TestSchemaEnums(t *testing.T) {
	tests := map[string]struct {
		schema *Schema
		field  string
		want   []string
	}{
		"severity": {schema: &EntrySchema, field: "severity", want: Severities},
		"category": {schema: &DocSchema, field: "category", want: Categories},
		"language": {schema: &DocSchema, field: "language", want: Languages},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			for _, f := range tt.schema.Fields {
				if f.Name == tt.field {
					if !reflect.DeepEqual(f.Enum, tt.want) {
						t.Errorf("%s enum = %v, want %v", tt.field, f.Enum, tt.want)
					}
					return
				}
			}
			t.Errorf("field %s not found", tt.field)
		})
	}
}

func TestSchemaField_HasDescription(t *testing.T) {
	for _, schema := range []*Schema{&DocSchema, &EntrySchema} {
		if schema.Description == "" {
			t.Errorf("%s schema missing description", schema.Type)
		}
		for _, field := range schema.Fields {
			if field.Description == "" {
				t.Errorf("%s.%s field missing description", schema.Type, field.Name)
			}
		}
	}
}
