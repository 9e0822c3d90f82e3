// Package registry loads the KB registry content tree: markdown documents with a
// YAML frontmatter header and YAML files holding lists of error entries.
package registry

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind discriminates the record types stored in the registry.
type Kind string

const (
	// KindPattern is a coding/architecture pattern document (patterns/).
	KindPattern Kind = "pattern-doc"
	// KindDecision is an architecture decision record (adrs/).
	KindDecision Kind = "decision-doc"
	// KindReference is a reference document (docs/).
	KindReference Kind = "reference-doc"
	// KindBehavior is a behavioral guideline document (behavioral/).
	KindBehavior Kind = "behavior-doc"
	// KindErrorEntry is one entry of an errors/**/*.yml list.
	KindErrorEntry Kind = "error-entry"
)

// IsDoc reports whether records of this kind come from a frontmatter header.
func (k Kind) IsDoc() bool {
	return k != KindErrorEntry
}

// DocDir maps a document kind to the registry subdirectory holding it.
type DocDir struct {
	Dir  string
	Kind Kind
}

// DocDirs lists the document directories in scan order.
var DocDirs = []DocDir{
	{Dir: "patterns", Kind: KindPattern},
	{Dir: "adrs", Kind: KindDecision},
	{Dir: "docs", Kind: KindReference},
	{Dir: "behavioral", Kind: KindBehavior},
}

const (
	nullTag  = "!!null"
	mergeTag = "!!merge"
)

// ErrorsDir holds the error entry lists, one subdirectory per language.
const ErrorsDir = "errors"

const (
	// DocExt is the extension of document files.
	DocExt = ".md"
	// EntryExt is the extension of error entry list files.
	EntryExt = ".yml"
)

// Record is one parsed unit of registry content. Records are never mutated
// after the loader creates them.
type Record struct {
	Kind  Kind
	Path  string // slash-separated path relative to the registry root
	Index int    // position inside an entry list; -1 for documents
	Line  int    // 1-based line of the mapping in its source file

	fields map[string]*yaml.Node
	keys   []string
}

// newRecord builds a record from a YAML mapping node.
func newRecord(kind Kind, path string, index int, mapping *yaml.Node) *Record {
	r := &Record{
		Kind:   kind,
		Path:   path,
		Index:  index,
		Line:   mapping.Line,
		fields: make(map[string]*yaml.Node, len(mapping.Content)/2),
	}
	for _, p := range flattenMapping(mapping, map[*yaml.Node]bool{}) {
		key := p.key.Value
		if _, seen := r.fields[key]; !seen {
			r.keys = append(r.keys, key)
		}
		r.fields[key] = p.value
	}
	return r
}

type fieldPair struct {
	key, value *yaml.Node
}

// flattenMapping returns the key/value pairs of a mapping with "<<" merge
// keys expanded. Later pairs override earlier ones: merged fields come first,
// and of several merged mappings the first listed wins.
func flattenMapping(mapping *yaml.Node, visiting map[*yaml.Node]bool) []fieldPair {
	if visiting[mapping] {
		return nil
	}
	visiting[mapping] = true
	defer delete(visiting, mapping)

	var merged, own []fieldPair
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key, value := mapping.Content[i], resolveAlias(mapping.Content[i+1])
		if key.Kind != yaml.ScalarNode || key.ShortTag() != mergeTag {
			own = append(own, fieldPair{key: key, value: value})
			continue
		}
		switch value.Kind {
		case yaml.MappingNode:
			merged = append(merged, flattenMapping(value, visiting)...)
		case yaml.SequenceNode:
			for j := len(value.Content) - 1; j >= 0; j-- {
				if src := resolveAlias(value.Content[j]); src.Kind == yaml.MappingNode {
					merged = append(merged, flattenMapping(src, visiting)...)
				}
			}
		default:
			own = append(own, fieldPair{key: key, value: value})
		}
	}
	return append(merged, own...)
}

// Has reports whether the field is present, even when its value is null.
func (r *Record) Has(field string) bool {
	_, ok := r.fields[field]
	return ok
}

// Keys returns the field names in source order.
func (r *Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Missing returns the required fields absent from the record, sorted.
func (r *Record) Missing(required []string) []string {
	var missing []string
	for _, f := range required {
		if !r.Has(f) {
			missing = append(missing, f)
		}
	}
	sort.Strings(missing)
	return missing
}

// Value returns the scalar source text of a field. Null, missing and
// non-scalar values yield "".
func (r *Record) Value(field string) string {
	n, ok := r.fields[field]
	if !ok || n == nil || n.Kind != yaml.ScalarNode || n.ShortTag() == nullTag {
		return ""
	}
	return n.Value
}

// Text is Value with surrounding whitespace removed.
func (r *Record) Text(field string) string {
	return strings.TrimSpace(r.Value(field))
}

// ID returns the record identifier.
func (r *Record) ID() string {
	return r.Text("id")
}

// DisplayID returns the identifier or "?" when the record has none.
func (r *Record) DisplayID() string {
	if id := r.Value("id"); id != "" {
		return id
	}
	return "?"
}

// List returns the items of a sequence field as text. A null or missing field
// yields nil; a lone scalar is treated as a single-item list. Mapping and
// sequence items are rendered in YAML flow style.
func (r *Record) List(field string) []string {
	n, ok := r.fields[field]
	if !ok || n == nil {
		return nil
	}
	switch n.Kind {
	case yaml.SequenceNode:
		out := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			item = resolveAlias(item)
			if item.Kind == yaml.ScalarNode {
				out = append(out, item.Value)
				continue
			}
			out = append(out, flowText(item))
		}
		return out
	case yaml.ScalarNode:
		if n.ShortTag() == nullTag || n.Value == "" {
			return nil
		}
		return []string{n.Value}
	default:
		return nil
	}
}

// Location describes where the record was declared, for report messages.
func (r *Record) Location() string {
	if r.Kind.IsDoc() {
		return fmt.Sprintf("%s (frontmatter)", r.Path)
	}
	return r.Path
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// flowText renders a node on one line in YAML flow style.
func flowText(n *yaml.Node) string {
	flow := *n
	flow.Style |= yaml.FlowStyle
	flow.Anchor = ""
	flow.HeadComment, flow.LineComment, flow.FootComment = "", "", ""
	out, err := yaml.Marshal(&flow)
	if err != nil {
		return fmt.Sprintf("<%s>", n.ShortTag())
	}
	return strings.TrimSpace(string(out))
}
