package registry

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseStatus is the outcome of parsing one registry file.
type ParseStatus int

const (
	// ParseOK means the file produced its record(s).
	ParseOK ParseStatus = iota
	// ParseMalformedHeader means a document lacks the opening or closing --- marker.
	ParseMalformedHeader
	// ParseNotAMapping means a frontmatter header decoded to something other than a mapping.
	ParseNotAMapping
	// ParseNotAList means an entry file decoded to something other than a list.
	ParseNotAList
	// ParseYAMLError means the YAML itself could not be decoded.
	ParseYAMLError
	// ParseReadError means the file could not be read.
	ParseReadError
)

// String returns the string representation of ParseStatus
func (s ParseStatus) String() string {
	switch s {
	case ParseOK:
		return "ok"
	case ParseMalformedHeader:
		return "malformed_header"
	case ParseNotAMapping:
		return "not_a_mapping"
	case ParseNotAList:
		return "not_a_list"
	case ParseYAMLError:
		return "yaml_error"
	case ParseReadError:
		return "read_error"
	default:
		return "unknown"
	}
}

// headerMarker delimits a frontmatter block.
const headerMarker = "---"

// DocFile is the parse result of one markdown document.
type DocFile struct {
	Path   string
	Kind   Kind
	Status ParseStatus
	Detail string  // decoder message for ParseYAMLError / ParseReadError
	Record *Record // set only when Status == ParseOK
}

// EntryItem is one element of an entry list. Record is nil when the element
// is not a mapping.
type EntryItem struct {
	Index  int
	Line   int
	Record *Record
}

// EntryFile is the parse result of one error entry list.
type EntryFile struct {
	Path   string
	Status ParseStatus
	Detail string
	Items  []EntryItem // set only when Status == ParseOK
}

// extractHeader returns the text between the opening marker and the first
// line beginning with the closing marker.
func extractHeader(content []byte) ([]byte, bool) {
	if !bytes.HasPrefix(content, []byte(headerMarker)) {
		return nil, false
	}
	rest := content[len(headerMarker):]
	end := bytes.Index(rest, []byte("\n"+headerMarker))
	if end < 0 {
		return nil, false
	}
	return rest[:end], true
}

// ParseDoc parses the frontmatter header of a markdown document.
func ParseDoc(kind Kind, path string, content []byte) DocFile {
	doc := DocFile{Path: path, Kind: kind}

	header, ok := extractHeader(content)
	if !ok {
		doc.Status = ParseMalformedHeader
		return doc
	}

	root, err := decodeNode(header)
	if err != nil {
		doc.Status = ParseYAMLError
		doc.Detail = err.Error()
		return doc
	}

	switch {
	case root == nil || isNull(root):
		// An empty header is an empty mapping.
		root = &yaml.Node{Kind: yaml.MappingNode, Line: 1}
	case root.Kind != yaml.MappingNode:
		doc.Status = ParseNotAMapping
		return doc
	}

	doc.Status = ParseOK
	doc.Record = newRecord(kind, path, -1, root)
	return doc
}

// ParseEntryList parses an error entry file, which must hold a YAML list.
func ParseEntryList(path string, content []byte) EntryFile {
	file := EntryFile{Path: path}

	root, err := decodeNode(content)
	if err != nil {
		file.Status = ParseYAMLError
		file.Detail = err.Error()
		return file
	}
	if root == nil || root.Kind != yaml.SequenceNode {
		file.Status = ParseNotAList
		return file
	}

	file.Status = ParseOK
	file.Items = make([]EntryItem, 0, len(root.Content))
	for i, item := range root.Content {
		item = resolveAlias(item)
		entry := EntryItem{Index: i, Line: item.Line}
		if item.Kind == yaml.MappingNode {
			entry.Record = newRecord(KindErrorEntry, path, i, item)
		}
		file.Items = append(file.Items, entry)
	}
	return file
}

// Records returns the entry records of a successfully parsed file.
func (f EntryFile) Records() []*Record {
	out := make([]*Record, 0, len(f.Items))
	for _, item := range f.Items {
		if item.Record != nil {
			out = append(out, item.Record)
		}
	}
	return out
}

// errMultipleDocuments rejects streams holding more than one YAML document.
var errMultipleDocuments = errors.New("expected a single document in the stream")

// decodeNode decodes the only YAML document of data and returns its content
// node. Empty input returns a nil node and no error.
func decodeNode(data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w (second document at line %d)", errMultipleDocuments, extra.Line)
	}
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return nil, nil
		}
		return resolveAlias(doc.Content[0]), nil
	}
	return resolveAlias(&doc), nil
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == nullTag
}
