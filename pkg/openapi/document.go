package openapi

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"
)

// Document is a parsed OpenAPI specification. The underlying node tree
// preserves the key order of every mapping exactly as it appears in the
// source text, which is what keeps generated manifests in document order.
//
// Unrecognized top-level fields are simply never looked at; a Document
// makes no attempt to validate the specification against the OpenAPI
// schema.
type Document struct {
	// Source is the locator the document was loaded from (URL or path).
	Source string

	root *yaml.Node
}

// LoadError reports a failure to obtain or parse a specification document.
// Any load failure is fatal to a generation run; no partial document ever
// reaches the extractor.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load specification %q: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load obtains a specification document from a source locator and parses
// it. Locators starting with http:// or https:// are fetched over the
// network in a single attempt; anything else is read as a local file.
func (c *Client) Load(source string) (*Document, error) {
	var (
		data []byte
		err  error
	)

	if IsURL(source) {
		data, err = c.fetch(source)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}

	return Parse(source, data)
}

// Load is a convenience wrapper around NewClient(nil).Load.
func Load(source string) (*Document, error) {
	return NewClient(nil).Load(source)
}

// Parse decodes raw specification text into a Document. YAML is accepted
// as a superset of JSON, so both serializations of a specification parse
// through the same path.
func Parse(source string, data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("parse document: %w", err)}
	}

	return &Document{Source: source, root: &root}, nil
}

// Root returns the top-level mapping of the document, or nil when the
// document is empty or its root is not a mapping.
func (d *Document) Root() *yaml.Node {
	node := d.root
	if node != nil && node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if !IsMapping(node) {
		return nil
	}
	return node
}

// Paths returns the node of the top-level paths mapping. A missing paths
// field yields nil, which walks as an empty mapping rather than an error.
func (d *Document) Paths() *yaml.Node {
	return MapValue(d.Root(), "paths")
}
