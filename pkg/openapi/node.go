package openapi

import (
	"strings"

	"go.yaml.in/yaml/v4"
)

// Helpers for walking a parsed document tree permissively: a node with an
// unexpected shape reads as absent, never as an error. Third parties
// produce specification documents with all kinds of minor nonconformance,
// and extraction tolerates that by skipping rather than failing.

// Pair is one key/value entry of a mapping node, in document order.
type Pair struct {
	Key   string
	Value *yaml.Node
}

// Pairs returns the entries of a mapping node in their original document
// order. Non-mapping nodes (including nil) yield no entries. Entries with
// non-scalar keys are skipped.
func Pairs(node *yaml.Node) []Pair {
	node = resolve(node)
	if !IsMapping(node) {
		return nil
	}

	pairs := make([]Pair, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Kind != yaml.ScalarNode {
			continue
		}
		pairs = append(pairs, Pair{Key: node.Content[i].Value, Value: node.Content[i+1]})
	}
	return pairs
}

// MapValue returns the value node for a key in a mapping node, or nil when
// the node is not a mapping or the key is absent.
func MapValue(node *yaml.Node, key string) *yaml.Node {
	node = resolve(node)
	if !IsMapping(node) {
		return nil
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Kind == yaml.ScalarNode && node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// StringValue returns the text of a scalar string node. Non-string scalars
// (numbers, booleans, null) report false: a field documented as text is
// only honored when it actually is text.
func StringValue(node *yaml.Node) (string, bool) {
	node = resolve(node)
	if node == nil || node.Kind != yaml.ScalarNode || node.Tag != "!!str" {
		return "", false
	}
	return node.Value, true
}

// IsTrue reports whether a node is the boolean value true. The check is by
// boolean identity: the string "true" or the number 1 never qualify.
func IsTrue(node *yaml.Node) bool {
	node = resolve(node)
	if node == nil || node.Kind != yaml.ScalarNode || node.Tag != "!!bool" {
		return false
	}
	return strings.EqualFold(node.Value, "true")
}

// IsMapping reports whether a node is a mapping.
func IsMapping(node *yaml.Node) bool {
	node = resolve(node)
	return node != nil && node.Kind == yaml.MappingNode
}

// resolve follows alias nodes to their anchor target.
func resolve(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	return node
}
