package extractor

import (
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/novainsilico/deprecation-extractor/pkg/openapi"
)

// Vendor extension fields consulted on each operation. The migration
// extension carries an explicit, author-intentional migration instruction
// and always takes precedence over prose scanned out of description or
// summary text.
const (
	MigrationExtension = "x-migration"
	DocsURLExtension   = "x-docs-url"
)

// recognizedMethods is the closed set of path-item keys that name HTTP
// operations. Everything else under a path item (parameters, $ref, vendor
// extensions) is never an operation, even when shaped like one.
var recognizedMethods = map[string]bool{
	"get":     true,
	"post":    true,
	"put":     true,
	"patch":   true,
	"delete":  true,
	"options": true,
	"head":    true,
	"trace":   true,
}

// DeprecatedOperation describes one operation the specification marks as
// deprecated. Migration and DocsURL are optional; empty means the source
// document offered no hint, and the field is then omitted from the
// generated manifest entirely rather than emitted as an empty string.
//
// The json tags double as the manifest record field names.
type DeprecatedOperation struct {
	HTTPMethod string `json:"http_method"`
	Path       string `json:"path"`
	Migration  string `json:"migration,omitempty"`
	DocsURL    string `json:"docs_url,omitempty"`
}

// Extract walks the document's paths and returns one entry per operation
// with deprecated set to boolean true, in document order: paths in the
// order they appear, and methods in key order within each path. Entries
// are never deduplicated or reordered.
//
// Malformed sub-structures (a path whose value is not a mapping, an
// operation that is not a mapping) are skipped silently; a third-party
// document with a few broken entries still yields a manifest for the rest.
func Extract(doc *openapi.Document) []DeprecatedOperation {
	var ops []DeprecatedOperation

	for _, path := range openapi.Pairs(doc.Paths()) {
		if !openapi.IsMapping(path.Value) {
			continue
		}

		for _, method := range openapi.Pairs(path.Value) {
			if !recognizedMethods[strings.ToLower(method.Key)] {
				continue
			}
			if !openapi.IsMapping(method.Value) {
				continue
			}
			if !openapi.IsTrue(openapi.MapValue(method.Value, "deprecated")) {
				continue
			}

			op := DeprecatedOperation{
				HTTPMethod: strings.ToUpper(method.Key),
				Path:       path.Key,
				Migration:  resolveMigration(method.Value),
			}
			if url, ok := openapi.StringValue(openapi.MapValue(method.Value, DocsURLExtension)); ok {
				op.DocsURL = url
			}

			ops = append(ops, op)
		}
	}

	return ops
}

// resolveMigration picks the migration hint for a deprecated operation.
// Precedence, first match wins:
//
//  1. the x-migration extension, verbatim, when it is a text value;
//  2. the first of description then summary that is text and contains
//     "use " or "deprecated" (case-insensitive match, original text kept).
//
// When description contains either signal word it wins unconditionally and
// summary is never consulted, even if summary holds better guidance. That
// asymmetry is long-standing observable behavior; keep it.
//
// Returns "" when no hint resolves.
func resolveMigration(operation *yaml.Node) string {
	if text, ok := openapi.StringValue(openapi.MapValue(operation, MigrationExtension)); ok {
		return text
	}

	for _, field := range []string{"description", "summary"} {
		text, ok := openapi.StringValue(openapi.MapValue(operation, field))
		if !ok {
			continue
		}
		lower := strings.ToLower(text)
		if strings.Contains(lower, "use ") || strings.Contains(lower, "deprecated") {
			return text
		}
	}

	return ""
}
