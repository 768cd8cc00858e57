// Package deprecationextractor generates a deprecated-operations manifest
// from an OpenAPI specification document. It loads the document from a URL
// or local path, extracts every operation marked deprecated together with
// a migration hint, and renders a Python data module that client helper
// code imports to warn callers before they hit a removed endpoint.
//
// The CLI lives in cmd/deprecation-extractor; this root package exposes
// the same pipeline as a Go API so that callers can embed generation in
// their own tools without shelling out.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named deprecationextractor:
//
//	import "github.com/novainsilico/deprecation-extractor" // package deprecationextractor
//
// # Quick start
//
//	result, err := deprecationextractor.Run(deprecationextractor.Options{
//	    SpecSource: "https://api.jinko.ai/openapi.json",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result.Manifest.Write("jinko_helpers/deprecated_operations.py")
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
//
// # Migration hints
//
// For each deprecated operation the extractor resolves a hint with a fixed
// precedence: the x-migration vendor extension wins when present; failing
// that, the first of description then summary whose text mentions "use "
// or "deprecated" is carried over verbatim. Operations with neither get an
// entry without a migration field.
package deprecationextractor
