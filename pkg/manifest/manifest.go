package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/novainsilico/deprecation-extractor/pkg/extractor"
)

// ConstantName is the name of the single constant the generated module
// exports. Consumers import it and build their own lookup by
// (http_method, path).
const ConstantName = "DEPRECATED_OPERATIONS"

// Manifest is one generation run's output: the ordered deprecated
// operations plus provenance. It is constructed once, rendered, written,
// and discarded; the emitted artifact is the only persistent trace.
type Manifest struct {
	// Source is the locator the specification was loaded from, recorded
	// in the artifact's provenance header.
	Source string

	// GeneratedAt is the UTC generation timestamp.
	GeneratedAt time.Time

	// Operations is the ordered entry list exactly as extracted.
	Operations []extractor.DeprecatedOperation
}

// EmitError reports a failure to write the generated artifact.
type EmitError struct {
	Path string
	Err  error
}

func (e *EmitError) Error() string {
	return fmt.Sprintf("write manifest %q: %v", e.Path, e.Err)
}

func (e *EmitError) Unwrap() error { return e.Err }

// New builds a manifest for the given entries, stamping the current UTC
// time as provenance.
func New(source string, operations []extractor.DeprecatedOperation) *Manifest {
	return &Manifest{
		Source:      source,
		GeneratedAt: time.Now().UTC(),
		Operations:  operations,
	}
}

// Render produces the generated Python data module. The module exposes a
// single constant bound to the literal entry list, with provenance
// comments above it:
//
//	# generated from: https://example.com/openapi.json
//	# timestamp: 2025-01-02T03:04:05Z
//
//	DEPRECATED_OPERATIONS = [
//	    {"http_method": "GET", "path": "/v1/things", "migration": "Use /v2/things"},
//	]
//
//	__all__ = ["DEPRECATED_OPERATIONS"]
//
// Each record literal is valid JSON as well as valid Python, with string
// escaping delegated to encoding/json; loading the module yields values
// field-for-field equal to the in-memory entries, in the same order.
func (m *Manifest) Render() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# generated from: %s\n", m.Source)
	fmt.Fprintf(&sb, "# timestamp: %s\n\n", m.GeneratedAt.Format(time.RFC3339))

	sb.WriteString(ConstantName + " = [\n")
	for _, op := range m.Operations {
		sb.WriteString("    " + renderRecord(op) + ",\n")
	}
	sb.WriteString("]\n\n")

	fmt.Fprintf(&sb, "__all__ = [%q]\n", ConstantName)

	return sb.String()
}

// Write renders the manifest and overwrites the destination file
// unconditionally. There is no merge with a previous version and no
// retry; an unwritable destination aborts the run.
func (m *Manifest) Write(path string) error {
	if err := os.WriteFile(path, []byte(m.Render()), 0644); err != nil {
		return &EmitError{Path: path, Err: err}
	}
	return nil
}

// renderRecord renders one entry as a dict literal. Optional fields are
// omitted when unresolved, never rendered as empty strings: their absence
// tells the consumer no hint was available.
func renderRecord(op extractor.DeprecatedOperation) string {
	fields := []string{
		`"http_method": ` + quote(op.HTTPMethod),
		`"path": ` + quote(op.Path),
	}
	if op.Migration != "" {
		fields = append(fields, `"migration": `+quote(op.Migration))
	}
	if op.DocsURL != "" {
		fields = append(fields, `"docs_url": `+quote(op.DocsURL))
	}
	return "{" + strings.Join(fields, ", ") + "}"
}

// quote encodes a string with JSON escaping, which Python accepts as-is.
func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
