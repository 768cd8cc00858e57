package deprecationextractor

import (
	"fmt"
	"net/http"

	"github.com/novainsilico/deprecation-extractor/pkg/extractor"
	"github.com/novainsilico/deprecation-extractor/pkg/manifest"
	"github.com/novainsilico/deprecation-extractor/pkg/openapi"
)

// Defaults for the two invocation parameters. The output path points into
// the consuming Python helper package's source tree, where the generated
// module is committed alongside the code that imports it.
const (
	DefaultSpecSource = "https://api.jinko.ai/openapi.json"
	DefaultOutputPath = "jinko_helpers/deprecated_operations.py"
)

// Options configures a generation run.
type Options struct {
	SpecSource string       // URL or file path of the OpenAPI document
	HTTPClient *http.Client // nil = default client
	Logger     Logger       // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the generation output. Writing the artifact to disk is
// left to the caller (the CLI writes it to its output-path argument).
type Result struct {
	Manifest *manifest.Manifest
	Artifact string // rendered Python module text
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

// Run executes the generation pipeline: load the specification, extract
// its deprecated operations, and render the manifest. Each run is a pure
// function of (spec source, current time); no state survives between runs.
func Run(opts Options) (*Result, error) {
	// Apply defaults.
	if opts.SpecSource == "" {
		opts.SpecSource = DefaultSpecSource
	}

	opts.logInfo("Loading specification from %s...", opts.SpecSource)
	doc, err := openapi.NewClient(opts.HTTPClient).Load(opts.SpecSource)
	if err != nil {
		return nil, fmt.Errorf("load specification: %w", err)
	}

	opts.logInfo("Scanning operations for deprecations...")
	operations := extractor.Extract(doc)
	if len(operations) == 0 {
		opts.logWarn("No deprecated operations found")
	} else {
		opts.logInfo("Found %d deprecated operation(s)", len(operations))
	}

	opts.logInfo("Rendering manifest...")
	m := manifest.New(opts.SpecSource, operations)

	return &Result{
		Manifest: m,
		Artifact: m.Render(),
	}, nil
}
