package main

import (
	"fmt"
	"os"

	deprecationextractor "github.com/novainsilico/deprecation-extractor"
	"github.com/novainsilico/deprecation-extractor/pkg/openapi"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = openapi.Version

func main() {
	rootCmd := &cobra.Command{
		Use:   "deprecation-extractor [spec-source] [output-path]",
		Short: "Generate a deprecated-operations manifest from an OpenAPI document",
		Long: "A tool that extracts deprecated operations and their migration hints from an " +
			"OpenAPI specification (URL or local file) and writes them as an importable " +
			"Python data module for runtime deprecation warnings",
		Args: cobra.MaximumNArgs(2),
		Run:  run,
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("deprecation-extractor version %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	cyan.Println("\nOpenAPI Deprecation Extractor")
	cyan.Println("=============================")
	cyan.Println()

	// Resolve the two positional parameters against their defaults.
	specSource := deprecationextractor.DefaultSpecSource
	outputPath := deprecationextractor.DefaultOutputPath
	if len(args) > 0 {
		specSource = args[0]
	}
	if len(args) > 1 {
		outputPath = args[1]
	}

	result, err := deprecationextractor.Run(deprecationextractor.Options{
		SpecSource: specSource,
		Logger:     &cliLogger{},
	})
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// Display extraction stats.
	operations := result.Manifest.Operations
	withMigration := 0
	withDocsURL := 0
	for _, op := range operations {
		if op.Migration != "" {
			withMigration++
		}
		if op.DocsURL != "" {
			withDocsURL++
		}
	}

	cyan.Println("\nExtraction Summary:")
	fmt.Printf("  • Deprecated operations: %d\n", len(operations))
	fmt.Printf("  • With migration hints: %d\n", withMigration)
	fmt.Printf("  • With docs links: %d\n", withDocsURL)

	green.Printf("\nWriting to %s... ", outputPath)
	if err := result.Manifest.Write(outputPath); err != nil {
		red.Printf("✗\n")
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	green.Println("✓")

	green.Printf("\nSuccessfully generated deprecation manifest at %s\n\n", outputPath)
}

// cliLogger implements deprecationextractor.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Printf("✗ "+format+"\n", args...)
}
