package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/htmldsl/internal/htmlgen"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate Go constructors from naming tables",
	Long: `Read the naming tables and write html/elements.gen.go,
attr/attributes.gen.go and css/properties.gen.go.
Without --tables the tables embedded in htmlgen are used.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringSlice("tables", nil, "Glob patterns for table files (default: embedded tables)")
	f.String("output-root", htmlgen.DefaultOutputRoot, "Module root holding the generated packages")
	f.String("html-dir", htmlgen.DefaultHTMLDir, "Directory of the element package, relative to output-root")
	f.String("attr-dir", htmlgen.DefaultAttrDir, "Directory of the attribute package, relative to output-root")
	f.String("css-dir", htmlgen.DefaultCSSDir, "Directory of the CSS package, relative to output-root")
	f.String("module", htmlgen.DefaultModule, "Import path of the module that holds the dom package")
	f.Bool("check", false, "Run check after generation")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	config := buildGenerateConfig()

	result, err := htmlgen.Generate(config)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)

	if !quiet {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Generated %d files in %s\n", len(result.Files), config.OutputRoot)
		fmt.Fprintf(out, "  Tables read: %d\n", result.TablesScanned)
		fmt.Fprintf(out, "  Elements: %d\n", result.ElementsGenerated)
		fmt.Fprintf(out, "  Attributes: %d\n", result.AttributesGenerated)
		fmt.Fprintf(out, "  CSS properties: %d\n", result.PropertiesGenerated)

		reporter := htmlgen.NewReporter(out, buildReportConfig())
		reporter.PrintWarnings(result.Warnings)
	}

	// Run check after generate if --check flag set
	check, _ := cmd.Flags().GetBool("check")
	if check {
		return runCheck(cmd, config)
	}

	return nil
}
