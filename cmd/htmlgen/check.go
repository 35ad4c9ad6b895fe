package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/htmldsl/internal/htmlgen"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that generated files match the naming tables",
	Long: `Regenerate every file in memory and compare it with the file on disk.
Missing or stale files are reported as errors; suspicious table rows as warnings.
Exits 1 when an error is found, or on any issue with --strict.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runCheck(cmd, buildGenerateConfig())
	},
}

func init() {
	f := checkCmd.Flags()
	f.StringSlice("tables", nil, "Glob patterns for table files (default: embedded tables)")
	f.String("output-root", htmlgen.DefaultOutputRoot, "Module root holding the generated packages")
	f.String("html-dir", htmlgen.DefaultHTMLDir, "Directory of the element package, relative to output-root")
	f.String("attr-dir", htmlgen.DefaultAttrDir, "Directory of the attribute package, relative to output-root")
	f.String("css-dir", htmlgen.DefaultCSSDir, "Directory of the CSS package, relative to output-root")
	f.String("module", htmlgen.DefaultModule, "Import path of the module that holds the dom package")
	f.String("output-format", "issues", "Output format: issues|json")
	f.Bool("strict", false, "Exit 1 on any issue, warnings included")
	f.Int("max-issues", 0, "Max issues to show (0=unlimited)")
	f.Int("max-same-issues", 0, "Max issues with the same message to show (0=unlimited)")
	f.Bool("print-lines", true, "Show the stale line under each issue")
	f.Bool("print-linter-name", true, "Show (htmlgen) suffix on issues")
}

// runCheck is shared between `htmlgen check` and `htmlgen generate --check`.
func runCheck(cmd *cobra.Command, config htmlgen.Config) error {
	result, err := htmlgen.Check(config)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "check.output-format", "")
	format := htmlgen.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		if err := htmlgen.WriteOutput(cmd.OutOrStdout(), result, format, buildReportConfig()); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	// Strict mode: any issue (error or warning) fails the build
	if getBoolWithFallback("strict", "check.strict", false) {
		if len(result.Issues) > 0 {
			return &exitError{code: 1}
		}
	} else if result.ErrorCount > 0 {
		return &exitError{code: 1}
	}

	return nil
}
