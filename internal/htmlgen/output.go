package htmlgen

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// OutputFormat represents the check output format
type OutputFormat string

const (
	// OutputIssues shows issues in golangci-lint format followed by a summary
	OutputIssues OutputFormat = "issues"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat selects the output format from the flag value.
// Unknown values fall back to issues.
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Explicit -quiet flag wins (exit code only)
	if quiet {
		return OutputIssues
	}

	switch formatFlag {
	case "json":
		return OutputJSON
	default:
		return OutputIssues
	}
}

// WriteOutput writes the check result in the specified format
func WriteOutput(w io.Writer, result *CheckResult, format OutputFormat, config ReportConfig) error {
	switch format {
	case OutputJSON:
		return WriteJSON(w, result)
	default:
		reporter := NewReporter(w, config)

		// Sort a copy so truncation keeps the first issues in file order
		issues := append([]Issue(nil), result.Issues...)
		sortIssues(issues)
		shown, truncated := limitIssues(issues, config)
		reporter.PrintIssues(shown)
		if truncated > 0 {
			fmt.Fprintln(w, RenderStyle(StyleGray,
				fmt.Sprintf("... and %s not shown", pluralizeCount(truncated, "more issue", "more issues")), reporter.UseColors()))
		}

		reporter.PrintSummary(*result)
		return nil
	}
}

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Issues    []JSONIssue `json:"issues"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	FilesChecked int `json:"files_checked"`
	FilesStale   int `json:"files_stale"`
	FilesMissing int `json:"files_missing"`
}

// JSONIssue represents a single check issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"` // Optional source line
}

// WriteJSON writes the check result as JSON
func WriteJSON(w io.Writer, result *CheckResult) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts CheckResult to JSONOutput
func buildJSONOutput(result *CheckResult) JSONOutput {
	issues := make([]JSONIssue, 0, len(result.Issues))
	for _, issue := range result.Issues {
		ji := JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
		}
		if len(issue.SourceLines) > 0 {
			ji.Source = issue.SourceLines[0]
		}
		issues = append(issues, ji)
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       result.ErrorCount,
			Warnings:     result.WarningCount,
			FilesChecked: result.FilesChecked,
			FilesStale:   result.FilesStale,
			FilesMissing: result.FilesMissing,
		},
		Issues: issues,
	}
}
