package htmlgen

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Reporter handles formatting and outputting check results
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// ReportConfig controls reporter output
type ReportConfig struct {
	UseColors        bool // Force colors on
	PrintIssuedLines bool // Show source lines with a caret under the issue
	PrintLinterName  bool // Show the (htmlgen) suffix
	MaxIssues        int  // Maximum issues to print (0=unlimited)
	MaxSameIssues    int  // Maximum issues with the same text to print (0=unlimited)
}

// NewReporter creates a new reporter with the given configuration
func NewReporter(w io.Writer, config ReportConfig) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       ShouldUseColors(config.UseColors),
		printLines:      config.PrintIssuedLines,
		printLinterName: config.PrintLinterName,
	}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintIssues outputs issues in golangci-lint format
func (r *Reporter) PrintIssues(issues []Issue) {
	sortIssues(issues)

	for _, issue := range issues {
		r.printIssue(issue)
	}
}

// sortIssues orders issues by file, then line, then column
func sortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})
}

// printIssue formats a single issue in golangci-lint style
func (r *Reporter) printIssue(issue Issue) {
	// Format: file:line:col: message (linter)
	location := issue.Pos.Filename + ":"
	if issue.Pos.Line > 0 {
		location = fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)
	}

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	style := StyleRed
	if issue.Severity == SeverityWarning {
		style = StyleYellow
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		RenderStyle(style, issue.Text, r.useColors),
		RenderStyle(StyleGray, linterSuffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}

		caret := r.buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.useColors))
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the column.
// Tabs in the prefix are kept so the caret lines up under tab-indented code.
func (r *Reporter) buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	prefix := sourceLine[:prefixLen]

	var padding strings.Builder
	for _, ch := range prefix {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintSummary outputs the issue count summary
func (r *Reporter) PrintSummary(result CheckResult) {
	total := len(result.Issues)

	fmt.Fprintln(r.w, "")

	if result.ErrorCount > 0 && result.WarningCount > 0 {
		fmt.Fprintf(r.w, "%s (%s, %s):\n",
			pluralizeCount(total, "issue", "issues"),
			pluralizeCount(result.ErrorCount, "error", "errors"),
			pluralizeCount(result.WarningCount, "warning", "warnings"))
	} else {
		fmt.Fprintf(r.w, "%s:\n", pluralizeCount(total, "issue", "issues"))
	}

	fmt.Fprintf(r.w, "* files checked: %d\n", result.FilesChecked)
	fmt.Fprintf(r.w, "* stale: %d\n", result.FilesStale)
	fmt.Fprintf(r.w, "* missing: %d\n", result.FilesMissing)

	if result.ErrorCount > 0 {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: Run htmlgen generate to refresh the generated files", r.useColors))
	} else {
		fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Generated files are up to date", r.useColors))
	}
}

// PrintWarnings outputs generation warnings
func (r *Reporter) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, pluralizeCount(len(warnings), "warning", "warnings")+":", r.useColors))
	for _, w := range warnings {
		fmt.Fprintf(r.w, "  %s\n", w)
	}
}

// limitIssues applies the max-issues and max-same-issues constraints and
// returns the kept issues with the number dropped
func limitIssues(issues []Issue, config ReportConfig) ([]Issue, int) {
	originalCount := len(issues)

	if config.MaxIssues > 0 && len(issues) > config.MaxIssues {
		issues = issues[:config.MaxIssues]
	}

	// Deduplication by message text
	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		if messageCounts[issue.Text] < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
