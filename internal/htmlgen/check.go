package htmlgen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// CheckResult holds the outcome of comparing generated files on disk with
// what the current tables produce
type CheckResult struct {
	FilesChecked int
	FilesStale   int
	FilesMissing int
	ErrorCount   int
	WarningCount int
	Issues       []Issue
}

// Check regenerates every target in memory and reports drift from the files
// on disk. Table warnings are reported as warning issues against the table.
func Check(config Config) (*CheckResult, error) {
	config = config.withDefaults()

	table, _, err := LoadTable(config)
	if err != nil {
		return nil, err
	}
	warnings, err := AnalyzeTable(table, config.Targets())
	if err != nil {
		return nil, fmt.Errorf("analyze failed: %w", err)
	}

	result := &CheckResult{}
	for _, w := range warnings {
		result.addIssue(Issue{
			FromLinter: LinterName,
			Text:       fmt.Sprintf(IssueTableRow, w),
			Severity:   SeverityWarning,
			Pos:        IssuePos{Filename: warningSource(w)},
		})
	}

	for _, target := range config.Targets() {
		want, err := RenderFile(table, target, config)
		if err != nil {
			return nil, err
		}

		path := targetPath(target, config)
		result.FilesChecked++

		// #nosec G304 - path comes from trusted configuration
		got, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			result.FilesMissing++
			result.addIssue(Issue{
				FromLinter: LinterName,
				Text:       IssueMissingFile,
				Severity:   SeverityError,
				Pos:        IssuePos{Filename: path, Line: 1, Column: 1},
			})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		if issue, stale := diffGenerated(path, want, got); stale {
			result.FilesStale++
			result.addIssue(issue)
		}
	}

	return result, nil
}

func (r *CheckResult) addIssue(issue Issue) {
	switch issue.Severity {
	case SeverityError:
		r.ErrorCount++
	case SeverityWarning:
		r.WarningCount++
	}
	r.Issues = append(r.Issues, issue)
}

// diffGenerated locates the first line where got departs from want
func diffGenerated(path string, want, got []byte) (Issue, bool) {
	if bytes.Equal(want, got) {
		return Issue{}, false
	}

	wantLines := strings.Split(string(want), "\n")
	gotLines := strings.Split(string(got), "\n")

	issue := Issue{
		FromLinter: LinterName,
		Severity:   SeverityError,
		Pos:        IssuePos{Filename: path},
	}

	for i := 0; i < len(wantLines); i++ {
		if i >= len(gotLines) {
			issue.Pos.Line = len(gotLines)
			issue.Pos.Column = 1
			issue.Text = fmt.Sprintf(IssueStaleFile, strings.TrimSpace(wantLines[i]))
			return issue, true
		}
		if wantLines[i] != gotLines[i] {
			issue.Pos.Line = i + 1
			issue.Pos.Column = firstDiff(wantLines[i], gotLines[i]) + 1
			issue.SourceLines = []string{gotLines[i]}
			issue.Text = fmt.Sprintf(IssueStaleFile, strings.TrimSpace(wantLines[i]))
			return issue, true
		}
	}

	// got has everything want has, plus more
	issue.Pos.Line = len(wantLines) + 1
	issue.Pos.Column = 1
	issue.Text = fmt.Sprintf(IssueExtraLines, len(gotLines)-len(wantLines))
	if issue.Pos.Line <= len(gotLines) {
		issue.SourceLines = []string{gotLines[issue.Pos.Line-1]}
	}
	return issue, true
}

// firstDiff returns the byte offset of the first difference between a and b
func firstDiff(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// warningSource extracts the table file name from an analyzer warning
func warningSource(warning string) string {
	if idx := strings.Index(warning, " row "); idx > 0 {
		return warning[:idx]
	}
	return ""
}
