package htmlgen

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCaretIndicator(t *testing.T) {
	reporter := &Reporter{}

	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "tab-indented generated line",
			sourceLine: "\tTagDiv = \"div\"",
			column:     11,
			want:       "\t         ^", // tab + 9 spaces + caret
		},
		{
			name:       "start of line",
			sourceLine: "package html",
			column:     1,
			want:       "^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ^", // Pads to line length only
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reporter.buildCaretIndicator(tt.sourceLine, tt.column)
			require.Equal(t, tt.want, got)
		})
	}
}

func sampleResult() *CheckResult {
	result := &CheckResult{FilesChecked: 3, FilesStale: 1, FilesMissing: 1}
	result.addIssue(Issue{
		FromLinter:  LinterName,
		Text:        "generated file is stale, want: TagDiv = \"div\"",
		Severity:    SeverityError,
		SourceLines: []string{"\tTagDiv = \"dvi\""},
		Pos:         IssuePos{Filename: "html/elements.gen.go", Line: 9, Column: 12},
	})
	result.addIssue(Issue{
		FromLinter: LinterName,
		Text:       IssueMissingFile,
		Severity:   SeverityError,
		Pos:        IssuePos{Filename: "css/properties.gen.go", Line: 1, Column: 1},
	})
	result.addIssue(Issue{
		FromLinter: LinterName,
		Text:       `tables/a.yaml row 2: element "x" is not a known HTML name`,
		Severity:   SeverityWarning,
		Pos:        IssuePos{Filename: "tables/a.yaml"},
	})
	return result
}

func TestPrintIssues(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{w: &buf, printLines: true, printLinterName: true}

	reporter.PrintIssues(sampleResult().Issues)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	require.Len(t, lines, 5)
	assert.Equal(t, "css/properties.gen.go:1:1: "+IssueMissingFile+" (htmlgen)", lines[0])
	assert.Equal(t, `html/elements.gen.go:9:12: generated file is stale, want: TagDiv = "div" (htmlgen)`, lines[1])
	assert.Equal(t, "\t\tTagDiv = \"dvi\"", lines[2])
	assert.Equal(t, "\t\t          ^", lines[3])
	assert.True(t, strings.HasPrefix(lines[4], "tables/a.yaml: "), "warnings without a line print the file only")
}

func TestPrintSummary(t *testing.T) {
	t.Run("with errors and warnings", func(t *testing.T) {
		var buf bytes.Buffer
		reporter := &Reporter{w: &buf}
		reporter.PrintSummary(*sampleResult())

		out := buf.String()
		assert.Contains(t, out, "3 issues (2 errors, 1 warning):")
		assert.Contains(t, out, "* files checked: 3")
		assert.Contains(t, out, "* stale: 1")
		assert.Contains(t, out, "* missing: 1")
		assert.Contains(t, out, "Hint: Run htmlgen generate")
	})

	t.Run("clean", func(t *testing.T) {
		var buf bytes.Buffer
		reporter := &Reporter{w: &buf}
		reporter.PrintSummary(CheckResult{FilesChecked: 3})

		out := buf.String()
		assert.Contains(t, out, "0 issues:")
		assert.Contains(t, out, "Generated files are up to date")
		assert.NotContains(t, out, "Hint")
	})
}

func TestPrintWarnings(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{w: &buf}

	reporter.PrintWarnings(nil)
	assert.Empty(t, buf.String())

	reporter.PrintWarnings([]string{"first", "second"})
	assert.Equal(t, "2 warnings:\n  first\n  second\n", buf.String())
}

func TestPluralizeCount(t *testing.T) {
	assert.Equal(t, "1 file", pluralizeCount(1, "file", "files"))
	assert.Equal(t, "0 files", pluralizeCount(0, "file", "files"))
	assert.Equal(t, "7 files", pluralizeCount(7, "file", "files"))
}

func TestShouldUseColors(t *testing.T) {
	assert.True(t, ShouldUseColors(true))

	t.Setenv("FORCE_COLOR", "1")
	assert.True(t, ShouldUseColors(false))
}

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		formatFlag string
		quiet      bool
		expected   OutputFormat
	}{
		{name: "explicit quiet flag", formatFlag: "json", quiet: true, expected: OutputIssues},
		{name: "explicit issues format", formatFlag: "issues", expected: OutputIssues},
		{name: "explicit json format", formatFlag: "json", expected: OutputJSON},
		{name: "unknown falls back to issues", formatFlag: "markdown", expected: OutputIssues},
		{name: "empty", formatFlag: "", expected: OutputIssues},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, DetermineOutputFormat(tt.formatFlag, tt.quiet))
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, sampleResult(), OutputJSON, ReportConfig{}))

	var output JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, "1.0", output.Version)
	assert.NotEmpty(t, output.Timestamp)
	assert.Equal(t, JSONSummary{
		TotalIssues:  3,
		Errors:       2,
		Warnings:     1,
		FilesChecked: 3,
		FilesStale:   1,
		FilesMissing: 1,
	}, output.Summary)

	require.Len(t, output.Issues, 3)
	assert.Equal(t, "html/elements.gen.go", output.Issues[0].File)
	assert.Equal(t, "\tTagDiv = \"dvi\"", output.Issues[0].Source)
	assert.Equal(t, "htmlgen", output.Issues[0].Linter)
	assert.Empty(t, output.Issues[1].Source)
}

func TestWriteOutputIssues(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, sampleResult(), OutputIssues, ReportConfig{}))

	out := buf.String()
	assert.Contains(t, out, "html/elements.gen.go:9:12:")
	assert.Contains(t, out, "3 issues (2 errors, 1 warning):")
}

func TestLimitIssues(t *testing.T) {
	issues := []Issue{
		{Text: IssueMissingFile, Pos: IssuePos{Filename: "a"}},
		{Text: IssueMissingFile, Pos: IssuePos{Filename: "b"}},
		{Text: IssueMissingFile, Pos: IssuePos{Filename: "c"}},
		{Text: "stale", Pos: IssuePos{Filename: "d"}},
	}

	tests := []struct {
		name          string
		config        ReportConfig
		wantFiles     []string
		wantTruncated int
	}{
		{name: "unlimited", config: ReportConfig{}, wantFiles: []string{"a", "b", "c", "d"}},
		{name: "max issues", config: ReportConfig{MaxIssues: 2}, wantFiles: []string{"a", "b"}, wantTruncated: 2},
		{name: "max same issues", config: ReportConfig{MaxSameIssues: 1}, wantFiles: []string{"a", "d"}, wantTruncated: 2},
		{name: "both", config: ReportConfig{MaxIssues: 3, MaxSameIssues: 2}, wantFiles: []string{"a", "b"}, wantTruncated: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := limitIssues(issues, tt.config)
			var files []string
			for _, issue := range got {
				files = append(files, issue.Pos.Filename)
			}
			assert.Equal(t, tt.wantFiles, files)
			assert.Equal(t, tt.wantTruncated, truncated)
		})
	}
}

func TestWriteOutputTruncated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, sampleResult(), OutputIssues, ReportConfig{MaxIssues: 1}))

	out := buf.String()
	assert.Contains(t, out, "css/properties.gen.go:1:1:")
	assert.NotContains(t, out, "html/elements.gen.go:9:12:")
	assert.Contains(t, out, "... and 2 more issues not shown")
	assert.Contains(t, out, "3 issues (2 errors, 1 warning):", "the summary counts every issue")
}
