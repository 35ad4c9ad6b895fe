package htmlgen

// Issue represents a single check finding in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "htmlgen"
	Text        string   `json:"Text"`        // "generated file is stale, want: ..."
	Severity    string   `json:"Severity"`    // "", "warning", "error"
	SourceLines []string `json:"SourceLines"` // Lines of the file on disk
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "attr/attributes.gen.go"
	Line     int    `json:"Line"`     // 35
	Column   int    `json:"Column"`   // 15 (1-based, first differing byte)
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// LinterName is reported in Issue.FromLinter
const LinterName = "htmlgen"

// Issue messages
const (
	IssueMissingFile = "generated file is missing, run htmlgen generate"
	IssueStaleFile   = "generated file is stale, want: %s"
	IssueExtraLines  = "generated file has %d unexpected trailing lines"
	IssueTableRow    = "%s"
)
