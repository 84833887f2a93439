package atomgen

// Issue represents a single linting violation in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "atomcss"
	Text        string   `json:"Text"`        // "duplicate declaration \"color:red\" in one call"
	Severity    string   `json:"Severity"`    // "warning" or "error"
	SourceLines []string `json:"SourceLines"` // the line holding the call
	Pos         IssuePos `json:"Pos"`
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "web/pages/home.templ"
	Line     int    `json:"Line"`     // 35
	Column   int    `json:"Column"`   // 15 (1-based, start of the declaration)
}

// LinterName is reported as FromLinter on every issue
const LinterName = "atomcss"

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue message formats
const (
	IssueDuplicateInCall = "duplicate declaration %q in one call"
	IssueQuotedSemicolon = "call %q splits a quoted string on ';'"
)
