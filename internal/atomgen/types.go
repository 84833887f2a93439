package atomgen

import "go.uber.org/zap"

// BuildConfig holds build configuration
type BuildConfig struct {
	Paths        []string    // ["web/**/*.templ", "web/**/*.go"]
	Output       string      // "web/static/atoms.css" (empty: don't write)
	HTMLFile     string      // "web/index.html" (empty: don't inject)
	Manifest     string      // "web/static/atoms.json" (empty: don't write)
	ClassPrefix  string      // "z-"
	ElementID    string      // "__css__"
	VendorPrefix bool        // Emit vendor prefixed variants (default: true)
	Logger       *zap.Logger // Optional, defaults to a no-op logger
}

// BuildResult contains build stats
type BuildResult struct {
	FilesScanned      int
	CallsFound        int
	DeclarationsFound int
	ClassesGenerated  int
	CSS               string // Flushed stylesheet
	Manifest          []ManifestEntry
	Warnings          []string
	Errors            []error // One per failing declaration
}

// ManifestEntry maps one declaration to its class
type ManifestEntry struct {
	Declaration string `json:"declaration"`
	ClassName   string `json:"class"`
	Body        string `json:"body"`
}

// OutputFormat represents the linter output format
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows statistics and top declarations only
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues + statistics + top declarations
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
	// OutputMarkdown generates a Markdown report (shareable reports)
	OutputMarkdown OutputFormat = "markdown"
)
