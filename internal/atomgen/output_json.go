package atomgen

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version         string                 `json:"version"`
	Timestamp       string                 `json:"timestamp"`
	Summary         JSONSummary            `json:"summary"`
	Stats           JSONStats              `json:"stats"`
	Issues          []JSONIssue            `json:"issues"`
	TopDeclarations []JSONDeclarationUsage `json:"top_declarations"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Truncated    int `json:"truncated"`
	FilesScanned int `json:"files_scanned"`
}

// JSONStats contains declaration usage statistics
type JSONStats struct {
	Calls              int     `json:"calls"`
	Declarations       int     `json:"declarations"`
	UniqueDeclarations int     `json:"unique_declarations"`
	CacheHits          int     `json:"cache_hits"`
	ReuseRatio         float64 `json:"reuse_ratio"`
}

// JSONIssue represents a single linting issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"`
}

// JSONDeclarationUsage is one reused declaration
type JSONDeclarationUsage struct {
	Declaration string `json:"declaration"`
	Class       string `json:"class"`
	Occurrences int    `json:"occurrences"`
}

// WriteJSON writes the lint result as JSON
func WriteJSON(w io.Writer, result *LintResult) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts LintResult to JSONOutput
func buildJSONOutput(result *LintResult) JSONOutput {
	var errors, warnings int
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}

	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		jsonIssues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	top := make([]JSONDeclarationUsage, len(result.TopDeclarations))
	for i, usage := range result.TopDeclarations {
		top[i] = JSONDeclarationUsage{
			Declaration: usage.Declaration,
			Class:       usage.ClassName,
			Occurrences: usage.Occurrences,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       errors,
			Warnings:     warnings,
			Truncated:    result.TruncatedCount,
			FilesScanned: result.FilesScanned,
		},
		Stats: JSONStats{
			Calls:              result.CallsFound,
			Declarations:       result.DeclarationsFound,
			UniqueDeclarations: result.UniqueDeclarations,
			CacheHits:          result.DuplicateDeclarations,
			ReuseRatio:         result.ReuseRatio,
		},
		Issues:          jsonIssues,
		TopDeclarations: top,
	}
}
