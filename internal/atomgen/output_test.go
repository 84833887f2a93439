package atomgen

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *LintResult {
	return &LintResult{
		FilesScanned:          3,
		CallsFound:            4,
		DeclarationsFound:     8,
		UniqueDeclarations:    6,
		DuplicateDeclarations: 2,
		ReuseRatio:            25,
		ErrorCount:            1,
		WarningCount:          1,
		Issues: []Issue{
			{
				FromLinter:  LinterName,
				Text:        `malformed declaration "colr red": unexpected "red" after property`,
				Severity:    SeverityError,
				SourceLines: []string{`css("colr red")`},
				Pos:         IssuePos{Filename: "page.templ", Line: 10, Column: 6},
			},
			{
				FromLinter: LinterName,
				Text:       `duplicate declaration "a:b" in one call`,
				Severity:   SeverityWarning,
				Pos:        IssuePos{Filename: "page.templ", Line: 12, Column: 9},
			},
		},
		TopDeclarations: []DeclarationUsage{
			{Declaration: "color:red", ClassName: "z-1a2b", Occurrences: 3},
		},
		Warnings: []string{"something to note"},
	}
}

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		formatFlag string
		quiet      bool
		expected   OutputFormat
	}{
		{name: "explicit quiet flag", quiet: true, expected: OutputIssues},
		{name: "explicit issues format", formatFlag: "issues", expected: OutputIssues},
		{name: "explicit summary format", formatFlag: "summary", expected: OutputSummary},
		{name: "explicit full format", formatFlag: "full", expected: OutputFull},
		{name: "explicit json format", formatFlag: "json", expected: OutputJSON},
		{name: "explicit markdown format", formatFlag: "markdown", expected: OutputMarkdown},
		{name: "markdown shorthand (md)", formatFlag: "md", expected: OutputMarkdown},
		{name: "unknown falls back to default", formatFlag: "xml", expected: OutputIssues},
		{name: "quiet overrides format flag", formatFlag: "full", quiet: true, expected: OutputIssues},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetermineOutputFormat(tt.formatFlag, tt.quiet))
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleResult()))

	var output JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, "1.0", output.Version)
	assert.NotEmpty(t, output.Timestamp)
	assert.Equal(t, JSONSummary{TotalIssues: 2, Errors: 1, Warnings: 1, FilesScanned: 3}, output.Summary)
	assert.Equal(t, JSONStats{Calls: 4, Declarations: 8, UniqueDeclarations: 6, CacheHits: 2, ReuseRatio: 25}, output.Stats)

	require.Len(t, output.Issues, 2)
	assert.Equal(t, "page.templ", output.Issues[0].File)
	assert.Equal(t, `css("colr red")`, output.Issues[0].Source)
	assert.Empty(t, output.Issues[1].Source)

	assert.Equal(t, []JSONDeclarationUsage{{Declaration: "color:red", Class: "z-1a2b", Occurrences: 3}}, output.TopDeclarations)
}

func TestJSONOutputEmptyArrays(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, &LintResult{}))

	// tooling expects arrays, not null
	assert.Contains(t, buf.String(), `"issues": []`)
	assert.Contains(t, buf.String(), `"top_declarations": []`)
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, sampleResult()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# Atomic CSS Lint Report\n"))
	assert.Contains(t, out, "| Reuse ratio | 25.0% |")
	assert.Contains(t, out, "| `page.templ:10:6` | error | malformed declaration")
	assert.Contains(t, out, "| `color:red` | `z-1a2b` | 3 |")
	assert.Contains(t, out, "- something to note")
}

func TestWriteMarkdownNoIssues(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, &LintResult{}))

	assert.Contains(t, buf.String(), "No issues found.")
	assert.NotContains(t, buf.String(), "## Top Declarations")
	assert.NotContains(t, buf.String(), "## Warnings")
}

func TestMarkdownEscaping(t *testing.T) {
	assert.Equal(t, `a \| b`, escapeMarkdownCell("a | b"))
}

func TestWriteOutput_AllFormats(t *testing.T) {
	config := LintConfig{PrintIssuedLines: true, PrintLinterName: true}

	tests := []struct {
		format OutputFormat
		want   []string
		absent []string
	}{
		{
			format: OutputIssues,
			want:   []string{"page.templ:10:6:", "2 issues (1 error, 1 warning):"},
			absent: []string{"Atomic CSS Statistics"},
		},
		{
			format: OutputSummary,
			want:   []string{"Atomic CSS Statistics", "Declaration Reuse", "Top Declarations", "Warnings"},
			absent: []string{"page.templ:10:6:"},
		},
		{
			format: OutputFull,
			want:   []string{"page.templ:10:6:", "Atomic CSS Statistics", "Top Declarations"},
		},
		{
			format: OutputJSON,
			want:   []string{`"total_issues": 2`},
		},
		{
			format: OutputMarkdown,
			want:   []string{"## Issues"},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			WriteOutput(&buf, sampleResult(), tt.format, config)

			for _, s := range tt.want {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}
