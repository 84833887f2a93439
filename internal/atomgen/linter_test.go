package atomgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/atomcss"
)

func ref(file string, line, col int, rules string) CallReference {
	return CallReference{
		Rules:    rules,
		Location: FileLocation{File: file, Line: line, Column: col, Text: "src"},
	}
}

func TestAnalyzeCalls(t *testing.T) {
	engine, err := atomcss.New()
	require.NoError(t, err)

	refs := []CallReference{
		ref("a.templ", 3, 10, "color:red; margin:0; color:red"),
		ref("a.templ", 4, 5, `content:"a;b"`),
		ref("a.templ", 5, 7, "colr red"),
		ref("b.go", 1, 20, "color:red"),
	}

	result := analyzeCalls(refs, engine)

	assert.Equal(t, 4, result.CallsFound)
	assert.Equal(t, 7, result.DeclarationsFound)
	assert.Equal(t, 5, result.UniqueDeclarations)
	assert.Equal(t, 2, result.DuplicateDeclarations)
	assert.InDelta(t, 28.57, result.ReuseRatio, 0.01)
	assert.Equal(t, 1, result.ErrorCount)
	assert.Equal(t, 2, result.WarningCount)

	require.Len(t, result.Issues, 3)

	dup := result.Issues[0]
	assert.Equal(t, SeverityWarning, dup.Severity)
	assert.Equal(t, `duplicate declaration "color:red" in one call`, dup.Text)
	assert.Equal(t, IssuePos{Filename: "a.templ", Line: 3, Column: 31}, dup.Pos)
	assert.Equal(t, LinterName, dup.FromLinter)
	assert.Equal(t, []string{"src"}, dup.SourceLines)

	quoted := result.Issues[1]
	assert.Equal(t, SeverityWarning, quoted.Severity)
	assert.Equal(t, `call "content:\"a;b\"" splits a quoted string on ';'`, quoted.Text)
	assert.Equal(t, 5, quoted.Pos.Column)

	malformed := result.Issues[2]
	assert.Equal(t, SeverityError, malformed.Severity)
	assert.Contains(t, malformed.Text, `malformed declaration "colr red"`)
	assert.Equal(t, 7, malformed.Pos.Column)

	require.Len(t, result.TopDeclarations, 1)
	assert.Equal(t, DeclarationUsage{
		Declaration: "color:red",
		ClassName:   atomcss.DeriveClassName("color:red"),
		Occurrences: 3,
	}, result.TopDeclarations[0])
}

func TestAnalyzeCallsClean(t *testing.T) {
	engine, err := atomcss.New()
	require.NoError(t, err)

	result := analyzeCalls([]CallReference{
		ref("a.go", 1, 1, "display: flex; gap: 1rem"),
		ref("a.go", 2, 1, `font-family: "Open Sans", sans-serif`),
	}, engine)

	assert.Empty(t, result.Issues)
	assert.Equal(t, 3, result.UniqueDeclarations)
	assert.Zero(t, result.ReuseRatio)
	assert.Empty(t, result.TopDeclarations)
}

func TestAnalyzeCallsRelativeFilename(t *testing.T) {
	engine, err := atomcss.New()
	require.NoError(t, err)
	cwd, err := os.Getwd()
	require.NoError(t, err)

	result := analyzeCalls([]CallReference{
		ref(filepath.Join(cwd, "pages", "home.templ"), 2, 4, "colr red"),
	}, engine)

	require.Len(t, result.Issues, 1)
	assert.Equal(t, filepath.Join("pages", "home.templ"), result.Issues[0].Pos.Filename)
}

func TestAnalyzeCallsMarkupInString(t *testing.T) {
	engine, err := atomcss.New()
	require.NoError(t, err)

	result := analyzeCalls([]CallReference{
		ref("a.templ", 1, 1, `color:red; content:"</style><script>alert(1)</script>"`),
	}, engine)

	require.Len(t, result.Issues, 1)
	assert.Equal(t, SeverityError, result.Issues[0].Severity)
	assert.Contains(t, result.Issues[0].Text, "markup in")
	assert.Equal(t, 12, result.Issues[0].Pos.Column)
}

func TestHasQuotedSemicolon(t *testing.T) {
	tests := []struct {
		name  string
		rules string
		want  bool
	}{
		{name: "plain", rules: "color:red; margin:0", want: false},
		{name: "double quotes", rules: `content:"a;b"`, want: true},
		{name: "single quotes", rules: `content:'a;b'`, want: true},
		{name: "closed before separator", rules: `content:"a"; color:red`, want: false},
		{name: "escaped quote", rules: `content:"a\";b"`, want: true},
		{name: "other quote inside", rules: `content:"it's"; color:red`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasQuotedSemicolon(tt.rules))
		})
	}
}

func TestSplitDeclarations(t *testing.T) {
	got := splitDeclarations("  color:red ;; margin : 0;")
	assert.Equal(t, []declaration{
		{Text: "color:red", Offset: 2},
		{Text: "margin : 0", Offset: 15},
	}, got)
}

func TestLimitIssues(t *testing.T) {
	issues := []Issue{
		{Text: "a"}, {Text: "a"}, {Text: "a"}, {Text: "b"}, {Text: "c"},
	}

	tests := []struct {
		name          string
		config        LintConfig
		wantLen       int
		wantTruncated int
	}{
		{name: "unlimited", config: LintConfig{}, wantLen: 5, wantTruncated: 0},
		{name: "max per linter", config: LintConfig{MaxIssuesPerLinter: 2}, wantLen: 2, wantTruncated: 3},
		{name: "max same", config: LintConfig{MaxSameIssues: 1}, wantLen: 3, wantTruncated: 2},
		{name: "both", config: LintConfig{MaxIssuesPerLinter: 4, MaxSameIssues: 2}, wantLen: 3, wantTruncated: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := limitIssues(issues, tt.config)
			assert.Len(t, got, tt.wantLen)
			assert.Equal(t, tt.wantTruncated, truncated)
		})
	}
}

func TestLintEndToEnd(t *testing.T) {
	dir := t.TempDir()
	content := `<p class={ atomcss.MustCSS("color:red; color:red") }></p>
	<p class={ atomcss.MustCSS("colr red") }></p>
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "page.templ"), []byte(content), 0644))

	result, err := Lint(LintConfig{
		ScanPaths:     []string{filepath.Join(dir, "*.templ")},
		MaxSameIssues: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.FilesScanned)
	assert.Equal(t, 2, result.CallsFound)
	assert.Equal(t, 1, result.ErrorCount)
	assert.Equal(t, 1, result.WarningCount)
	require.Len(t, result.Issues, 2)

	// column of the second "color:red" inside the first literal
	assert.Equal(t, 29+11, result.Issues[0].Pos.Column)
	assert.Equal(t, 2, result.Issues[1].Pos.Line)
	assert.Equal(t, 30, result.Issues[1].Pos.Column)
}

func TestLintNoCalls(t *testing.T) {
	result, err := Lint(LintConfig{ScanPaths: []string{filepath.Join(t.TempDir(), "*.templ")}})
	require.NoError(t, err)

	assert.Zero(t, result.CallsFound)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "no CSS calls found")
}
