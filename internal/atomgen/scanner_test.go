package atomgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCallsFromLine(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantRules []string
		wantCols  []int
	}{
		{
			name:      "package call",
			line:      `cls := atomcss.CSS("color: red; margin: 0")`,
			wantRules: []string{"color: red; margin: 0"},
			wantCols:  []int{21},
		},
		{
			name:      "must variant",
			line:      `<div class={ atomcss.MustCSS("padding:1rem") }>`,
			wantRules: []string{"padding:1rem"},
			wantCols:  []int{31},
		},
		{
			name:      "raw string",
			line:      "e.CSS(`display: flex`)",
			wantRules: []string{"display: flex"},
			wantCols:  []int{8},
		},
		{
			name:      "escaped quotes",
			line:      `css("font-family: \"Open Sans\"")`,
			wantRules: []string{`font-family: "Open Sans"`},
			wantCols:  []int{6},
		},
		{
			name:      "two calls",
			line:      `a, b := css("color:red"), css("margin:0")`,
			wantRules: []string{"color:red", "margin:0"},
			wantCols:  []int{14, 32},
		},
		{
			name:      "comment skipped",
			line:      `// atomcss.CSS("color:red")`,
			wantRules: nil,
		},
		{
			name:      "non-literal argument",
			line:      `atomcss.CSS(rules)`,
			wantRules: nil,
		},
		{
			name:      "unrelated identifier",
			line:      `loadCSS("theme.css")`,
			wantRules: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs := extractCallsFromLine(tt.line, 7, "x.go")

			var rules []string
			var cols []int
			for _, r := range refs {
				rules = append(rules, r.Rules)
				cols = append(cols, r.Location.Column)
				assert.Equal(t, 7, r.Location.Line)
				assert.Equal(t, "x.go", r.Location.File)
			}
			assert.Equal(t, tt.wantRules, rules)
			if tt.wantCols != nil {
				assert.Equal(t, tt.wantCols, cols)
			}
		})
	}
}

func TestIsGenerated(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{name: "templ generated (_templ.go)", path: "web/page_templ.go", expected: true},
		{name: "templ generated (.templ.go)", path: "web/page.templ.go", expected: true},
		{name: "gen file", path: "web/styles.gen.go", expected: true},
		{name: "regular go file", path: "web/page.go", expected: false},
		{name: "templ source", path: "web/page.templ", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isGenerated(tt.path))
		})
	}
}

func TestScanFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "web", "nested"), 0755))

	files := map[string]string{
		"web/page.templ": `<p class={ atomcss.MustCSS("color:red") }>hi</p>
<span class={ atomcss.MustCSS("margin:0; color:red") }></span>`,
		"web/nested/handler.go": `package nested

var card = atomcss.MustCSS("padding: 1rem")
`,
		"web/page_templ.go": `var _ = atomcss.MustCSS("color:red")`,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}

	refs, stats, err := ScanFiles([]string{
		filepath.Join(dir, "web/**/*.templ"),
		filepath.Join(dir, "web/**/*.go"),
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.FilesDiscovered)
	assert.Equal(t, 2, stats.FilesScanned)
	assert.Equal(t, 1, stats.FilesSkipped)

	var rules []string
	for _, r := range refs {
		rules = append(rules, r.Rules)
	}
	assert.ElementsMatch(t, []string{"color:red", "margin:0; color:red", "padding: 1rem"}, rules)
}

func TestRelativePath(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)
	outside := filepath.Join(filepath.Dir(cwd), "other", "x.go")

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "relative", path: "a.templ", want: "a.templ"},
		{name: "under working dir", path: filepath.Join(cwd, "web", "a.templ"), want: filepath.Join("web", "a.templ")},
		{name: "outside working dir", path: outside, want: outside},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, relativePath(tt.path))
		})
	}
}
