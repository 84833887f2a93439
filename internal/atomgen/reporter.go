package atomgen

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/mattn/go-isatty"
)

// Reporter prints lint issues one per line as file:line:col: text,
// optionally followed by the offending source line and a caret.
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

func NewReporter(w io.Writer, config LintConfig) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       ShouldUseColors(config.UseColors),
		printLines:      config.PrintIssuedLines,
		printLinterName: config.PrintLinterName,
	}
}

// ShouldUseColors reports whether output gets ANSI styling. force, a
// FORCE_COLOR variable, GitHub Actions and a terminal on stdout all turn
// it on.
func ShouldUseColors(force bool) bool {
	switch {
	case force, os.Getenv("FORCE_COLOR") != "", os.Getenv("GITHUB_ACTIONS") == "true":
		return true
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// PrintIssues sorts issues by position in place and prints them.
func (r *Reporter) PrintIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		a, b := issues[i].Pos, issues[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})

	for _, issue := range issues {
		r.printIssue(issue)
	}
}

func (r *Reporter) printIssue(issue Issue) {
	pos := issue.Pos
	location := fmt.Sprintf("%s:%d:%d:", pos.Filename, pos.Line, pos.Column)

	var suffix string
	if r.printLinterName {
		suffix = " (" + issue.FromLinter + ")"
	}
	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		issue.Text,
		RenderStyle(StyleGray, suffix, r.useColors))

	if !r.printLines || len(issue.SourceLines) == 0 {
		return
	}
	for _, line := range issue.SourceLines {
		fmt.Fprintf(r.w, "\t%s\n", line)
	}
	caret := r.buildCaretIndicator(issue.SourceLines[0], pos.Column)
	fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.useColors))
}

// buildCaretIndicator points at the 1-based column of sourceLine, keeping
// tabs so the caret lines up under the printed line.
func (r *Reporter) buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}
	n := min(column-1, len(sourceLine))

	padding := strings.Map(func(ch rune) rune {
		if ch == '\t' {
			return ch
		}
		return ' '
	}, sourceLine[:n])
	return padding + "^"
}

// PrintSummary prints the issue totals, e.g.
// "3 issues (1 error, 2 warnings; 4 issues truncated):".
func (r *Reporter) PrintSummary(result LintResult) {
	var errs, warnings int
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			errs++
		case SeverityWarning:
			warnings++
		}
	}

	var details []string
	if errs > 0 && warnings > 0 {
		details = append(details, pluralizeCount(errs, "error", "errors")+", "+pluralizeCount(warnings, "warning", "warnings"))
	}
	if result.TruncatedCount > 0 {
		details = append(details, pluralizeCount(result.TruncatedCount, "issue", "issues")+" truncated")
	}

	header := pluralizeCount(len(result.Issues), "issue", "issues")
	if len(details) > 0 {
		header += " (" + strings.Join(details, "; ") + ")"
	}
	fmt.Fprintf(r.w, "\n%s:\n", header)

	if len(result.Issues) == 0 {
		return
	}
	fmt.Fprintf(r.w, "* %s: %d\n\n", LinterName, len(result.Issues))
	fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: Run with --output-format full to see statistics and top declarations", r.useColors))
}

func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

func (r *Reporter) UseColors() bool {
	return r.useColors
}
