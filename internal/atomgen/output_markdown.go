package atomgen

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteMarkdown writes the lint result as a Markdown report
func WriteMarkdown(w io.Writer, result *LintResult) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# Atomic CSS Lint Report")
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "## Summary")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "| Metric | Value |")
	fmt.Fprintln(bw, "|---|---|")
	fmt.Fprintf(bw, "| Files scanned | %d |\n", result.FilesScanned)
	fmt.Fprintf(bw, "| CSS calls | %d |\n", result.CallsFound)
	fmt.Fprintf(bw, "| Declarations | %d |\n", result.DeclarationsFound)
	fmt.Fprintf(bw, "| Unique declarations | %d |\n", result.UniqueDeclarations)
	fmt.Fprintf(bw, "| Reuse ratio | %.1f%% |\n", result.ReuseRatio)
	fmt.Fprintf(bw, "| Errors | %d |\n", result.ErrorCount)
	fmt.Fprintf(bw, "| Warnings | %d |\n", result.WarningCount)

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "## Issues")
	fmt.Fprintln(bw)
	if len(result.Issues) == 0 {
		fmt.Fprintln(bw, "No issues found.")
	} else {
		fmt.Fprintln(bw, "| Location | Severity | Message |")
		fmt.Fprintln(bw, "|---|---|---|")
		for _, issue := range result.Issues {
			fmt.Fprintf(bw, "| `%s:%d:%d` | %s | %s |\n",
				issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column,
				issue.Severity, escapeMarkdownCell(issue.Text))
		}
		if result.TruncatedCount > 0 {
			fmt.Fprintf(bw, "\n_%s truncated._\n", pluralizeCount(result.TruncatedCount, "issue", "issues"))
		}
	}

	if len(result.TopDeclarations) > 0 {
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, "## Top Declarations")
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, "| Declaration | Class | Occurrences |")
		fmt.Fprintln(bw, "|---|---|---|")
		for _, usage := range result.TopDeclarations {
			fmt.Fprintf(bw, "| `%s` | `%s` | %d |\n",
				escapeMarkdownCell(usage.Declaration), usage.ClassName, usage.Occurrences)
		}
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, "## Warnings")
		fmt.Fprintln(bw)
		for _, warning := range result.Warnings {
			fmt.Fprintf(bw, "- %s\n", warning)
		}
	}

	return bw.Flush()
}

func escapeMarkdownCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
