package atomgen

import (
	"fmt"
	"io"
)

// VerboseReporter handles detailed statistics
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs detailed linting statistics
func (r *VerboseReporter) PrintStatistics(result LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Atomic CSS Statistics", r.useColors))
	fmt.Fprintln(r.w, "------------------------")

	fmt.Fprintf(r.w, "Files Scanned:           %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "CSS Calls:               %d\n", result.CallsFound)
	fmt.Fprintf(r.w, "Declarations:            %d\n", result.DeclarationsFound)
	fmt.Fprintf(r.w, "Unique (Classes):        %d\n", result.UniqueDeclarations)
	fmt.Fprintf(r.w, "Served From Cache:       %d\n", result.DuplicateDeclarations)
	fmt.Fprintf(r.w, "Errors:                  %d\n", result.ErrorCount)
	fmt.Fprintf(r.w, "Warnings:                %d\n", result.WarningCount)
}

// PrintReuseProgress shows the cache reuse ratio as a bar
func (r *VerboseReporter) PrintReuseProgress(result LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Declaration Reuse", r.useColors))
	fmt.Fprintln(r.w, "-------------------")
	printProgressBar(r.w, result.ReuseRatio)
}

// PrintTopDeclarations lists the most reused declarations
func (r *VerboseReporter) PrintTopDeclarations(result LintResult) {
	if len(result.TopDeclarations) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Top Declarations", r.useColors))
	fmt.Fprintln(r.w, "------------------")

	for i, usage := range result.TopDeclarations {
		fmt.Fprintf(r.w, "%d. %q - %d occurrences → .%s\n",
			i+1, usage.Declaration, usage.Occurrences, usage.ClassName)
	}
}

// PrintWarnings shows linter warnings
func (r *VerboseReporter) PrintWarnings(result LintResult) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "-----------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

// printProgressBar prints a visual progress bar
func printProgressBar(w io.Writer, percentage float64) {
	barWidth := 20
	filled := int(percentage / 100 * float64(barWidth))

	fmt.Fprint(w, "[")
	for i := 0; i < barWidth; i++ {
		if i < filled {
			fmt.Fprint(w, "█")
		} else {
			fmt.Fprint(w, "░")
		}
	}
	fmt.Fprintf(w, "] %.1f%%\n", percentage)
}
