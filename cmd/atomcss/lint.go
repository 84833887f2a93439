package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/atomcss/internal/atomgen"
	"go.uber.org/zap"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint CSS calls in Go/templ files",
	Long: `Check literal CSS calls the way the engine would compile them.
Reports malformed declarations as errors, and duplicate declarations in one
call or ';' inside quoted strings as warnings.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		log := newLogger()
		defer func() { _ = log.Sync() }()
		return runLint(log)
	},
}

func init() {
	f := lintCmd.Flags()
	f.StringSlice("paths", defaultScanPaths, "File patterns to scan for CSS calls")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|full|json|markdown")
	f.Int("max-issues-per-linter", 0, "Max issues to show per linter (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (atomcss) suffix on issues")
}

// runLint is shared between `atomcss lint` and `atomcss build --lint`.
func runLint(log *zap.Logger) error {
	lintConfig := buildLintConfig(log)

	lintResult, err := atomgen.Lint(lintConfig)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "lint.output-format", "")
	format := atomgen.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		atomgen.WriteOutput(os.Stdout, lintResult, format, lintConfig)
	}

	// Exit code logic: strict fails on any issue, default only on errors
	if lintConfig.Strict {
		if len(lintResult.Issues) > 0 {
			os.Exit(1)
		}
	} else if lintResult.ErrorCount > 0 {
		os.Exit(1)
	}

	return nil
}
