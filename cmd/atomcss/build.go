package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/atomcss/internal/atomgen"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Extract CSS calls from sources and write the stylesheet",
	Long: `Scan Go and templ files for literal CSS calls, compile every declaration
once and write the flushed stylesheet. Optionally inject it into an HTML
page as the designated style element and write a JSON manifest.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runBuild,
}

func init() {
	f := buildCmd.Flags()
	f.StringSlice("paths", defaultScanPaths, "File patterns to scan for CSS calls")
	f.String("output", "web/static/atoms.css", "Stylesheet output path")
	f.String("html", "", "HTML file to inject the style element into")
	f.String("manifest", "", "JSON manifest output path")
	f.Bool("lint", false, "Run linter after the build")
}

func runBuild(cmd *cobra.Command, _ []string) error {
	log := newLogger()
	defer func() { _ = log.Sync() }()

	config := buildBuildConfig(log)

	result, err := atomgen.Build(config)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	useColors := atomgen.ShouldUseColors(getBoolWithFallback("color", "color", false))

	if !quiet {
		if config.Output != "" {
			fmt.Printf("Wrote %s\n", config.Output)
		}
		fmt.Printf("  Files scanned: %d\n", result.FilesScanned)
		fmt.Printf("  CSS calls: %d\n", result.CallsFound)
		fmt.Printf("  Classes generated: %d\n", result.ClassesGenerated)

		for _, w := range result.Warnings {
			fmt.Printf("  Warning: %s\n", w)
		}
		for _, e := range result.Errors {
			fmt.Printf("  %s %v\n", atomgen.RenderStyle(atomgen.StyleRed, "Error:", useColors), e)
		}
	}

	if len(result.Errors) > 0 {
		return fmt.Errorf("build failed: %d malformed declaration(s)", len(result.Errors))
	}

	// Run lint after build if --lint flag set
	lint, _ := cmd.Flags().GetBool("lint")
	if lint {
		return runLint(log)
	}

	return nil
}
