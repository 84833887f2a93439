package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yacobolo/atomcss"
	"github.com/yacobolo/atomcss/internal/atomgen"
	"go.uber.org/zap"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".atomcss.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence). Only flags the user set are
	// loaded, so flag defaults never shadow file or env values.
	fs := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(fs, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (ATOMCSS_* prefix)
	if err := k.Load(env.Provider("ATOMCSS_", ".", func(s string) string {
		// ATOMCSS_BUILD_OUTPUT -> build.output
		// ATOMCSS_LINT_STRICT -> lint.strict
		// ATOMCSS_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "ATOMCSS_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildEngineOptions constructs engine options shared by every command.
func buildEngineOptions(log *zap.Logger) []atomcss.Option {
	return []atomcss.Option{
		atomcss.WithClassPrefix(getStringWithFallback("class-prefix", "class-prefix", atomcss.DefaultClassPrefix)),
		atomcss.WithElementID(getStringWithFallback("element-id", "element-id", "__css__")),
		atomcss.WithVendorPrefix(getBoolWithFallback("vendor-prefix", "vendor-prefix", true)),
		atomcss.WithLogger(log),
	}
}

// buildBuildConfig constructs the BuildConfig struct from koanf state.
func buildBuildConfig(log *zap.Logger) atomgen.BuildConfig {
	return atomgen.BuildConfig{
		Paths:        getStringsWithFallback("paths", "build.paths", defaultScanPaths),
		Output:       getStringWithFallback("output", "build.output", "web/static/atoms.css"),
		HTMLFile:     getStringWithFallback("html", "build.html", ""),
		Manifest:     getStringWithFallback("manifest", "build.manifest", ""),
		ClassPrefix:  getStringWithFallback("class-prefix", "class-prefix", atomcss.DefaultClassPrefix),
		ElementID:    getStringWithFallback("element-id", "element-id", "__css__"),
		VendorPrefix: getBoolWithFallback("vendor-prefix", "vendor-prefix", true),
		Logger:       log,
	}
}

// buildLintConfig constructs the LintConfig struct from koanf state.
func buildLintConfig(log *zap.Logger) atomgen.LintConfig {
	return atomgen.LintConfig{
		ScanPaths:          getStringsWithFallback("paths", "lint.paths", defaultScanPaths),
		ClassPrefix:        getStringWithFallback("class-prefix", "class-prefix", atomcss.DefaultClassPrefix),
		Verbose:            getBoolWithFallback("verbose", "verbose", false),
		Strict:             getBoolWithFallback("strict", "lint.strict", false),
		MaxIssuesPerLinter: getIntWithFallback("max-issues-per-linter", "lint.max-issues-per-linter", 0),
		MaxSameIssues:      getIntWithFallback("max-same-issues", "lint.max-same-issues", 0),
		PrintIssuedLines:   getBoolWithFallback("print-lines", "lint.print-lines", true),
		PrintLinterName:    getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
		UseColors:          getBoolWithFallback("color", "color", false),
		Logger:             log,
	}
}

var defaultScanPaths = []string{
	"web/**/*.templ",
	"web/**/*.go",
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getStringsWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringsWithFallback(flagKey, configKey string, defaultVal []string) []string {
	if v := k.Strings(flagKey); len(v) > 0 {
		return v
	}
	if v := k.Strings(configKey); len(v) > 0 {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
