package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .atomcss.yaml config file",
	Long:  `Create a .atomcss.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".atomcss.yaml"); err == nil && !force {
			return fmt.Errorf(".atomcss.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".atomcss.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .atomcss.yaml")
		return nil
	},
}

const defaultConfig = `# atomcss configuration
# Docs: https://github.com/yacobolo/atomcss

# Shared settings
class-prefix: z-         # must match the prefix used at runtime
element-id: __css__
vendor-prefix: true
verbose: false

# Build settings
build:
  paths:
    - "web/**/*.templ"
    - "web/**/*.go"
  output: web/static/atoms.css
  html: ""                 # inject the style element into this page
  manifest: ""             # declaration -> class JSON map

# Linting settings
lint:
  paths:
    - "web/**/*.templ"
    - "web/**/*.go"
  strict: false
  output-format: issues    # issues | summary | full | json | markdown
  max-issues-per-linter: 0 # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
