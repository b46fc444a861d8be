package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .atomscan.yaml config file",
	Long:  `Create a .atomscan.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".atomscan.yaml"); err == nil && !force {
			return fmt.Errorf(".atomscan.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".atomscan.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .atomscan.yaml")
		return nil
	},
}

const defaultConfig = `# atomscan configuration
# Docs: https://github.com/acss-tools/atomscan

# Shared settings
verbose: false
rules-file: ""             # YAML file with custom rule tables

# Scanning settings
scan:
  paths:
    - "**/*.html"
    - "**/*.jsx"
    - "**/*.tsx"
    - "**/*.vue"
    - "**/*.templ"
  format: text             # text | json

# Linting settings
lint:
  strict: false            # fail on warnings too (CI mode)
  max-issues: 0            # 0 = unlimited
  format: text             # text | json
  print-lines: true
  print-linter-name: true

# Stylesheet generation settings
generate:
  output: atomic.css

# Media query conditions for --<name> breakpoint suffixes.
# "@media" is prepended at generation time.
breakpoints:
  sm: "only screen and (min-width: 480px)"
  md: "only screen and (min-width: 768px)"
  lg: "only screen and (min-width: 1024px)"
  xl: "only screen and (min-width: 1280px)"
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
