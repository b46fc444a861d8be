package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/acss-tools/atomscan"
	"github.com/acss-tools/atomscan/internal/report"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint atomic class token usage",
	Long: `Check that class names which look like atomic tokens are well-formed.
Flags unknown properties, unregistered pseudo-states and malformed tokens.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return runLint()
	},
}

func init() {
	f := lintCmd.Flags()
	f.StringSlice("paths", nil, "Glob patterns of files to lint")
	f.Bool("strict", false, "Exit 1 on any issue, warnings included (CI mode)")
	f.Int("max-issues", 0, "Max issues to report (0=unlimited)")
	f.String("format", "text", "Output format: text|json")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (atomscan) suffix on issues")
}

func runLint() error {
	g, _, _, err := buildGrammar()
	if err != nil {
		return fmt.Errorf("building grammar: %w", err)
	}

	lintConfig := buildLintConfig()
	result, err := atomscan.Lint(g, lintConfig)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet {
		format := getStringWithFallback("format", "lint.format", "text")
		if format == "json" {
			if err := atomscan.WriteLintJSON(os.Stdout, result); err != nil {
				return err
			}
		} else {
			reporter := report.NewReporter(os.Stdout, lintConfig)
			reporter.PrintIssues(result.Issues)
			reporter.PrintLintSummary(*result)
		}
	}

	// Exit code logic - "Soft Gate" approach
	if lintConfig.Strict {
		// Strict mode: any issue (error or warning) fails the build
		if len(result.Issues) > 0 {
			os.Exit(1)
		}
	} else if result.ErrorCount > 0 {
		// Default mode: only errors fail the build
		os.Exit(1)
	}

	return nil
}
