package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/acss-tools/atomscan"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate a stylesheet from the tokens found in source files",
	Long: `Scan the configured paths and emit a CSS rule for every atomic class
token found. Tokens with a breakpoint suffix are grouped under the
matching media query.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringSlice("paths", nil, "Glob patterns of files to scan")
	f.String("output", "atomic.css", "Output stylesheet path (- for stdout)")
}

func runGenerate(_ *cobra.Command, _ []string) error {
	g, rules, helpers, err := buildGrammar()
	if err != nil {
		return fmt.Errorf("building grammar: %w", err)
	}

	refs, _, err := collectReferences(g)
	if err != nil {
		return err
	}

	result, err := atomscan.GenerateCSS(g, rules, helpers, refs, breakpoints())
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	output := getStringWithFallback("output", "generate.output", "atomic.css")
	if output == "-" {
		fmt.Print(result.CSS)
	} else if err := os.WriteFile(output, []byte(result.CSS), 0644); err != nil {
		return fmt.Errorf("writing stylesheet: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	if !quiet && output != "-" {
		fmt.Printf("Wrote %s\n", output)
		fmt.Printf("  Rules emitted: %d\n", result.RulesEmitted)
		fmt.Printf("  Tokens skipped: %d\n", result.TokensSkipped)

		for _, w := range result.Warnings {
			fmt.Printf("  Warning: %s\n", w)
		}
	}

	return nil
}
