package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/acss-tools/atomscan"
	"github.com/acss-tools/atomscan/internal/report"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan files for atomic class tokens",
	Long: `Scan files matching the configured glob patterns and list every
recognized atomic class token with its decomposition. Stylesheet files
(*.css) are lexed and audited by class selector instead of by line.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runScan,
}

func init() {
	f := scanCmd.Flags()
	f.StringSlice("paths", nil, "Glob patterns of files to scan")
	f.String("format", "text", "Output format: text|json")
}

func runScan(_ *cobra.Command, _ []string) error {
	g, _, _, err := buildGrammar()
	if err != nil {
		return fmt.Errorf("building grammar: %w", err)
	}

	refs, stats, err := collectReferences(g)
	if err != nil {
		return err
	}

	if getBoolWithFallback("quiet", "quiet", false) {
		return nil
	}

	format := getStringWithFallback("format", "scan.format", "text")
	if format == "json" {
		return atomscan.WriteScanJSON(os.Stdout, refs, stats)
	}

	reporter := report.NewReporter(os.Stdout, buildLintConfig())
	reporter.PrintTokens(refs)
	reporter.PrintScanSummary(refs, stats)
	return nil
}

// collectReferences scans the configured paths, routing stylesheets
// through the CSS auditor and everything else through the line scanner.
func collectReferences(g *atomscan.Grammar) ([]atomscan.TokenReference, atomscan.ScanStats, error) {
	var cssPatterns, textPatterns []string
	for _, pattern := range scanPaths() {
		if strings.HasSuffix(pattern, ".css") {
			cssPatterns = append(cssPatterns, pattern)
		} else {
			textPatterns = append(textPatterns, pattern)
		}
	}

	refs, stats, err := atomscan.ScanFiles(g, textPatterns)
	if err != nil {
		return nil, stats, fmt.Errorf("scanning files: %w", err)
	}

	if len(cssPatterns) > 0 {
		cssRefs, cssStats, err := atomscan.ScanStylesheets(g, cssPatterns)
		if err != nil {
			return nil, stats, fmt.Errorf("scanning stylesheets: %w", err)
		}
		refs = append(refs, cssRefs...)
		stats.FilesDiscovered += cssStats.FilesDiscovered
		stats.FilesScanned += cssStats.FilesScanned
		stats.FilesSkipped += cssStats.FilesSkipped
	}

	return refs, stats, nil
}
