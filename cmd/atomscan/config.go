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

	"github.com/acss-tools/atomscan"
)

var k = koanf.New(".")

// defaultScanPaths are the glob patterns scanned when nothing else is
// configured.
var defaultScanPaths = []string{
	"**/*.html",
	"**/*.jsx",
	"**/*.tsx",
	"**/*.vue",
	"**/*.templ",
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".atomscan.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence — only flags that were explicitly set)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment
// variables. Separated from loadConfig to allow testing without a cobra
// command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (ATOMSCAN_* prefix)
	if err := k.Load(env.Provider("ATOMSCAN_", ".", func(s string) string {
		// ATOMSCAN_LINT_STRICT -> lint.strict
		// ATOMSCAN_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "ATOMSCAN_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildGrammar constructs the grammar from the built-in tables, merged with
// a custom rules file when one is configured.
func buildGrammar() (*atomscan.Grammar, map[string]atomscan.Rule, map[string]atomscan.Rule, error) {
	rulesFile := getStringWithFallback("rules-file", "rules-file", "")
	if rulesFile == "" {
		rules, helpers := atomscan.DefaultRules(), atomscan.DefaultHelpers()
		g, err := atomscan.New(rules, helpers)
		return g, rules, helpers, err
	}

	rules, helpers, err := atomscan.LoadRules(rulesFile)
	if err != nil {
		return nil, nil, nil, err
	}
	g, err := atomscan.New(rules, helpers)
	return g, rules, helpers, err
}

// scanPaths resolves the file patterns to scan, honoring flag then config
// file then defaults.
func scanPaths() []string {
	if paths := k.Strings("paths"); len(paths) > 0 {
		return paths
	}
	if paths := k.Strings("scan.paths"); len(paths) > 0 {
		return paths
	}
	return defaultScanPaths
}

// buildLintConfig constructs the linter configuration from koanf state.
func buildLintConfig() atomscan.LintConfig {
	return atomscan.LintConfig{
		ScanPaths:        scanPaths(),
		Strict:           getBoolWithFallback("strict", "lint.strict", false),
		MaxIssues:        getIntWithFallback("max-issues", "lint.max-issues", 0),
		PrintIssuedLines: getBoolWithFallback("print-lines", "lint.print-lines", true),
		PrintLinterName:  getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
		UseColors:        getBoolWithFallback("color", "color", false),
	}
}

// breakpoints resolves the breakpoint table, honoring the config file.
func breakpoints() map[string]string {
	configured := k.StringMap("breakpoints")
	if len(configured) == 0 {
		return atomscan.DefaultBreakpoints
	}
	return configured
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
