package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acss-tools/atomscan"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".atomscan.yaml")
	configContent := `
verbose: true

scan:
  paths:
    - "custom/**/*.html"
  format: json

lint:
  strict: true
  max-issues: 25
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, []string{"custom/**/*.html"}, k.Strings("scan.paths"))
	assert.Equal(t, "json", k.String("scan.format"))
	assert.True(t, k.Bool("lint.strict"))
	assert.Equal(t, 25, k.Int("lint.max-issues"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config — should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.atomscan.yaml"))

	assert.Equal(t, defaultScanPaths, scanPaths())

	config := buildLintConfig()
	assert.False(t, config.Strict)
	assert.Equal(t, 0, config.MaxIssues)
	assert.True(t, config.PrintIssuedLines)
	assert.True(t, config.PrintLinterName)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".atomscan.yaml")
	configContent := `
scan:
  format: text
lint:
  strict: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	// Set env vars that should override config file
	t.Setenv("ATOMSCAN_SCAN_FORMAT", "json")
	t.Setenv("ATOMSCAN_LINT_STRICT", "true")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "json", k.String("scan.format"))
	assert.True(t, k.Bool("lint.strict"))
}

func TestBuildLintConfig_FromConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".atomscan.yaml")
	configContent := `
lint:
  strict: true
  max-issues: 10
  print-lines: false
scan:
  paths:
    - "src/**/*.tsx"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	config := buildLintConfig()
	assert.True(t, config.Strict)
	assert.Equal(t, 10, config.MaxIssues)
	assert.False(t, config.PrintIssuedLines)
	assert.Equal(t, []string{"src/**/*.tsx"}, config.ScanPaths)
}

func TestBuildGrammar_Defaults(t *testing.T) {
	resetKoanf()

	g, rules, helpers, err := buildGrammar()
	require.NoError(t, err)
	require.NotNil(t, g)

	assert.NotEmpty(t, rules)
	assert.NotEmpty(t, helpers)
	assert.True(t, g.HasRule("Bgc"))
	assert.True(t, g.HasHelper("Ell"))
}

func TestBuildGrammar_CustomRulesFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	rulesPath := filepath.Join(dir, "rules.yaml")
	rulesContent := `
rules:
  Zzz:
    name: z-index
    styles:
      - z-index
`
	require.NoError(t, os.WriteFile(rulesPath, []byte(rulesContent), 0644))

	require.NoError(t, k.Set("rules-file", rulesPath))

	g, rules, _, err := buildGrammar()
	require.NoError(t, err)
	assert.True(t, g.HasRule("Zzz"))
	assert.Contains(t, rules, "Zzz")
	// Built-in rules survive the merge
	assert.True(t, g.HasRule("Bgc"))
}

func TestBreakpoints_Defaults(t *testing.T) {
	resetKoanf()

	assert.Equal(t, atomscan.DefaultBreakpoints, breakpoints())
}

func TestBreakpoints_FromConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".atomscan.yaml")
	configContent := `
breakpoints:
  huge: "only screen and (min-width: 1920px)"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	bp := breakpoints()
	assert.Equal(t, "only screen and (min-width: 1920px)", bp["huge"])
	assert.NotContains(t, bp, "sm")
}

// The init-generated config must round-trip through the generator: its
// breakpoint values are media query conditions, never full @media rules,
// and they agree with the built-in defaults.
func TestInitConfigBreakpoints_MatchGenerator(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".atomscan.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(defaultConfig), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, atomscan.DefaultBreakpoints, breakpoints())

	g, rules, helpers, err := buildGrammar()
	require.NoError(t, err)
	m, ok := g.MatchToken("W(1/2)--sm")
	require.True(t, ok)

	result, err := atomscan.GenerateCSS(g, rules, helpers, []atomscan.TokenReference{{Match: m}}, breakpoints())
	require.NoError(t, err)
	assert.Contains(t, result.CSS, "@media only screen and (min-width: 480px) {")
	assert.NotContains(t, result.CSS, "@media @media")
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	require.NoError(t, cmd.Execute())

	// Verify file was created
	data, err := os.ReadFile(".atomscan.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "scan:")
	assert.Contains(t, string(data), "lint:")
	assert.Contains(t, string(data), "breakpoints:")
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	// Create existing file
	require.NoError(t, os.WriteFile(".atomscan.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	// Create existing file
	require.NoError(t, os.WriteFile(".atomscan.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init", "--force"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(".atomscan.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "breakpoints:")
}

func TestVersionCommand(t *testing.T) {
	cmd := rootCmd
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))
}

func TestGetIntWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, 42, getIntWithFallback("flag-key", "config.key", 42))
}
