package atomscan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGrammar(t *testing.T) {
	g, err := DefaultGrammar()
	require.NoError(t, err)

	assert.True(t, g.HasRule("Bgc"))
	assert.True(t, g.HasRule("W"))
	assert.True(t, g.HasHelper("LineClamp"))
}

func TestDefaultTables_ReturnCopies(t *testing.T) {
	rules := DefaultRules()
	rules["Bgc"] = Rule{Name: "mutated"}
	assert.NotEqual(t, "mutated", DefaultRules()["Bgc"].Name)

	helpers := DefaultHelpers()
	delete(helpers, "Ell")
	assert.Contains(t, DefaultHelpers(), "Ell")
}

func TestDefaultRules_ValidIdentifiers(t *testing.T) {
	for key := range defaultRules {
		assert.Regexp(t, `^[A-Za-z]+$`, key)
	}
	for key := range defaultHelpers {
		assert.Regexp(t, `^[A-Za-z]+$`, key)
	}
}

func TestLoadRules(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	content := `
rules:
  Trf:
    name: transform
    styles:
      - transform
  Bgc:
    name: background
    styles:
      - background
helpers:
  Sr:
    name: screen-reader-only
    styles:
      - position
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	rules, helpers, err := LoadRules(path)
	require.NoError(t, err)

	// New entries are added
	assert.Equal(t, "transform", rules["Trf"].Name)
	assert.Equal(t, []string{"transform"}, rules["Trf"].Styles)
	assert.Equal(t, "screen-reader-only", helpers["Sr"].Name)

	// Same identifier replaces the built-in
	assert.Equal(t, "background", rules["Bgc"].Name)

	// Untouched built-ins survive
	assert.Equal(t, "width", rules["W"].Name)
	assert.Contains(t, helpers, "Ell")
}

func TestLoadRules_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, _, err := LoadRules("/nonexistent/rules.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read rules file")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("rules: [not: a: map"), 0644))

		_, _, err := LoadRules(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse rules file")
	})
}

func TestLoadRules_GrammarRejectsBadIdentifiers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	content := `
rules:
  Bad-Key:
    name: broken
    styles:
      - broken
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	rules, helpers, err := LoadRules(path)
	require.NoError(t, err, "loading succeeds, validation happens at construction")

	_, err = New(rules, helpers)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid property identifier")
}
