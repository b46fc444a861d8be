package atomscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func refsFor(t *testing.T, g *Grammar, tokens ...string) []TokenReference {
	t.Helper()
	refs := make([]TokenReference, 0, len(tokens))
	for _, token := range tokens {
		m, ok := g.MatchToken(token)
		require.True(t, ok, "MatchToken(%q)", token)
		refs = append(refs, TokenReference{Match: m})
	}
	return refs
}

func generate(t *testing.T, tokens ...string) *GenerateResult {
	t.Helper()
	g := testGrammar(t)
	result, err := GenerateCSS(g, DefaultRules(), DefaultHelpers(), refsFor(t, g, tokens...), nil)
	require.NoError(t, err)
	return result
}

func TestGenerateCSS(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{
			name:  "number value",
			token: "Mb(10px)",
			want:  `.Mb\(10px\) { margin-bottom: 10px; }`,
		},
		{
			name:  "fraction becomes percentage",
			token: "W(1/2)",
			want:  `.W\(1\/2\) { width: 50%; }`,
		},
		{
			name:  "hex color",
			token: "C(#fff)",
			want:  `.C\(\#fff\) { color: #fff; }`,
		},
		{
			name:  "hex color with alpha becomes rgba",
			token: "Bgc(#ff0000.5)",
			want:  `.Bgc\(\#ff0000\.5\) { background-color: rgba(255,0,0,0.5); }`,
		},
		{
			name:  "named argument expansion",
			token: "D(ib)",
			want:  `.D\(ib\) { display: inline-block; }`,
		},
		{
			name:  "unmapped name passes through",
			token: "C(red)",
			want:  `.C\(red\) { color: red; }`,
		},
		{
			name:  "important declaration",
			token: "D(n)!",
			want:  `.D\(n\)\! { display: none !important; }`,
		},
		{
			name:  "pseudo selector suffix",
			token: "Op(.5):h",
			want:  `.Op\(\.5\)\:h:hover { opacity: .5; }`,
		},
		{
			name:  "parent descendant",
			token: "nav_D(b)",
			want:  `.nav .nav_D\(b\) { display: block; }`,
		},
		{
			name:  "parent child combinator",
			token: "list>P(0)",
			want:  `.list > .list\>P\(0\) { padding: 0; }`,
		},
		{
			name:  "parent with pseudo",
			token: "card:h>Op(1)",
			want:  `.card:hover > .card\:h\>Op\(1\) { opacity: 1; }`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := generate(t, tt.token)
			assert.Equal(t, tt.want+"\n", result.CSS)
			assert.Equal(t, 1, result.RulesEmitted)
			assert.Empty(t, result.Warnings)
		})
	}
}

func TestGenerateCSS_Breakpoints(t *testing.T) {
	result := generate(t, "Fz(12px)--sm", "D(b)")

	assert.Equal(t, 2, result.RulesEmitted)
	assert.Contains(t, result.CSS, `.D\(b\) { display: block; }`)
	assert.Contains(t, result.CSS, "@media only screen and (min-width: 480px) {")
	assert.Contains(t, result.CSS, `.Fz\(12px\)--sm { font-size: 12px; }`)
}

func TestGenerateCSS_UnknownBreakpoint(t *testing.T) {
	g := testGrammar(t)
	refs := refsFor(t, g, "D(b)--uw")

	result, err := GenerateCSS(g, DefaultRules(), DefaultHelpers(), refs, map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, 0, result.RulesEmitted)
	assert.Equal(t, 1, result.TokensSkipped)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], `unknown breakpoint "uw"`)
}

func TestGenerateCSS_UnshapedValue(t *testing.T) {
	result := generate(t, "W(1/0)")

	assert.Equal(t, 0, result.RulesEmitted)
	assert.Equal(t, 1, result.TokensSkipped)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "matches no value shape")
}

func TestGenerateCSS_Deduplicates(t *testing.T) {
	g := testGrammar(t)
	refs := refsFor(t, g, "D(b)", "D(b)", "D(b)")

	result, err := GenerateCSS(g, DefaultRules(), DefaultHelpers(), refs, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.RulesEmitted)
}

func TestGenerateCSS_Empty(t *testing.T) {
	g := testGrammar(t)

	result, err := GenerateCSS(g, DefaultRules(), DefaultHelpers(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, result.CSS)
	assert.Equal(t, 0, result.RulesEmitted)
}

func TestEscapeClass(t *testing.T) {
	assert.Equal(t, `Bgc\(red\)\!\:h`, escapeClass("Bgc(red)!:h"))
	assert.Equal(t, `plain-name_ok`, escapeClass("plain-name_ok"))
}

func TestHexRGB(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b int
	}{
		{hex: "ff0000", r: 255},
		{hex: "00ff00", g: 255},
		{hex: "fff", r: 255, g: 255, b: 255},
		{hex: "abc", r: 170, g: 187, b: 204},
	}

	for _, tt := range tests {
		r, g, b := hexRGB(tt.hex)
		assert.Equal(t, [3]int{tt.r, tt.g, tt.b}, [3]int{r, g, b}, "hexRGB(%q)", tt.hex)
	}
}
