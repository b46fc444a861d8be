package atomscan

import "strings"

// Pattern fragments composing the token grammar. Fragments are plain RE2
// source strings; larger patterns are built by concatenation only, never by
// mutating a fragment. Go's regexp package guarantees linear-time matching,
// so nesting the optional groups below cannot backtrack pathologically.
const (
	// fragBoundary anchors a token at start-of-text, whitespace, or an
	// enclosing quote, backtick or brace, so tokens are never recognized
	// in the middle of another identifier.
	fragBoundary = `(?:^|[\s"'` + "`" + `{])`

	// fragParent names an ancestor context: a letter optionally followed
	// by letters, digits, hyphens or underscores.
	fragParent = `[a-zA-Z][-_a-zA-Z0-9]*`

	// fragParentSep separates a parent from the token proper:
	// ">" direct child, "_" descendant, "+" adjacent sibling.
	fragParentSep = `[>_+]`

	// fragValueChars is the permitted character set of a raw value
	// payload.
	fragValueChars = `[-_,.#$/%0-9a-zA-Z]`

	// fragNumber is an optionally signed decimal literal; a bare
	// fractional part like ".5" is accepted.
	fragNumber = `-?(?:\d+(?:\.\d+)?|\.\d+)`

	// fragUnit is a CSS unit suffix, letters or percent.
	fragUnit = `[a-zA-Z%]+`

	// fragHex is a 3- or 6-digit hex color literal. The 6-digit form is
	// listed first so it wins the capture.
	fragHex = `#(?:[0-9a-f]{6}|[0-9a-f]{3})`

	// fragAlpha is the decimal alpha suffix of a hex color, 1-2 digits.
	fragAlpha = `\.\d{1,2}`

	// fragImportant marks a declaration as !important.
	fragImportant = `!`

	// fragNamed is a bare value name: word characters and "$" with
	// internal single hyphens. Two consecutive hyphens never match, so a
	// named value cannot absorb a following breakpoint marker.
	fragNamed = `[\w$]+(?:-[\w$]+)*`

	// fragPseudoSimple is the unvalidated pseudo form used only by the
	// fast pattern: a colon followed by letters and hyphens.
	fragPseudoSimple = `:[a-z-]+`

	// fragBreakpoint is a responsive variant suffix: "--" plus a
	// lowercase name.
	fragBreakpoint = `--[a-z]+`
)

// pseudoSyntax returns the validated pseudo fragment: a colon followed by
// the alternation of every canonical pseudo-state name and alias, sorted in
// descending lexicographic order so an alias never shadows a longer name
// sharing its prefix.
func pseudoSyntax() string {
	names := make([]string, 0, len(pseudoStates)*2)
	for _, ps := range pseudoStates {
		names = append(names, ps.Canonical, ps.Alias)
	}
	sortDescending(names)
	return `:(?:` + strings.Join(names, `|`) + `)`
}

// parentSelector is the precise parent prefix: parent, optional validated
// pseudo, separator. The separator that must follow arbitrates any
// pseudo-prefix ambiguity, so no trailing guard is needed here.
func parentSelector() string {
	return `(?P<parent>` + fragParent + `)(?P<parentPseudo>` + pseudoSyntax() + `)?(?P<parentSep>` + fragParentSep + `)`
}

// parentSelectorSimple is the fast-mode parent prefix: parent, optional
// unvalidated dot- or colon-prefixed suffix, separator. It accepts a strict
// superset of parentSelector in exchange for a cheaper match.
func parentSelectorSimple() string {
	return `(?P<parent>` + fragParent + `)(?:[.:][a-zA-Z-]+)?(?P<parentSep>` + fragParentSep + `)`
}
