package atomscan

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// TokenMatch is the decomposition of one recognized atomic class token.
// Optional parts are empty when absent. Matches are created fresh per call
// and owned by the caller.
type TokenMatch struct {
	Token  string // full token text, boundary excluded
	Offset int    // byte offset of the token within the scanned text

	Parent       string // scoping parent identifier
	ParentPseudo string // pseudo suffix on the parent, ":" included
	ParentSep    string // ">", "_" or "+"

	Property string // matched property identifier
	RawValue string // raw value payload, parentheses excluded
	Helper   bool   // identifier came from the helper table

	Important   bool
	ValuePseudo string // pseudo suffix on the value, ":" included
	Breakpoint  string // breakpoint name, "--" excluded
}

// Grammar recognizes atomic class tokens for one pair of property tables.
// It is immutable after construction and safe for concurrent use; both
// compiled patterns are RE2, so matching is linear in input length.
type Grammar struct {
	ruleSet   map[string]bool
	helperSet map[string]bool

	precise *regexp.Regexp
	fast    *regexp.Regexp
}

// fastRe is shared across grammars: the fast pattern captures any
// letter-run property name, so it does not depend on the tables.
var fastRe = regexp.MustCompile(
	fragBoundary + `(?P<token>` +
		`(?:` + parentSelectorSimple() + `)?` +
		`(?P<atomicSelector>[A-Za-z]+)(?:\((?P<atomicValue>` + fragValueChars + `+)\))?` +
		`(?P<important>` + fragImportant + `)?` +
		`(?P<valuePseudo>` + fragPseudoSimple + `)?` +
		`(?P<breakPoint>` + fragBreakpoint + `)?` +
		`)`,
)

// New builds a Grammar from a rules table and a helpers table. Descriptors
// are opaque: only the identifier keys are read. Identifiers from the rules
// table require a parenthesized value; helper identifiers may stand alone.
// Construction fails fast on malformed identifiers or when both tables are
// empty.
func New[R, H any](rules map[string]R, helpers map[string]H) (*Grammar, error) {
	ruleKeys, err := tableKeys(rules)
	if err != nil {
		return nil, fmt.Errorf("rules table: %w", err)
	}
	helperKeys, err := tableKeys(helpers)
	if err != nil {
		return nil, fmt.Errorf("helpers table: %w", err)
	}

	mainSyntax := buildMainSyntax(ruleKeys, helperKeys)
	if mainSyntax == "" {
		return nil, errors.New("no property identifiers defined")
	}

	source := fragBoundary + `(?P<token>` +
		`(?:` + parentSelector() + `)?` +
		mainSyntax +
		`(?P<important>` + fragImportant + `)?` +
		// RE2 has no lookahead; the word boundary stands in for
		// "not followed by a lowercase letter" so an alias never
		// matches a prefix of a longer run of letters.
		`(?:(?P<valuePseudo>` + pseudoSyntax() + `)\b)?` +
		`(?P<breakPoint>` + fragBreakpoint + `)?` +
		`)`

	precise, err := regexp.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("compiling token pattern: %w", err)
	}

	g := &Grammar{
		ruleSet:   make(map[string]bool, len(ruleKeys)),
		helperSet: make(map[string]bool, len(helperKeys)),
		precise:   precise,
		fast:      fastRe,
	}
	for _, key := range ruleKeys {
		g.ruleSet[key] = true
	}
	for _, key := range helperKeys {
		g.helperSet[key] = true
	}
	return g, nil
}

// Pattern returns the assembled recognition pattern. The precise pattern
// validates property identifiers and pseudo-states against the tables; the
// fast pattern accepts a strict superset and serves as a cheap first pass
// over large inputs, not as a correctness guarantee.
func (g *Grammar) Pattern(fast bool) *regexp.Regexp {
	if fast {
		return g.fast
	}
	return g.precise
}

// HasRule reports whether the identifier is defined in the rules table.
func (g *Grammar) HasRule(identifier string) bool { return g.ruleSet[identifier] }

// HasHelper reports whether the identifier is defined in the helpers table.
func (g *Grammar) HasHelper(identifier string) bool { return g.helperSet[identifier] }

// CanonicalPseudo delegates to the pseudo-state registry.
func (g *Grammar) CanonicalPseudo(name string) (string, bool) {
	return CanonicalPseudo(name)
}

// MatchValue delegates to the value matcher.
func (g *Grammar) MatchValue(payload string) (Value, bool) {
	return MatchValue(payload)
}

// FindAll returns the decomposition of every token the precise pattern
// recognizes in text.
func (g *Grammar) FindAll(text string) []TokenMatch {
	return findAll(g.precise, text)
}

// FindAllFast is FindAll with the fast pattern: more candidates, no
// validation. Callers re-validate candidates with FindAll or MatchToken.
func (g *Grammar) FindAllFast(text string) []TokenMatch {
	return findAll(g.fast, text)
}

// MatchToken decomposes a single candidate token. It returns ok=false
// unless the precise pattern matches the candidate in full.
func (g *Grammar) MatchToken(candidate string) (TokenMatch, bool) {
	for _, m := range g.FindAll(candidate) {
		if m.Offset == 0 && m.Token == candidate {
			return m, true
		}
	}
	return TokenMatch{}, false
}

// findAll runs repeated-match scanning and maps named capture groups onto
// TokenMatch fields. It works for both the precise and the fast pattern;
// groups a pattern does not define simply stay empty.
func findAll(re *regexp.Regexp, text string) []TokenMatch {
	indices := re.FindAllStringSubmatchIndex(text, -1)
	if indices == nil {
		return nil
	}

	matches := make([]TokenMatch, 0, len(indices))
	for _, idx := range indices {
		m := TokenMatch{
			Token:        group(re, idx, text, "token"),
			Parent:       group(re, idx, text, "parent"),
			ParentPseudo: group(re, idx, text, "parentPseudo"),
			ParentSep:    group(re, idx, text, "parentSep"),
			Important:    group(re, idx, text, "important") != "",
			ValuePseudo:  group(re, idx, text, "valuePseudo"),
			Breakpoint:   strings.TrimPrefix(group(re, idx, text, "breakPoint"), "--"),
		}
		if i := re.SubexpIndex("token"); i >= 0 && idx[2*i] >= 0 {
			m.Offset = idx[2*i]
		}

		if helper := group(re, idx, text, "helperSelector"); helper != "" {
			m.Property = helper
			m.RawValue = group(re, idx, text, "helperValue")
			m.Helper = true
		} else {
			m.Property = group(re, idx, text, "atomicSelector")
			m.RawValue = group(re, idx, text, "atomicValue")
		}

		matches = append(matches, m)
	}
	return matches
}

// group extracts a named capture from one FindAllStringSubmatchIndex
// record, or "" when the group is absent or did not participate.
func group(re *regexp.Regexp, idx []int, text, name string) string {
	i := re.SubexpIndex(name)
	if i < 0 || 2*i+1 >= len(idx) || idx[2*i] < 0 {
		return ""
	}
	return text[idx[2*i]:idx[2*i+1]]
}
