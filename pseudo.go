package atomscan

import "strings"

// PseudoState pairs a canonical pseudo-class name with its short alias.
// Tokens may carry either form; CanonicalPseudo resolves both.
type PseudoState struct {
	Canonical string
	Alias     string
}

// pseudoStates is the single source of truth for pseudo-state names. Both
// lookup directions below are derived from it at init, so the two maps can
// never drift apart. Aliases and canonical names are each unique.
var pseudoStates = []PseudoState{
	{"active", "a"},
	{"checked", "c"},
	{"default", "d"},
	{"disabled", "di"},
	{"empty", "e"},
	{"enabled", "en"},
	{"first", "fi"},
	{"first-child", "fc"},
	{"first-of-type", "fot"},
	{"focus", "f"},
	{"focus-within", "fw"},
	{"fullscreen", "fs"},
	{"hover", "h"},
	{"in-range", "ir"},
	{"indeterminate", "ind"},
	{"invalid", "inv"},
	{"last-child", "lc"},
	{"last-of-type", "lot"},
	{"left", "l"},
	{"link", "li"},
	{"only-child", "oc"},
	{"only-of-type", "oot"},
	{"optional", "o"},
	{"out-of-range", "oor"},
	{"placeholder-shown", "ps"},
	{"read-only", "ro"},
	{"read-write", "rw"},
	{"required", "req"},
	{"right", "r"},
	{"root", "rt"},
	{"scope", "s"},
	{"target", "t"},
	{"valid", "va"},
	{"visited", "vi"},
}

var (
	pseudoByCanonical = make(map[string]string, len(pseudoStates))
	pseudoByAlias     = make(map[string]string, len(pseudoStates))
)

func init() {
	for _, ps := range pseudoStates {
		pseudoByCanonical[ps.Canonical] = ps.Canonical
		pseudoByAlias[ps.Alias] = ps.Canonical
	}
}

// PseudoStates returns a copy of the pseudo-state table.
func PseudoStates() []PseudoState {
	out := make([]PseudoState, len(pseudoStates))
	copy(out, pseudoStates)
	return out
}

// CanonicalPseudo resolves a canonical pseudo-state name or its short alias
// to the canonical form. A leading ":" is tolerated, so captured fragments
// like ":h" resolve directly. The second return value is false for
// unrecognized names.
func CanonicalPseudo(name string) (string, bool) {
	name = strings.TrimLeft(name, ":")
	if canonical, ok := pseudoByCanonical[name]; ok {
		return canonical, true
	}
	if canonical, ok := pseudoByAlias[name]; ok {
		return canonical, true
	}
	return "", false
}
