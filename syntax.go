package atomscan

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// identifierRe constrains property identifiers to letters. Anything else
// would be a caller programming error and could also corrupt the compiled
// alternation, so construction rejects it outright.
var identifierRe = regexp.MustCompile(`^[A-Za-z]+$`)

// sortDescending orders identifiers in descending lexicographic order in
// place. In that order no identifier precedes a longer identifier sharing
// its prefix, so "B" can never shadow "Bgc" inside an alternation.
func sortDescending(keys []string) {
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
}

// tableKeys extracts and validates the identifier set of a property table.
// Descriptor values are opaque to the grammar; only keys are read.
func tableKeys[D any](table map[string]D) ([]string, error) {
	keys := make([]string, 0, len(table))
	for key := range table {
		if !identifierRe.MatchString(key) {
			return nil, fmt.Errorf("invalid property identifier %q: must be one or more letters", key)
		}
		keys = append(keys, key)
	}
	sortDescending(keys)
	return keys, nil
}

// buildMainSyntax assembles the property/value alternation from the two
// sorted identifier sets. Rule identifiers require a parenthesized payload;
// helper identifiers stand alone or take one optionally. Either set may be
// empty; with both empty the result is the empty string, signaling that no
// identifiers are defined.
func buildMainSyntax(ruleKeys, helperKeys []string) string {
	var alternatives []string

	if len(ruleKeys) > 0 {
		alternatives = append(alternatives,
			`(?P<atomicSelector>`+strings.Join(ruleKeys, `|`)+`)\((?P<atomicValue>`+fragValueChars+`+)\)`)
	}
	if len(helperKeys) > 0 {
		alternatives = append(alternatives,
			`(?P<helperSelector>`+strings.Join(helperKeys, `|`)+`)(?:\((?P<helperValue>`+fragValueChars+`+)\))?`)
	}

	switch len(alternatives) {
	case 0:
		return ""
	case 1:
		return alternatives[0]
	default:
		return `(?:` + alternatives[0] + `|` + alternatives[1] + `)`
	}
}
