package atomscan

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// DefaultBreakpoints maps breakpoint names to media query conditions.
// Overridable via configuration.
var DefaultBreakpoints = map[string]string{
	"sm": "only screen and (min-width: 480px)",
	"md": "only screen and (min-width: 768px)",
	"lg": "only screen and (min-width: 1024px)",
	"xl": "only screen and (min-width: 1280px)",
}

// GenerateResult contains generation stats.
type GenerateResult struct {
	CSS           string
	RulesEmitted  int
	TokensSkipped int
	Warnings      []string
}

// GenerateCSS emits a stylesheet for the given token references. Each
// distinct token becomes one rule; tokens with an unknown breakpoint or a
// value no shape accepts are skipped with a warning. Helpers without a
// dedicated declaration emit their Styles properties with the raw payload
// or no declaration at all.
func GenerateCSS(g *Grammar, rules, helpers map[string]Rule, refs []TokenReference, breakpoints map[string]string) (*GenerateResult, error) {
	if breakpoints == nil {
		breakpoints = DefaultBreakpoints
	}

	// Deduplicate by token text, deterministic order.
	seen := make(map[string]TokenMatch)
	var tokens []string
	for _, ref := range refs {
		if _, ok := seen[ref.Match.Token]; !ok {
			seen[ref.Match.Token] = ref.Match
			tokens = append(tokens, ref.Match.Token)
		}
	}
	sort.Strings(tokens)

	result := &GenerateResult{}
	// Media-query grouping: "" first, then breakpoints in name order.
	grouped := make(map[string][]string)
	for _, token := range tokens {
		m := seen[token]

		rule, ok := rules[m.Property]
		if !ok {
			rule, ok = helpers[m.Property]
		}
		if !ok {
			result.TokensSkipped++
			result.Warnings = append(result.Warnings, fmt.Sprintf("token %q: property %q has no rule", token, m.Property))
			continue
		}

		media := ""
		if m.Breakpoint != "" {
			media, ok = breakpoints[m.Breakpoint]
			if !ok {
				result.TokensSkipped++
				result.Warnings = append(result.Warnings, fmt.Sprintf("token %q: unknown breakpoint %q", token, m.Breakpoint))
				continue
			}
		}

		value, warn := renderValue(rule, m)
		if warn != "" {
			result.TokensSkipped++
			result.Warnings = append(result.Warnings, warn)
			continue
		}

		var b strings.Builder
		b.WriteString(buildSelector(m))
		b.WriteString(" {")
		if value != "" {
			for _, property := range rule.Styles {
				b.WriteString(fmt.Sprintf(" %s: %s", property, value))
				if m.Important {
					b.WriteString(" !important")
				}
				b.WriteString(";")
			}
		}
		b.WriteString(" }")

		grouped[media] = append(grouped[media], b.String())
		result.RulesEmitted++
	}

	var out strings.Builder
	out.WriteString(strings.Join(grouped[""], "\n"))
	medias := make([]string, 0, len(grouped))
	for media := range grouped {
		if media != "" {
			medias = append(medias, media)
		}
	}
	sort.Strings(medias)
	for _, media := range medias {
		if out.Len() > 0 {
			out.WriteString("\n")
		}
		out.WriteString("@media " + media + " {\n\t")
		out.WriteString(strings.Join(grouped[media], "\n\t"))
		out.WriteString("\n}")
	}
	if out.Len() > 0 {
		out.WriteString("\n")
	}

	result.CSS = out.String()
	return result, nil
}

// buildSelector renders the CSS selector of a token: escaped class name,
// optional parent prefix with combinator, canonical pseudo suffixes.
func buildSelector(m TokenMatch) string {
	var b strings.Builder

	if m.Parent != "" {
		b.WriteString("." + escapeClass(m.Parent))
		if canonical, ok := CanonicalPseudo(m.ParentPseudo); ok {
			b.WriteString(":" + canonical)
		}
		switch m.ParentSep {
		case ">":
			b.WriteString(" > ")
		case "+":
			b.WriteString(" + ")
		default: // "_" descendant
			b.WriteString(" ")
		}
	}

	b.WriteString("." + escapeClass(m.Token))
	if canonical, ok := CanonicalPseudo(m.ValuePseudo); ok {
		b.WriteString(":" + canonical)
	}
	return b.String()
}

// escapeClass backslash-escapes every character CSS does not allow bare in
// a class selector.
func escapeClass(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}

// renderValue turns a token's raw payload into CSS value text. Fractions
// become percentages, colors with alpha become rgba(), named shorthands go
// through the rule's argument table.
func renderValue(rule Rule, m TokenMatch) (value, warning string) {
	if m.RawValue == "" {
		// standalone helper
		return "", ""
	}

	v, ok := MatchValue(m.RawValue)
	if !ok {
		return "", fmt.Sprintf("token %q: value %q matches no value shape", m.Token, m.RawValue)
	}

	switch v.Kind {
	case ValueFraction:
		percent := float64(v.Numerator) / float64(v.Denominator) * 100
		return strconv.FormatFloat(percent, 'f', -1, 64) + "%", ""
	case ValueColor:
		if !v.HasAlpha {
			return "#" + v.Hex, ""
		}
		r, g, b := hexRGB(v.Hex)
		return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, strconv.FormatFloat(v.Alpha, 'f', -1, 64)), ""
	case ValueNumber:
		return m.RawValue, ""
	default: // ValueNamed
		if expanded, ok := rule.Arguments[v.Name]; ok {
			return expanded, ""
		}
		return v.Name, ""
	}
}

// hexRGB expands a 3- or 6-digit hex literal into its channels.
func hexRGB(hex string) (r, g, b int) {
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	parse := func(s string) int {
		n, _ := strconv.ParseInt(s, 16, 32)
		return int(n)
	}
	return parse(hex[0:2]), parse(hex[2:4]), parse(hex[4:6])
}
