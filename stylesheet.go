package atomscan

import (
	"fmt"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ExtractClassNames lexes CSS content and returns every class selector
// name, in order of appearance and deduplicated. Backslash escapes are
// removed, so an escaped atomic selector like `.Bgc\(red\)` comes back as
// the token text "Bgc(red)".
func ExtractClassNames(content string) []string {
	lexer := css.NewLexer(parse.NewInputString(content))

	var names []string
	seen := make(map[string]bool)
	inBlock := 0

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal - just break
			break
		}

		switch tt {
		case css.LeftBraceToken:
			inBlock++
		case css.RightBraceToken:
			if inBlock > 0 {
				inBlock--
			}
		case css.DelimToken:
			// class selectors only appear outside declaration blocks
			if inBlock > 0 || len(text) == 0 || text[0] != '.' {
				continue
			}
			tt2, nameBytes := lexer.Next()
			if tt2 != css.IdentToken {
				continue
			}
			name := strings.ReplaceAll(string(nameBytes), `\`, "")
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}

	return names
}

// ScanStylesheets audits CSS files matching the given glob patterns and
// returns a reference for each class selector that is a well-formed atomic
// class token.
func ScanStylesheets(g *Grammar, patterns []string) ([]TokenReference, ScanStats, error) {
	files, stats, err := expandGlobPatterns(patterns)
	if err != nil {
		return nil, stats, err
	}

	var allRefs []TokenReference
	for _, file := range files {
		refs, err := ScanStylesheet(g, file)
		if err != nil {
			// unreadable file, keep going
			continue
		}
		allRefs = append(allRefs, refs...)
	}

	return allRefs, stats, nil
}

// ScanStylesheet parses a CSS file and returns a reference for each class
// selector that is a well-formed atomic class token under the grammar.
// Selectors that are not atomic tokens are simply skipped; auditing them is
// the linter's job.
func ScanStylesheet(g *Grammar, path string) ([]TokenReference, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}

	var refs []TokenReference
	for _, name := range ExtractClassNames(string(content)) {
		m, ok := g.MatchToken(name)
		if !ok {
			continue
		}
		refs = append(refs, TokenReference{
			Match: m,
			Location: FileLocation{
				File: path,
				Text: "." + name,
			},
			LineContent: "." + name,
		})
	}

	return refs, nil
}
