package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/acss-tools/atomscan"
)

var parseCmd = &cobra.Command{
	Use:   "parse <token>...",
	Short: "Decompose atomic class tokens given as arguments",
	Long: `Parse one or more atomic class tokens and print their decomposition:
parent selector, property or helper, value, pseudo-state and breakpoint.
Exits 1 if any argument is not a well-formed token.`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runParse,
}

func init() {
	f := parseCmd.Flags()
	f.String("format", "text", "Output format: text|json")
	f.Bool("value", false, "Treat arguments as raw value payloads instead of tokens")
}

func runParse(cmd *cobra.Command, args []string) error {
	g, _, _, err := buildGrammar()
	if err != nil {
		return fmt.Errorf("building grammar: %w", err)
	}

	if valueMode, _ := cmd.Flags().GetBool("value"); valueMode {
		return runParseValues(g, args)
	}

	format := getStringWithFallback("format", "parse.format", "text")

	var failed bool
	for _, arg := range args {
		m, ok := g.MatchToken(arg)
		if !ok {
			fmt.Fprintf(os.Stderr, "%s: not a valid atomic class token\n", arg)
			failed = true
			continue
		}

		if format == "json" {
			if err := printMatchJSON(g, m); err != nil {
				return err
			}
		} else {
			printMatch(g, m)
		}
	}

	if failed {
		os.Exit(1)
	}
	return nil
}

// runParseValues decomposes raw value payloads, bypassing the token grammar.
func runParseValues(g *atomscan.Grammar, args []string) error {
	var failed bool
	for _, arg := range args {
		v, ok := g.MatchValue(arg)
		if !ok {
			fmt.Fprintf(os.Stderr, "%s: matches no value shape\n", arg)
			failed = true
			continue
		}

		switch v.Kind {
		case atomscan.ValueFraction:
			fmt.Printf("%s: fraction %d/%d\n", arg, v.Numerator, v.Denominator)
		case atomscan.ValueColor:
			if v.HasAlpha {
				fmt.Printf("%s: color #%s alpha %g\n", arg, v.Hex, v.Alpha)
			} else {
				fmt.Printf("%s: color #%s\n", arg, v.Hex)
			}
		case atomscan.ValueNumber:
			if v.Unit != "" {
				fmt.Printf("%s: number %g unit %s\n", arg, v.Number, v.Unit)
			} else {
				fmt.Printf("%s: number %g\n", arg, v.Number)
			}
		default:
			fmt.Printf("%s: named %s\n", arg, v.Name)
		}
	}

	if failed {
		os.Exit(1)
	}
	return nil
}

func printMatch(g *atomscan.Grammar, m atomscan.TokenMatch) {
	fmt.Printf("%s\n", m.Token)
	if m.Parent != "" {
		fmt.Printf("  parent:     %s\n", m.Parent)
		if m.ParentPseudo != "" {
			canonical, _ := g.CanonicalPseudo(m.ParentPseudo)
			fmt.Printf("  parent pseudo: :%s\n", canonical)
		}
		fmt.Printf("  combinator: %s\n", m.ParentSep)
	}
	if m.Helper {
		fmt.Printf("  helper:     %s\n", m.Property)
	} else {
		fmt.Printf("  property:   %s\n", m.Property)
	}
	if m.RawValue != "" {
		fmt.Printf("  value:      %s\n", m.RawValue)
		if v, ok := g.MatchValue(m.RawValue); ok {
			fmt.Printf("  value kind: %s\n", v.Kind)
		}
	}
	if m.Important {
		fmt.Printf("  important:  true\n")
	}
	if m.ValuePseudo != "" {
		canonical, _ := g.CanonicalPseudo(m.ValuePseudo)
		fmt.Printf("  pseudo:     :%s\n", canonical)
	}
	if m.Breakpoint != "" {
		fmt.Printf("  breakpoint: %s\n", m.Breakpoint)
	}
}

// parsedToken is the JSON shape for a single decomposed token.
type parsedToken struct {
	Token        string `json:"token"`
	Parent       string `json:"parent,omitempty"`
	ParentPseudo string `json:"parentPseudo,omitempty"`
	Combinator   string `json:"combinator,omitempty"`
	Property     string `json:"property,omitempty"`
	Helper       string `json:"helper,omitempty"`
	Value        string `json:"value,omitempty"`
	ValueKind    string `json:"valueKind,omitempty"`
	Important    bool   `json:"important,omitempty"`
	Pseudo       string `json:"pseudo,omitempty"`
	Breakpoint   string `json:"breakpoint,omitempty"`
}

func printMatchJSON(g *atomscan.Grammar, m atomscan.TokenMatch) error {
	out := parsedToken{
		Token:      m.Token,
		Parent:     m.Parent,
		Combinator: m.ParentSep,
		Value:      m.RawValue,
		Important:  m.Important,
		Breakpoint: m.Breakpoint,
	}
	if m.Helper {
		out.Helper = m.Property
	} else {
		out.Property = m.Property
	}
	if m.ParentPseudo != "" {
		out.ParentPseudo, _ = g.CanonicalPseudo(m.ParentPseudo)
	}
	if m.ValuePseudo != "" {
		out.Pseudo, _ = g.CanonicalPseudo(m.ValuePseudo)
	}
	if m.RawValue != "" {
		if v, ok := g.MatchValue(m.RawValue); ok {
			out.ValueKind = v.Kind.String()
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
