// Package atomscan recognizes and decomposes atomic CSS class tokens in
// source text.
//
// An atomic class token is a compact identifier encoding a single style
// declaration plus optional modifiers, e.g. "D_Bgc(red)!:h--md" (scoped to
// parent "D" as a descendant, background-color red, important, on hover, at
// the "md" breakpoint).
//
// # Grammar
//
// The core of the package is the Grammar type, assembled from two
// caller-supplied property tables (rules take a mandatory parenthesized
// value, helpers may stand alone):
//
//	g, err := atomscan.New(atomscan.DefaultRules(), atomscan.DefaultHelpers())
//	matches := g.FindAll(`<div class="Mb(10px) Bgc(#fff):h">`)
//
// Each match decomposes into parent selector, property, raw value,
// important marker, pseudo-state and breakpoint. Raw values decompose
// further with MatchValue into a fraction, hex color, number+unit, or bare
// name.
//
// # Scanning and tooling
//
// On top of the grammar the package ships a file scanner (ScanFiles), a
// stylesheet auditor (ScanStylesheet), a linter for near-miss tokens (Lint)
// and a CSS emitter (GenerateCSS). The atomscan CLI under cmd/atomscan
// exposes all of these; install with:
//
//	go install github.com/acss-tools/atomscan/cmd/atomscan@latest
package atomscan
