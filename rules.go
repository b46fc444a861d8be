package atomscan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rule describes the style output of a property identifier. The grammar
// itself never inspects rules, it only reads table keys; rules drive the
// CSS emitter and give lint diagnostics their human-readable names.
type Rule struct {
	Name      string            `yaml:"name"`                // e.g. "background-color"
	Styles    []string          `yaml:"styles"`              // CSS properties receiving the value
	Arguments map[string]string `yaml:"arguments,omitempty"` // named value shorthands, e.g. b -> block
}

// defaultRules maps rule identifiers to their declarations. Identifiers
// follow the Emmet-style abbreviation convention: capitalized property
// initials, value in parentheses.
var defaultRules = map[string]Rule{
	"Ai":     {Name: "align-items", Styles: []string{"align-items"}, Arguments: map[string]string{"b": "baseline", "c": "center", "fe": "flex-end", "fs": "flex-start", "st": "stretch"}},
	"B":      {Name: "bottom", Styles: []string{"bottom"}, Arguments: map[string]string{"a": "auto"}},
	"Bd":     {Name: "border", Styles: []string{"border"}},
	"Bdc":    {Name: "border-color", Styles: []string{"border-color"}, Arguments: map[string]string{"t": "transparent", "cc": "currentColor"}},
	"Bdrs":   {Name: "border-radius", Styles: []string{"border-radius"}},
	"Bdw":    {Name: "border-width", Styles: []string{"border-width"}, Arguments: map[string]string{"m": "medium", "tn": "thin", "tc": "thick"}},
	"Bgc":    {Name: "background-color", Styles: []string{"background-color"}, Arguments: map[string]string{"t": "transparent", "cc": "currentColor"}},
	"Bgi":    {Name: "background-image", Styles: []string{"background-image"}, Arguments: map[string]string{"n": "none"}},
	"Bgp":    {Name: "background-position", Styles: []string{"background-position"}},
	"Bgz":    {Name: "background-size", Styles: []string{"background-size"}, Arguments: map[string]string{"a": "auto", "ct": "contain", "cv": "cover"}},
	"Bxsh":   {Name: "box-shadow", Styles: []string{"box-shadow"}, Arguments: map[string]string{"n": "none"}},
	"C":      {Name: "color", Styles: []string{"color"}, Arguments: map[string]string{"t": "transparent", "cc": "currentColor"}},
	"Cur":    {Name: "cursor", Styles: []string{"cursor"}, Arguments: map[string]string{"a": "auto", "d": "default", "p": "pointer", "na": "not-allowed"}},
	"D":      {Name: "display", Styles: []string{"display"}, Arguments: map[string]string{"b": "block", "f": "flex", "g": "grid", "i": "inline", "ib": "inline-block", "if": "inline-flex", "n": "none", "tb": "table", "tbc": "table-cell"}},
	"End":    {Name: "right", Styles: []string{"right"}, Arguments: map[string]string{"a": "auto"}},
	"Ff":     {Name: "font-family", Styles: []string{"font-family"}, Arguments: map[string]string{"m": "monospace", "s": "serif", "ss": "sans-serif"}},
	"Fs":     {Name: "font-style", Styles: []string{"font-style"}, Arguments: map[string]string{"i": "italic", "n": "normal", "o": "oblique"}},
	"Fw":     {Name: "font-weight", Styles: []string{"font-weight"}, Arguments: map[string]string{"b": "bold", "br": "bolder", "lr": "lighter", "n": "normal"}},
	"Fx":     {Name: "flex", Styles: []string{"flex"}, Arguments: map[string]string{"a": "auto", "n": "none"}},
	"Fxd":    {Name: "flex-direction", Styles: []string{"flex-direction"}, Arguments: map[string]string{"c": "column", "cr": "column-reverse", "r": "row", "rr": "row-reverse"}},
	"Fz":     {Name: "font-size", Styles: []string{"font-size"}},
	"G":      {Name: "gap", Styles: []string{"gap"}},
	"H":      {Name: "height", Styles: []string{"height"}, Arguments: map[string]string{"a": "auto"}},
	"Jc":     {Name: "justify-content", Styles: []string{"justify-content"}, Arguments: map[string]string{"c": "center", "fe": "flex-end", "fs": "flex-start", "sa": "space-around", "sb": "space-between"}},
	"Lh":     {Name: "line-height", Styles: []string{"line-height"}, Arguments: map[string]string{"n": "normal"}},
	"Ls":     {Name: "letter-spacing", Styles: []string{"letter-spacing"}, Arguments: map[string]string{"n": "normal"}},
	"M":      {Name: "margin", Styles: []string{"margin"}, Arguments: map[string]string{"a": "auto"}},
	"Mah":    {Name: "max-height", Styles: []string{"max-height"}, Arguments: map[string]string{"n": "none"}},
	"Maw":    {Name: "max-width", Styles: []string{"max-width"}, Arguments: map[string]string{"n": "none"}},
	"Mb":     {Name: "margin-bottom", Styles: []string{"margin-bottom"}, Arguments: map[string]string{"a": "auto"}},
	"Mend":   {Name: "margin-right", Styles: []string{"margin-right"}, Arguments: map[string]string{"a": "auto"}},
	"Mih":    {Name: "min-height", Styles: []string{"min-height"}},
	"Miw":    {Name: "min-width", Styles: []string{"min-width"}},
	"Mstart": {Name: "margin-left", Styles: []string{"margin-left"}, Arguments: map[string]string{"a": "auto"}},
	"Mt":     {Name: "margin-top", Styles: []string{"margin-top"}, Arguments: map[string]string{"a": "auto"}},
	"Op":     {Name: "opacity", Styles: []string{"opacity"}},
	"Ov":     {Name: "overflow", Styles: []string{"overflow"}, Arguments: map[string]string{"a": "auto", "h": "hidden", "s": "scroll", "v": "visible"}},
	"P":      {Name: "padding", Styles: []string{"padding"}},
	"Pb":     {Name: "padding-bottom", Styles: []string{"padding-bottom"}},
	"Pend":   {Name: "padding-right", Styles: []string{"padding-right"}},
	"Pos":    {Name: "position", Styles: []string{"position"}, Arguments: map[string]string{"a": "absolute", "f": "fixed", "r": "relative", "s": "static", "st": "sticky"}},
	"Pstart": {Name: "padding-left", Styles: []string{"padding-left"}},
	"Pt":     {Name: "padding-top", Styles: []string{"padding-top"}},
	"Start":  {Name: "left", Styles: []string{"left"}, Arguments: map[string]string{"a": "auto"}},
	"T":      {Name: "top", Styles: []string{"top"}, Arguments: map[string]string{"a": "auto"}},
	"Ta":     {Name: "text-align", Styles: []string{"text-align"}, Arguments: map[string]string{"c": "center", "e": "end", "j": "justify", "s": "start"}},
	"Td":     {Name: "text-decoration", Styles: []string{"text-decoration"}, Arguments: map[string]string{"lt": "line-through", "n": "none", "o": "overline", "u": "underline"}},
	"Tt":     {Name: "text-transform", Styles: []string{"text-transform"}, Arguments: map[string]string{"c": "capitalize", "l": "lowercase", "n": "none", "u": "uppercase"}},
	"Va":     {Name: "vertical-align", Styles: []string{"vertical-align"}, Arguments: map[string]string{"b": "bottom", "bl": "baseline", "m": "middle", "t": "top"}},
	"W":      {Name: "width", Styles: []string{"width"}, Arguments: map[string]string{"a": "auto"}},
	"Z":      {Name: "z-index", Styles: []string{"z-index"}, Arguments: map[string]string{"a": "auto"}},
}

// defaultHelpers are identifiers that stand alone without a value payload
// (a parenthesized payload stays legal where one makes sense, e.g.
// LineClamp(3)).
var defaultHelpers = map[string]Rule{
	"Cf":           {Name: "clearfix", Styles: []string{"clear"}},
	"Ell":          {Name: "ellipsis", Styles: []string{"text-overflow"}},
	"Hidden":       {Name: "visually-hidden", Styles: []string{"position"}},
	"IbBox":        {Name: "inline-block-box", Styles: []string{"display"}},
	"LineClamp":    {Name: "line-clamp", Styles: []string{"-webkit-line-clamp"}},
	"Row":          {Name: "row", Styles: []string{"clear"}},
	"StretchedBox": {Name: "stretched-box", Styles: []string{"position"}},
	"Zoom":         {Name: "zoom", Styles: []string{"zoom"}},
}

// DefaultRules returns a copy of the built-in rules table.
func DefaultRules() map[string]Rule {
	out := make(map[string]Rule, len(defaultRules))
	for k, v := range defaultRules {
		out[k] = v
	}
	return out
}

// DefaultHelpers returns a copy of the built-in helpers table.
func DefaultHelpers() map[string]Rule {
	out := make(map[string]Rule, len(defaultHelpers))
	for k, v := range defaultHelpers {
		out[k] = v
	}
	return out
}

// DefaultGrammar builds a Grammar over the built-in tables.
func DefaultGrammar() (*Grammar, error) {
	return New(DefaultRules(), DefaultHelpers())
}

// ruleFile is the YAML schema of a custom rule-table file.
type ruleFile struct {
	Rules   map[string]Rule `yaml:"rules"`
	Helpers map[string]Rule `yaml:"helpers"`
}

// LoadRules reads a YAML rule-table file and merges it over the built-in
// tables. Entries with the same identifier replace the built-in ones.
func LoadRules(path string) (rules, helpers map[string]Rule, err error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read rules file: %w", err)
	}

	var f ruleFile
	if err := yaml.Unmarshal(content, &f); err != nil {
		return nil, nil, fmt.Errorf("parse rules file %s: %w", path, err)
	}

	rules = DefaultRules()
	for k, v := range f.Rules {
		rules[k] = v
	}
	helpers = DefaultHelpers()
	for k, v := range f.Helpers {
		helpers[k] = v
	}
	return rules, helpers, nil
}
