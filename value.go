package atomscan

import (
	"regexp"
	"strconv"
)

// ValueKind identifies which shape a raw value payload decomposed into.
type ValueKind int

// Value shapes, in the order MatchValue tries them.
const (
	ValueFraction ValueKind = iota + 1
	ValueColor
	ValueNumber
	ValueNamed
)

// String returns the shape name for diagnostics.
func (k ValueKind) String() string {
	switch k {
	case ValueFraction:
		return "fraction"
	case ValueColor:
		return "color"
	case ValueNumber:
		return "number"
	case ValueNamed:
		return "named"
	}
	return "invalid"
}

// Value is the decomposition of a raw value payload. Exactly the fields of
// the matched Kind are populated.
type Value struct {
	Kind ValueKind

	// Fraction
	Numerator   int
	Denominator int

	// Color
	Hex      string // 3 or 6 hex digits, without the leading "#"
	Alpha    float64
	HasAlpha bool

	// Number
	Number float64
	Unit   string

	// Named
	Name string
}

// The value alternatives, each anchored to the full payload. Full anchoring
// also covers the hex-vs-longer-name ambiguity: a hex-looking prefix with
// trailing unit characters fails the color alternative outright.
var (
	fractionRe = regexp.MustCompile(`^(\d+)/([1-9]\d*)$`)
	colorRe    = regexp.MustCompile(`^` + fragHex + `(` + fragAlpha + `)?$`)
	numberRe   = regexp.MustCompile(`^(` + fragNumber + `)(` + fragUnit + `)?$`)
	namedRe    = regexp.MustCompile(`^` + fragNamed + `$`)
)

// MatchValue decomposes a raw value payload into its most specific shape,
// trying fraction, color, number+unit and bare name in that order. The
// first alternative covering the entire payload wins. Returns ok=false when
// no alternative matches, e.g. stray characters or a zero-leading
// denominator.
func MatchValue(payload string) (Value, bool) {
	if m := fractionRe.FindStringSubmatch(payload); m != nil {
		numerator, _ := strconv.Atoi(m[1])
		denominator, _ := strconv.Atoi(m[2])
		return Value{Kind: ValueFraction, Numerator: numerator, Denominator: denominator}, true
	}

	if m := colorRe.FindStringSubmatch(payload); m != nil {
		v := Value{Kind: ValueColor, Hex: payload[1 : len(payload)-len(m[1])]}
		if m[1] != "" {
			// ".5" -> 0.5
			v.Alpha, _ = strconv.ParseFloat("0"+m[1], 64)
			v.HasAlpha = true
		}
		return v, true
	}

	if m := numberRe.FindStringSubmatch(payload); m != nil {
		number, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return Value{Kind: ValueNumber, Number: number, Unit: m[2]}, true
		}
	}

	if namedRe.MatchString(payload) {
		return Value{Kind: ValueNamed, Name: payload}, true
	}

	return Value{}, false
}
