package atomscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchValue(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    Value
		wantOK  bool
	}{
		{
			name:    "fraction",
			payload: "1/2",
			want:    Value{Kind: ValueFraction, Numerator: 1, Denominator: 2},
			wantOK:  true,
		},
		{
			name:    "fraction with multi-digit denominator",
			payload: "3/12",
			want:    Value{Kind: ValueFraction, Numerator: 3, Denominator: 12},
			wantOK:  true,
		},
		{
			name:    "zero denominator rejected",
			payload: "1/0",
			wantOK:  false,
		},
		{
			name:    "short hex color",
			payload: "#fff",
			want:    Value{Kind: ValueColor, Hex: "fff"},
			wantOK:  true,
		},
		{
			name:    "long hex color",
			payload: "#ff0000",
			want:    Value{Kind: ValueColor, Hex: "ff0000"},
			wantOK:  true,
		},
		{
			name:    "hex color with alpha",
			payload: "#ffffff.5",
			want:    Value{Kind: ValueColor, Hex: "ffffff", Alpha: 0.5, HasAlpha: true},
			wantOK:  true,
		},
		{
			name:    "hex color with two-digit alpha",
			payload: "#000.25",
			want:    Value{Kind: ValueColor, Hex: "000", Alpha: 0.25, HasAlpha: true},
			wantOK:  true,
		},
		{
			name:    "uppercase hex is not a color",
			payload: "#FFF",
			wantOK:  false,
		},
		{
			name:    "number with unit",
			payload: "10px",
			want:    Value{Kind: ValueNumber, Number: 10, Unit: "px"},
			wantOK:  true,
		},
		{
			name:    "negative decimal with unit",
			payload: "-1.5em",
			want:    Value{Kind: ValueNumber, Number: -1.5, Unit: "em"},
			wantOK:  true,
		},
		{
			name:    "bare fractional part",
			payload: ".5",
			want:    Value{Kind: ValueNumber, Number: 0.5},
			wantOK:  true,
		},
		{
			name:    "percent unit",
			payload: "100%",
			want:    Value{Kind: ValueNumber, Number: 100, Unit: "%"},
			wantOK:  true,
		},
		{
			name:    "unitless number",
			payload: "0",
			want:    Value{Kind: ValueNumber, Number: 0},
			wantOK:  true,
		},
		{
			name:    "named value",
			payload: "red",
			want:    Value{Kind: ValueNamed, Name: "red"},
			wantOK:  true,
		},
		{
			name:    "hyphenated name",
			payload: "not-allowed",
			want:    Value{Kind: ValueNamed, Name: "not-allowed"},
			wantOK:  true,
		},
		{
			name:    "variable name",
			payload: "$brand",
			want:    Value{Kind: ValueNamed, Name: "$brand"},
			wantOK:  true,
		},
		{
			name:    "double hyphen rejected",
			payload: "a--b",
			wantOK:  false,
		},
		{
			name:    "empty payload",
			payload: "",
			wantOK:  false,
		},
		{
			name:    "stray slash",
			payload: "a/b",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MatchValue(tt.payload)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// A hex-looking prefix followed by more characters must not be read as a
// color; it falls through to the later alternatives or fails outright.
func TestMatchValue_HexPrefixAmbiguity(t *testing.T) {
	_, ok := MatchValue("#ffff")
	assert.False(t, ok, "4 hex digits is neither form")

	_, ok = MatchValue("#fffffff")
	assert.False(t, ok, "7 hex digits is neither form")
}

func TestValueKind_String(t *testing.T) {
	assert.Equal(t, "fraction", ValueFraction.String())
	assert.Equal(t, "color", ValueColor.String())
	assert.Equal(t, "number", ValueNumber.String())
	assert.Equal(t, "named", ValueNamed.String())
	assert.Equal(t, "invalid", ValueKind(0).String())
}
