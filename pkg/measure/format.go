package measure

import (
	"math"
	"strconv"
	"strings"
)

const (
	// Unavailable is rendered in place of a length that cannot be displayed.
	Unavailable = "—"

	// FeetMark and InchMark are the prime and double prime unit marks.
	FeetMark = "′"
	InchMark = "″"

	// DefaultEpsilon is the tolerance used to match a fraction to a glyph.
	DefaultEpsilon = 1e-6
)

// Glyph maps a fractional inch value to its display symbol.
type Glyph struct {
	Value  float64
	Symbol string
}

// EighthGlyphs returns the seven non-zero eighths in ascending order.
func EighthGlyphs() []Glyph {
	return []Glyph{
		{Value: 1.0 / 8, Symbol: "⅛"},
		{Value: 1.0 / 4, Symbol: "¼"},
		{Value: 3.0 / 8, Symbol: "⅜"},
		{Value: 1.0 / 2, Symbol: "½"},
		{Value: 5.0 / 8, Symbol: "⅝"},
		{Value: 3.0 / 4, Symbol: "¾"},
		{Value: 7.0 / 8, Symbol: "⅞"},
	}
}

// Formatter renders lengths as feet and inches with fraction glyphs.
// Glyphs are tested in order and the first within Epsilon wins.
type Formatter struct {
	Glyphs  []Glyph
	Epsilon float64
}

// DefaultFormatter returns a Formatter with the eighths table and DefaultEpsilon.
func DefaultFormatter() Formatter {
	return NewFormatter(DefaultEpsilon)
}

// NewFormatter returns a Formatter with the eighths table and the given
// epsilon. A non-positive or non-finite epsilon falls back to DefaultEpsilon.
func NewFormatter(epsilon float64) Formatter {
	if !(epsilon > 0) || math.IsInf(epsilon, 0) {
		epsilon = DefaultEpsilon
	}
	return Formatter{Glyphs: EighthGlyphs(), Epsilon: epsilon}
}

// FormatLength formats totalInches with the default formatter.
func FormatLength(totalInches float64) string {
	return DefaultFormatter().Format(totalInches)
}

// Format renders totalInches as <feet>′-<inches>″, rounding inches to the
// nearest eighth. The feet part is omitted below one foot, a zero remainder is
// kept ("1′-0″"), and negative lengths carry a leading "-".
// Non-finite input renders as Unavailable.
func (f Formatter) Format(totalInches float64) string {
	if math.IsNaN(totalInches) || math.IsInf(totalInches, 0) {
		return Unavailable
	}

	sign := ""
	if totalInches < 0 {
		sign = "-"
	}
	abs := math.Abs(totalInches)
	feet := math.Floor(abs / InchesPerFoot)
	inches := abs - feet*InchesPerFoot

	eighths := roundHalfUp(inches*8) / 8
	whole := math.Floor(eighths)
	frac := eighths - whole

	var inchStr string
	switch symbol := f.glyph(frac); {
	case symbol != "" && whole == 0:
		inchStr = symbol + InchMark
	case symbol != "":
		inchStr = formatNumber(whole) + symbol + InchMark
	default:
		inchStr = formatNumber(round3(eighths)) + InchMark
	}

	if feet == 0 {
		return sign + inchStr
	}
	return sign + formatNumber(feet) + FeetMark + "-" + inchStr
}

// glyph returns the symbol matching frac, or "" when none matches.
func (f Formatter) glyph(frac float64) string {
	for _, g := range f.Glyphs {
		if math.Abs(frac-g.Value) < f.Epsilon {
			return g.Symbol
		}
	}
	return ""
}

// StripInchMark removes the trailing inch mark from a formatted length.
func StripInchMark(s string) string {
	return strings.TrimSuffix(s, InchMark)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
