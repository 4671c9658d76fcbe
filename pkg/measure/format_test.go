package measure

import (
	"math"
	"testing"
)

func TestFormatLength(t *testing.T) {
	tests := []struct {
		name   string
		inches float64
		want   string
	}{
		{name: "zero", inches: 0, want: "0″"},
		{name: "feet and half inch", inches: 13.5, want: "1′-1½″"},
		{name: "negative below a foot", inches: -5, want: "-5″"},
		{name: "negative with feet", inches: -13.5, want: "-1′-1½″"},
		{name: "zero remainder keeps inches", inches: 12, want: "1′-0″"},
		{name: "default ladder height", inches: 240, want: "20′-0″"},
		{name: "eighth without whole", inches: 0.125, want: "⅛″"},
		{name: "three quarters without whole", inches: 0.75, want: "¾″"},
		{name: "slider max", inches: 15.375, want: "1′-3⅜″"},
		{name: "slider min", inches: 7, want: "7″"},
		{name: "SO2 offset", inches: 9, want: "9″"},
		{name: "seven eighths", inches: 26.875, want: "2′-2⅞″"},
		{name: "rounds down to eighth", inches: 3.06, want: "3″"},
		{name: "rounds half up to eighth", inches: 0.0625, want: "⅛″"},
		{name: "rounds to quarter", inches: 5.24, want: "5¼″"},
		{name: "rounding reaches twelve inches", inches: 11.95, want: "12″"},
		{name: "NaN", inches: math.NaN(), want: Unavailable},
		{name: "Inf", inches: math.Inf(1), want: Unavailable},
		{name: "negative Inf", inches: math.Inf(-1), want: Unavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatLength(tt.inches); got != tt.want {
				t.Errorf("FormatLength(%v) = %q, want %q", tt.inches, got, tt.want)
			}
		})
	}
}

func TestFormatLength_Total(t *testing.T) {
	for i := -2000; i <= 2000; i++ {
		v := float64(i) * 0.37
		first := FormatLength(v)
		if first == "" {
			t.Fatalf("FormatLength(%v) returned empty string", v)
		}
		if second := FormatLength(v); first != second {
			t.Fatalf("FormatLength(%v) not deterministic: %q then %q", v, first, second)
		}
	}
}

func TestFormatter_CustomTable(t *testing.T) {
	f := Formatter{
		Glyphs:  []Glyph{{Value: 0.5, Symbol: " 1/2"}},
		Epsilon: DefaultEpsilon,
	}

	if got := f.Format(13.5); got != "1′-1 1/2″" {
		t.Errorf("Format(13.5) = %q, want %q", got, "1′-1 1/2″")
	}
	// Fractions missing from the table fall back to decimals.
	if got := f.Format(13.25); got != "1′-1.25″" {
		t.Errorf("Format(13.25) = %q, want %q", got, "1′-1.25″")
	}
}

func TestFormatter_FirstMatchWins(t *testing.T) {
	f := Formatter{
		Glyphs: []Glyph{
			{Value: 0.5, Symbol: "A"},
			{Value: 0.5, Symbol: "B"},
		},
		Epsilon: DefaultEpsilon,
	}
	if got := f.Format(0.5); got != "A″" {
		t.Errorf("Format(0.5) = %q, want %q", got, "A″")
	}
}

func TestNewFormatter_Epsilon(t *testing.T) {
	tests := []struct {
		name    string
		epsilon float64
		want    float64
	}{
		{name: "explicit", epsilon: 1e-3, want: 1e-3},
		{name: "zero falls back", epsilon: 0, want: DefaultEpsilon},
		{name: "negative falls back", epsilon: -1, want: DefaultEpsilon},
		{name: "NaN falls back", epsilon: math.NaN(), want: DefaultEpsilon},
		{name: "Inf falls back", epsilon: math.Inf(1), want: DefaultEpsilon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFormatter(tt.epsilon)
			if f.Epsilon != tt.want {
				t.Errorf("Epsilon = %v, want %v", f.Epsilon, tt.want)
			}
			if len(f.Glyphs) != 7 {
				t.Errorf("len(Glyphs) = %d, want 7", len(f.Glyphs))
			}
		})
	}
}

func TestStripInchMark(t *testing.T) {
	if got := StripInchMark("3½″"); got != "3½" {
		t.Errorf("StripInchMark = %q, want %q", got, "3½")
	}
	if got := StripInchMark(Unavailable); got != Unavailable {
		t.Errorf("StripInchMark(Unavailable) = %q", got)
	}
}
