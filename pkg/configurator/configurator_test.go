package configurator

import (
	"math"
	"testing"

	"github.com/bft-labs/ezladder/pkg/measure"
	"github.com/bft-labs/ezladder/pkg/standoff"
)

func TestDerive_Defaults(t *testing.T) {
	d := Derive(DefaultInputs(), standoff.DefaultPolicy())

	if d.RequestedLadderHeightInches != 240 {
		t.Errorf("RequestedLadderHeightInches = %v, want 240", d.RequestedLadderHeightInches)
	}
	if d.LadderHeight != "20′-0″" {
		t.Errorf("LadderHeight = %q, want %q", d.LadderHeight, "20′-0″")
	}
	if d.LadderBreakdown != (measure.FeetInches{Feet: 20}) {
		t.Errorf("LadderBreakdown = %+v, want {20 0}", d.LadderBreakdown)
	}
	if d.LadderBreakdownDisplay != "20′-0″" {
		t.Errorf("LadderBreakdownDisplay = %q, want %q", d.LadderBreakdownDisplay, "20′-0″")
	}
	if d.RequestedStandoffInches != 12 {
		t.Errorf("RequestedStandoffInches = %v, want 12", d.RequestedStandoffInches)
	}
	if d.Standoff != "1′-0″" {
		t.Errorf("Standoff = %q, want %q", d.Standoff, "1′-0″")
	}
	if d.Part != (standoff.Part{SKU: "SO3", ValueInches: 13.5}) {
		t.Errorf("Part = %+v, want SO3 @ 13.5", d.Part)
	}
	if d.Offset != "1′-1½″" {
		t.Errorf("Offset = %q, want %q", d.Offset, "1′-1½″")
	}
	if d.RangeMin != "7″" || d.RangeMax != "1′-3⅜″" {
		t.Errorf("range labels = %q, %q", d.RangeMin, d.RangeMax)
	}
}

func TestDerive(t *testing.T) {
	p := standoff.DefaultPolicy()
	tests := []struct {
		name          string
		in            Inputs
		wantHeight    string
		wantBreakdown string
		wantStandoff  float64
		wantSKU       string
	}{
		{
			name:          "fractional inches",
			in:            Inputs{LadderFeet: 6, LadderInches: 3.5, StandoffInches: 9},
			wantHeight:    "6′-3½″",
			wantBreakdown: "6′-3½″",
			wantStandoff:  9,
			wantSKU:       "SO2",
		},
		{
			name:          "inches clamped below a foot",
			in:            Inputs{LadderFeet: 0, LadderInches: 14, StandoffInches: 11},
			wantHeight:    "12″",
			wantBreakdown: "0′-12″",
			wantStandoff:  11,
			wantSKU:       "SO2",
		},
		{
			name:          "standoff clamped to max",
			in:            Inputs{LadderFeet: 10, StandoffInches: 30},
			wantHeight:    "10′-0″",
			wantBreakdown: "10′-0″",
			wantStandoff:  15.375,
			wantSKU:       "SO3",
		},
		{
			name:          "non-finite fields",
			in:            Inputs{LadderFeet: math.NaN(), LadderInches: math.Inf(1), StandoffInches: math.NaN()},
			wantHeight:    "0″",
			wantBreakdown: "0′-0″",
			wantStandoff:  7,
			wantSKU:       "SO2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Derive(tt.in, p)
			if d.LadderHeight != tt.wantHeight {
				t.Errorf("LadderHeight = %q, want %q", d.LadderHeight, tt.wantHeight)
			}
			if d.LadderBreakdownDisplay != tt.wantBreakdown {
				t.Errorf("LadderBreakdownDisplay = %q, want %q", d.LadderBreakdownDisplay, tt.wantBreakdown)
			}
			if d.RequestedStandoffInches != tt.wantStandoff {
				t.Errorf("RequestedStandoffInches = %v, want %v", d.RequestedStandoffInches, tt.wantStandoff)
			}
			if d.Part.SKU != tt.wantSKU {
				t.Errorf("Part.SKU = %q, want %q", d.Part.SKU, tt.wantSKU)
			}
		})
	}
}

func TestDerive_CustomPolicy(t *testing.T) {
	p := standoff.Policy{
		Range: standoff.Range{Min: 4, Max: 8, Step: 0.25},
		Catalog: standoff.Catalog{
			{UpTo: 5, SKU: "S-A", ValueInches: 4.5},
			{UpTo: 8, SKU: "S-B", ValueInches: 6.25},
		},
		GlyphEpsilon: measure.DefaultEpsilon,
	}

	d := Derive(Inputs{LadderFeet: 1, StandoffInches: 2}, p)
	if d.RequestedStandoffInches != 4 || d.Part.SKU != "S-A" {
		t.Errorf("got %v %+v, want 4 S-A", d.RequestedStandoffInches, d.Part)
	}
	if d.Offset != "4½″" {
		t.Errorf("Offset = %q, want %q", d.Offset, "4½″")
	}

	d = Derive(Inputs{StandoffInches: 7}, p)
	if d.Part.SKU != "S-B" || d.Offset != "6¼″" {
		t.Errorf("got %+v %q, want S-B 6¼″", d.Part, d.Offset)
	}
	if d.RangeMin != "4″" || d.RangeMax != "8″" {
		t.Errorf("range labels = %q, %q", d.RangeMin, d.RangeMax)
	}
}

func TestDerive_StandoffOnStep(t *testing.T) {
	d := Derive(Inputs{LadderFeet: 20, StandoffInches: 11.06}.Normalize(), standoff.DefaultPolicy())
	if d.RequestedStandoffInches != 11 {
		t.Errorf("RequestedStandoffInches = %v, want 11", d.RequestedStandoffInches)
	}
	if d.Standoff != "11″" || d.Part.SKU != "SO2" {
		t.Errorf("Standoff = %q with %s, want 11″ with SO2", d.Standoff, d.Part.SKU)
	}
	if d.Part != standoff.Resolve(d.RequestedStandoffInches) {
		t.Errorf("Part = %+v disagrees with the displayed standoff", d.Part)
	}

	p := standoff.DefaultPolicy()
	p.Range.Step = 1
	d = Derive(Inputs{StandoffInches: 9.4}, p)
	if d.RequestedStandoffInches != 9 || d.Standoff != "9″" {
		t.Errorf("step 1: got %v %q, want 9 9″", d.RequestedStandoffInches, d.Standoff)
	}
}

func TestDerive_DoesNotMutateInputs(t *testing.T) {
	in := Inputs{LadderFeet: 3, LadderInches: 20, StandoffInches: 50}
	d := Derive(in, standoff.DefaultPolicy())
	if d.Inputs != in {
		t.Errorf("Derived.Inputs = %+v, want %+v", d.Inputs, in)
	}
	if in.LadderInches != 20 || in.StandoffInches != 50 {
		t.Errorf("inputs changed: %+v", in)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Inputs
		want Inputs
	}{
		{
			name: "already valid",
			in:   Inputs{LadderFeet: 20, LadderInches: 6, StandoffInches: 12},
			want: Inputs{LadderFeet: 20, LadderInches: 6, StandoffInches: 12},
		},
		{
			name: "fractional feet floored",
			in:   Inputs{LadderFeet: 12.9, LadderInches: 1},
			want: Inputs{LadderFeet: 12, LadderInches: 1},
		},
		{
			name: "negative feet become zero",
			in:   Inputs{LadderFeet: -4},
			want: Inputs{},
		},
		{
			name: "inches clamped",
			in:   Inputs{LadderFeet: 1, LadderInches: 15},
			want: Inputs{LadderFeet: 1, LadderInches: 11.999},
		},
		{
			name: "standoff untouched",
			in:   Inputs{StandoffInches: 99},
			want: Inputs{StandoffInches: 99},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalize(); got != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}

	if got := NormalizeFeet(math.NaN()); got != 0 {
		t.Errorf("NormalizeFeet(NaN) = %v, want 0", got)
	}
	if got := NormalizeInches(math.Inf(-1)); got != 0 {
		t.Errorf("NormalizeInches(-Inf) = %v, want 0", got)
	}
}
