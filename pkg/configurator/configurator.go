// Package configurator derives everything a ladder configuration form shows
// from its current field values.
//
// The form holds no state of its own here. Each time a field changes the
// caller builds a fresh [Inputs] record and calls [Derive], which returns a
// new [Derived] value:
//
//	in := configurator.DefaultInputs()
//	in.StandoffInches = 11.125
//	d := configurator.Derive(in, standoff.DefaultPolicy())
//	fmt.Println(d.LadderHeight, d.Part.SKU) // 20′-0″ SO3
//
// RequestedLadderHeightInches and RequestedStandoffInches are the two
// quantities downstream visualization, BOM and pricing code consume.
package configurator

import (
	"math"
	"strconv"

	"github.com/bft-labs/ezladder/pkg/measure"
	"github.com/bft-labs/ezladder/pkg/standoff"
)

// Default field values shown when the form opens.
const (
	DefaultLadderFeet     = 20
	DefaultLadderInches   = 0
	DefaultStandoffInches = 12 // about 1′-0″
)

// Inputs is the raw value of each form field.
type Inputs struct {
	LadderFeet     float64 `json:"ladderFeet"`
	LadderInches   float64 `json:"ladderInches"`
	StandoffInches float64 `json:"standoffInches"`
}

// DefaultInputs returns the values the form opens with.
func DefaultInputs() Inputs {
	return Inputs{
		LadderFeet:     DefaultLadderFeet,
		LadderInches:   DefaultLadderInches,
		StandoffInches: DefaultStandoffInches,
	}
}

// Normalize applies the field-level input rules: feet become a non-negative
// whole number and inches are clamped below one foot. The standoff value is
// left for the policy range to clamp.
func (in Inputs) Normalize() Inputs {
	return Inputs{
		LadderFeet:     NormalizeFeet(in.LadderFeet),
		LadderInches:   NormalizeInches(in.LadderInches),
		StandoffInches: in.StandoffInches,
	}
}

// NormalizeFeet floors v to a non-negative whole number. Non-finite input is zero.
func NormalizeFeet(v float64) float64 {
	return math.Max(0, math.Floor(measure.FiniteOrZero(v)))
}

// NormalizeInches clamps v to [0, measure.MaxInchesComponent]. Non-finite input is zero.
func NormalizeInches(v float64) float64 {
	return measure.Clamp(measure.FiniteOrZero(v), 0, measure.MaxInchesComponent)
}

// Derived holds every value computed from one set of inputs.
type Derived struct {
	Inputs Inputs `json:"inputs"`

	RequestedLadderHeightInches float64            `json:"requestedLadderHeightInches"`
	LadderHeight                string             `json:"ladderHeight"`
	LadderBreakdown             measure.FeetInches `json:"ladderBreakdown"`
	LadderBreakdownDisplay      string             `json:"ladderBreakdownDisplay"`

	RequestedStandoffInches float64       `json:"requestedStandoffInches"`
	Standoff                string        `json:"standoff"`
	Part                    standoff.Part `json:"part"`
	Offset                  string        `json:"offset"`

	RangeMin string `json:"rangeMin"`
	RangeMax string `json:"rangeMax"`
}

// Derive recomputes all derived values for in under policy p. It never fails:
// non-finite inputs count as zero, out-of-range values are clamped and the
// standoff lands on the policy's step.
func Derive(in Inputs, p standoff.Policy) Derived {
	f := p.Formatter()

	height := measure.TotalLadderHeight(in.LadderFeet, in.LadderInches)
	breakdown := measure.Decompose(height)

	selected, part := p.Select(in.StandoffInches)

	return Derived{
		Inputs: in,

		RequestedLadderHeightInches: height,
		LadderHeight:                f.Format(height),
		LadderBreakdown:             breakdown,
		LadderBreakdownDisplay:      breakdownDisplay(f, breakdown),

		RequestedStandoffInches: selected,
		Standoff:                f.Format(selected),
		Part:                    part,
		Offset:                  f.Format(part.ValueInches),

		RangeMin: f.Format(p.Range.Min),
		RangeMax: f.Format(p.Range.Max),
	}
}

// breakdownDisplay renders fi as <feet>′-<inches>″, always showing feet.
func breakdownDisplay(f measure.Formatter, fi measure.FeetInches) string {
	return strconv.Itoa(fi.Feet) + measure.FeetMark + "-" +
		measure.StripInchMark(f.Format(fi.Inches)) + measure.InchMark
}
