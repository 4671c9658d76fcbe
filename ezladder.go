// Package ezladder sizes a ladder and resolves its standoff bracket.
//
// Example usage:
//
//	in := ezladder.Inputs{LadderFeet: 24, LadderInches: 6, StandoffInches: 10.5}
//	d := ezladder.Derive(in, ezladder.DefaultPolicy())
//	fmt.Println(d.LadderHeight, d.Part.SKU)
package ezladder

import (
	"github.com/bft-labs/ezladder/pkg/configurator"
	"github.com/bft-labs/ezladder/pkg/measure"
	"github.com/bft-labs/ezladder/pkg/standoff"
)

// Inputs are the raw ladder and standoff entries.
type Inputs = configurator.Inputs

// Derived holds every value computed from Inputs under a Policy.
type Derived = configurator.Derived

// Policy bundles the standoff range, SKU buckets and glyph tolerance.
type Policy = standoff.Policy

// Part is a catalog standoff SKU with its nominal offset.
type Part = standoff.Part

// FeetInches is a length split into whole feet and remaining inches.
type FeetInches = measure.FeetInches

// Unavailable is printed for lengths that cannot be formatted.
const Unavailable = measure.Unavailable

// FormatLength renders inches as feet and inches to the nearest eighth.
func FormatLength(totalInches float64) string {
	return measure.FormatLength(totalInches)
}

// TotalLadderHeight combines feet and clamped inches into total inches.
func TotalLadderHeight(feet, inches float64) float64 {
	return measure.TotalLadderHeight(feet, inches)
}

// Decompose splits total inches into feet and inches.
func Decompose(totalInches float64) FeetInches {
	return measure.Decompose(totalInches)
}

// Resolve maps a standoff distance to a part from the stock catalog.
func Resolve(inches float64) Part {
	return standoff.Resolve(inches)
}

// Derive computes the displayed and downstream values.
func Derive(in Inputs, p Policy) Derived {
	return configurator.Derive(in, p)
}

// DefaultInputs returns the initial form values.
func DefaultInputs() Inputs {
	return configurator.DefaultInputs()
}

// DefaultPolicy returns the stock 7″ to 1′-3⅜″ range with SO2 and SO3.
func DefaultPolicy() Policy {
	return standoff.DefaultPolicy()
}
