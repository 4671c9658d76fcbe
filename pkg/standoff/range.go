package standoff

import (
	"fmt"
	"math"

	"github.com/bft-labs/ezladder/pkg/measure"
)

// Stock slider bounds, in inches.
const (
	DefaultMin  = 7.0
	DefaultMax  = 15.375 // 1′-3⅜″
	DefaultStep = 0.125
)

// Range bounds the selectable standoff distance.
type Range struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

// DefaultRange returns the stock 7″ to 1′-3⅜″ range in eighth-inch steps.
func DefaultRange() Range {
	return Range{Min: DefaultMin, Max: DefaultMax, Step: DefaultStep}
}

// Clamp restricts inches to the range. Non-finite input counts as zero and
// therefore lands on Min.
func (r Range) Clamp(inches float64) float64 {
	return measure.Clamp(measure.FiniteOrZero(inches), r.Min, r.Max)
}

// Snap rounds inches to the nearest step counted from Min and clamps the
// result into the range.
func (r Range) Snap(inches float64) float64 {
	v := r.Clamp(inches)
	if !(r.Step > 0) {
		return v
	}
	steps := math.Floor((v-r.Min)/r.Step + 0.5)
	return r.Clamp(measure.RoundThousandth(r.Min + steps*r.Step))
}

// Contains reports whether inches lies inside the range.
func (r Range) Contains(inches float64) bool {
	return inches >= r.Min && inches <= r.Max
}

// Validate checks that the bounds are finite and ordered and the step is positive.
func (r Range) Validate() error {
	if !isFinite(r.Min) || !isFinite(r.Max) || !isFinite(r.Step) {
		return fmt.Errorf("%w: range values must be finite", ErrInvalidPolicy)
	}
	if r.Min < 0 {
		return fmt.Errorf("%w: range min %v is negative", ErrInvalidPolicy, r.Min)
	}
	if r.Min > r.Max {
		return fmt.Errorf("%w: range min %v exceeds max %v", ErrInvalidPolicy, r.Min, r.Max)
	}
	if r.Step <= 0 {
		return fmt.Errorf("%w: range step must be positive", ErrInvalidPolicy)
	}
	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
