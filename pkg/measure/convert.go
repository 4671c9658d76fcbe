package measure

import "math"

const (
	// InchesPerFoot is the feet to inches conversion factor.
	InchesPerFoot = 12.0

	// MaxInchesComponent is the largest inches value accepted alongside a feet
	// value. It keeps the inches field strictly below one foot.
	MaxInchesComponent = 11.999
)

// FeetInches is a length split into whole feet and the remaining inches.
// Inches is always in [0, 12).
type FeetInches struct {
	Feet   int     `json:"feet"`
	Inches float64 `json:"inches"`
}

// Total returns the length in inches.
func (fi FeetInches) Total() float64 {
	return float64(fi.Feet)*InchesPerFoot + fi.Inches
}

// ConvertFeetToInches converts feet to inches rounded to three decimals.
// Non-finite input converts as zero.
func ConvertFeetToInches(feet float64) float64 {
	return round3(FiniteOrZero(feet) * InchesPerFoot)
}

// Clamp restricts value to [min, max].
//
// If min > max the result is max. NaN clamps to min.
func Clamp(value, min, max float64) float64 {
	if math.IsNaN(value) {
		value = min
	}
	if value < min {
		value = min
	}
	if value > max {
		return max
	}
	return value
}

// TotalLadderHeight combines a feet and an inches field into total inches.
//
// Non-finite inputs count as zero and inches are clamped to
// [0, MaxInchesComponent]. Feet are used as given; flooring to a non-negative
// integer is the input collector's job.
func TotalLadderHeight(feet, inches float64) float64 {
	safeInches := Clamp(FiniteOrZero(inches), 0, MaxInchesComponent)
	return ConvertFeetToInches(feet) + safeInches
}

// Decompose splits total inches into feet and inches. The inches part is
// rounded to three decimals and never negative; a remainder that rounds up to
// a whole foot is carried into Feet. Non-finite input decomposes to zero.
// Totals must fit an int number of feet.
func Decompose(totalInches float64) FeetInches {
	totalInches = FiniteOrZero(totalInches)
	feet := math.Floor(totalInches / InchesPerFoot)
	inches := math.Max(0, round3(totalInches-feet*InchesPerFoot))
	if inches >= InchesPerFoot {
		feet++
		inches = 0
	}
	return FeetInches{Feet: int(feet), Inches: inches}
}

// roundHalfUp rounds to the nearest integer with ties going toward +Inf.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

func round3(x float64) float64 {
	return roundHalfUp(x*1000) / 1000
}

// FiniteOrZero returns x, or zero when x is NaN or infinite.
func FiniteOrZero(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

// RoundThousandth rounds x to three decimals with ties going toward +Inf.
func RoundThousandth(x float64) float64 {
	return round3(x)
}
