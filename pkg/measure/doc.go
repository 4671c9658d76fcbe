// Package measure provides the length arithmetic and display formatting used
// when collecting ladder heights and standoff distances.
//
// Every function in this package is pure: values go in, new values come out,
// and nothing is retained between calls. Functions never return errors and
// never panic. Non-finite arithmetic inputs are treated as zero, out-of-range
// values are clamped, and non-finite lengths format as a placeholder dash.
//
// # Units
//
// All lengths are float64 inches. Feet are converted at 12 inches per foot and
// the result is rounded to three decimal places so that repeated conversions do
// not accumulate floating-point drift.
//
// # Formatting
//
// [FormatLength] renders inches as feet and inches rounded to the nearest
// eighth, using Unicode vulgar fractions:
//
//	measure.FormatLength(13.5)   // "1′-1½″"
//	measure.FormatLength(15.375) // "1′-3⅜″"
//	measure.FormatLength(-5)     // "-5″"
//
// A [Formatter] carries the fraction glyph table and matching tolerance when
// the defaults need to be replaced.
package measure
