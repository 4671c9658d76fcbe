// Package standoff resolves a requested standoff distance to a catalog part.
//
// A standoff is the offset between the mounting surface and a ladder rail's
// centerline. The selectable distance is bounded by a [Range] and the
// distance maps to a [Part] through an ordered [Catalog] of buckets:
//
//	part := standoff.Resolve(10.5) // {SKU: "SO2", ValueInches: 9}
//
// The range bounds, slider step and bucket table are policy, not constants.
// [DefaultPolicy] carries the stock values and callers load replacements from
// configuration (see [Policy]).
package standoff
