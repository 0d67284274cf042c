// Package analysis inspects recorded orbits.
//
//   - [DominantPeriod]: orbital period in frames from the power spectrum
//   - [Crossings]: positive-going crossings of a threshold, interpolated
//   - [CrossingPeriod]: period from the spacing of those crossings
//   - [Trace] and [TraceToASCII]: a body's path drawn in text
//
// Both period estimators work on a single coordinate series, for example
// Earth's x column from a recording:
//
//	x, _ := rec.Column("Earth.x")
//	period := analysis.DominantPeriod(x)
package analysis
