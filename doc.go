// Package quantity provides dimension-safe numeric vectors for Go.
//
// Every vector carries a physical unit and stores its cells in SI, so
// vectors built in kilometers and miles can be combined without manual
// conversion. Two type parameters make misuse a compile error:
//
//   - the tag, Absolute or Relative, separates points on a scale (a position,
//     a time of day, a temperature reading) from differences between them;
//   - the layout, Dense or Sparse, selects the storage strategy.
//
// # Quick Start
//
//	pos, _ := quantity.NewVector[quantity.Absolute, quantity.Dense]([]float64{1, 2, 3}, unit.Kilometer)
//	step, _ := quantity.NewVector[quantity.Relative, quantity.Dense]([]float64{500, 0, 250}, unit.Meter)
//
//	next, _ := quantity.Plus(pos, step)     // Absolute + Relative = Absolute, in km
//	delta, _ := quantity.Diff(next, pos)    // Absolute - Absolute = Relative
//	// quantity.Plus(pos, pos) does not compile: absolute values cannot be added.
//
// # Tags
//
// The result tag of a combinator depends on both operands:
//
//	Plus(Absolute, Relative)  -> Absolute
//	Plus(Relative, Relative)  -> Relative
//	Minus(Absolute, Relative) -> Absolute
//	Minus(Relative, Relative) -> Relative
//	Diff(Absolute, Absolute)  -> Relative
//	Times(T, T)               -> T, with a derived unit
//
// Offsets only apply to absolute values: 10 °C as an Absolute is 283.15 K,
// as a Relative it is 10 K.
//
// # Layouts
//
// Dense keeps every cell in a contiguous slice. Sparse keeps only non-zero
// cells, indexed by a roaring bitmap, and is limited to 2^32 cells. Both
// layouts behave identically. Same-layout combinators keep the layout of
// their operands; the ...Dense variants accept any mix and return Dense.
//
// # Copy-on-Write
//
// Vector is read-only. Vector.Mutable returns a MutableVector in O(1) that
// shares the cells until its first write. MutableVector.Immutable and
// MutableVector.Copy are O(1) as well. Whichever view writes first copies
// the cells; the remaining view then owns the original and writes in place,
// so the data is copied at most once per share.
//
// Large copies are split across goroutines (see WithParallelCopy) and always
// complete before the triggering write proceeds.
//
// # Units
//
// Package unit defines the units, their SI coefficients and the registry used
// to derive the unit of a product. A product whose coefficients match no
// registered quantity gets an unnamed SI unit such as "m2/s2".
//
// # Observability
//
//	metrics := &quantity.BasicMetricsCollector{}
//	v, _ := quantity.NewVector[quantity.Relative, quantity.Sparse](values, unit.Second,
//		quantity.WithLogger(quantity.NewJSONLogger(slog.LevelDebug)),
//		quantity.WithMetricsCollector(metrics),
//	)
//
// Options are inherited by every view derived from a vector and by the result
// of a combinator (from its left operand).
//
// # Concurrency
//
// A single vector is not safe for concurrent writes. Distinct views may be
// used from different goroutines, including views that still share cells.
package quantity
