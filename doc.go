// Package physunit provides dimensionally checked physical quantities.
//
// A Quantity is a numeric payload tagged with a Unit. A Unit pairs a
// dimension vector (exponents over a fixed set of base dimensions, see
// package dimension) with an exact rational scale factor relative to the
// standard unit of that dimension (see package scale). Arithmetic checks
// dimensions and converts scales exactly.
//
// # Quick Start
//
//	sys := physunit.NewSystemBuilder().
//	    Base("mass", "M").
//	    Base("length", "L").
//	    Base("time", "T").
//	    MustBuild()
//
//	meter := sys.MustBase("length")
//	second := sys.MustBase("time")
//	hour := physunit.Must(second.DeriveRatio(3600, 1))
//	mile := physunit.Must(meter.DeriveRatio(1609344, 1000))
//
//	speed := physunit.New(physunit.Must(meter.Divide(second)), 3.5)
//	dist, _ := speed.Mul(physunit.New(hour, 10.0))
//	miles, _ := dist.In(mile) // ≈ 78.293
//
// # Units
//
// Units are immutable comparable values built at definition time with
// Invert, Multiply, Divide and Derive. Composition errors (vector length
// mismatch, scale overflow) are reported as *ErrConfiguration when the unit
// is defined; Must turns them into panics for package-level definitions.
//
// # Arithmetic
//
//   - Add, Sub and comparisons require equal dimensions. The right operand is
//     converted to the scale of the left operand; the result keeps the left
//     scale. A dimension mismatch returns *ErrDimensionMismatch before any
//     payload arithmetic happens.
//   - Mul and Div add (or subtract) dimension vectors and multiply scales. A
//     dimensionless result is always normalized to scale 1/1.
//   - MulScalar and DivScalar scale the payload only.
//
// # Dimensionless Quantities
//
// Scalar and Quantity.Number are the only conversions between plain numbers
// and quantities. Number fails for anything that is not dimensionless.
//
// # Conversion
//
// Payloads are rescaled through exact rational arithmetic and rounded once
// into the payload type. Integer payloads must convert exactly; otherwise
// ErrInexactConversion or ErrConversionOverflow is returned. Division of
// payloads follows Go semantics: integer division truncates and panics on a
// zero divisor, floating-point division yields ±Inf or NaN.
//
// # Concurrency
//
// Systems, units and quantities are immutable. All operations are safe for
// concurrent use; the configured Logger and MetricsCollector must be as well.
package physunit
