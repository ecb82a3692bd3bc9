// Package dimension implements the exponent-vector algebra behind physical
// dimensions.
//
// A Vector holds one signed exponent per base dimension. Speed over the
// base set (mass, length, time) is [0 1 -1]; a vector of all zeros is
// dimensionless.
//
// # Operations
//
//   - Append: concatenate two vectors (used when assembling base sets)
//   - Invert: negate every exponent
//   - Sum: element-wise addition of two vectors of equal length
//   - IsZero: report whether a vector is dimensionless
//
// # Usage
//
//	set, _ := dimension.NewSet(
//	    dimension.Base{Name: "mass", Symbol: "M"},
//	    dimension.Base{Name: "length", Symbol: "L"},
//	    dimension.Base{Name: "time", Symbol: "T"},
//	)
//	l, _ := set.Basis("length")
//	t, _ := set.Basis("time")
//	speed, _ := dimension.Sum(l, dimension.Invert(t))
//	fmt.Println(set.Format(speed)) // L·T^-1
package dimension
