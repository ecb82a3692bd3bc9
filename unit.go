package physunit

import (
	"github.com/hupe1980/physunit/dimension"
	"github.com/hupe1980/physunit/scale"
)

// Unit describes the kind of a quantity: a dimension vector over the base
// dimensions of a System and a scale factor relative to the standard unit of
// that dimension.
//
// Units are immutable values. Two units are the same iff they belong to the
// same system and have equal dimension vectors and scale factors, which is
// exactly when they compare equal with ==.
type Unit struct {
	sys   *System
	dim   dimension.Vector
	scale scale.Factor
}

// System returns the system u belongs to.
func (u Unit) System() *System { return u.sys }

// Dimension returns the dimension vector.
func (u Unit) Dimension() dimension.Vector { return u.dim }

// Scale returns the scale factor relative to the standard unit.
func (u Unit) Scale() scale.Factor { return u.scale }

// IsValid reports whether u was built from a System.
func (u Unit) IsValid() bool { return u.sys != nil && u.scale.IsValid() }

// IsDimensionless reports whether every exponent of u is zero.
func (u Unit) IsDimensionless() bool { return u.IsValid() && u.dim.IsZero() }

// Compatible reports whether quantities of u and o can be added, compared
// and converted into each other.
func (u Unit) Compatible(o Unit) bool {
	return u.IsValid() && o.IsValid() && u.sys == o.sys && u.dim == o.dim
}

// Equal reports whether u and o are the same unit.
func (u Unit) Equal(o Unit) bool { return u == o }

// Standard returns the unit of scale 1/1 with the dimension of u.
func (u Unit) Standard() Unit {
	u.scale = scale.One
	return u
}

// Invert returns 1/u: every exponent negated and the scale inverted.
func (u Unit) Invert() Unit {
	u.dim = dimension.Invert(u.dim)
	u.scale = u.scale.Invert()
	return u
}

// Multiply returns the unit u·o. The scale of the result is the product of
// both scales, even when the result is dimensionless.
func (u Unit) Multiply(o Unit) (Unit, error) {
	r, err := u.compose(o, "multiply")
	return u.sys.define("multiply", r, err)
}

// Divide returns the unit u/o.
func (u Unit) Divide(o Unit) (Unit, error) {
	r, err := u.compose(o.Invert(), "divide")
	return u.sys.define("divide", r, err)
}

// Derive returns the unit worth f units of u, e.g. Meter.Derive(scale.Kilo).
func (u Unit) Derive(f scale.Factor) (Unit, error) {
	if !u.IsValid() || !f.IsValid() {
		return u.sys.define("derive", Unit{}, &ErrConfiguration{Op: "derive", cause: ErrInvalidUnit})
	}
	s, err := scale.Multiply(u.scale, f)
	if err != nil {
		return u.sys.define("derive", Unit{}, &ErrConfiguration{Op: "derive", cause: err})
	}
	u.scale = s
	return u.sys.define("derive", u, nil)
}

// DeriveRatio is Derive with the factor num/den.
func (u Unit) DeriveRatio(num, den int64) (Unit, error) {
	f, err := scale.New(num, den)
	if err != nil {
		return u.sys.define("derive", Unit{}, &ErrConfiguration{Op: "derive", cause: err})
	}
	return u.Derive(f)
}

// String renders the scale followed by the dimension, e.g. "5/18 L·T^-1".
// Standard units omit the scale.
func (u Unit) String() string {
	if !u.IsValid() {
		return "<invalid unit>"
	}
	if u.scale.IsOne() {
		return u.dimensionString()
	}
	return u.scale.String() + " " + u.dimensionString()
}

func (u Unit) dimensionString() string {
	if u.sys == nil {
		return u.dim.String()
	}
	return u.sys.set.Format(u.dim)
}

func (u Unit) compose(o Unit, op string) (Unit, error) {
	if !u.IsValid() || !o.IsValid() {
		return Unit{}, &ErrConfiguration{Op: op, cause: ErrInvalidUnit}
	}
	if u.sys != o.sys {
		return Unit{}, &ErrConfiguration{Op: op, cause: ErrSystemMismatch}
	}
	dim, err := dimension.Sum(u.dim, o.dim)
	if err != nil {
		return Unit{}, &ErrConfiguration{Op: op, cause: err}
	}
	s, err := scale.Multiply(u.scale, o.scale)
	if err != nil {
		return Unit{}, &ErrConfiguration{Op: op, cause: err}
	}
	return Unit{sys: u.sys, dim: dim, scale: s}, nil
}
