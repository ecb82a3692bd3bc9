package physunit

import (
	"cmp"
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/hupe1980/physunit/internal/numeric"
	"github.com/hupe1980/physunit/scale"
)

// Number is the set of payload types a Quantity can carry.
type Number = numeric.Number

// Quantity is a numeric payload tagged with a Unit.
//
// Quantities are immutable values; every operation returns a new Quantity.
// The zero Quantity has no unit and every operation on it fails.
type Quantity[V Number] struct {
	value V
	unit  Unit
}

// New returns the quantity value·u.
func New[V Number](u Unit, value V) Quantity[V] {
	return Quantity[V]{value: value, unit: u}
}

// Scalar lifts a plain number into the standard dimensionless unit of s.
// Together with Quantity.Number it is the only bridge between plain
// numbers and quantities.
func Scalar[V Number](s *System, n V) Quantity[V] {
	return New(s.Dimensionless(), n)
}

// Reciprocal returns n/q: a quantity of unit q.Unit().Invert() whose
// payload is n divided by the payload of q.
func Reciprocal[V Number](n V, q Quantity[V]) Quantity[V] {
	return New(q.unit.Invert(), n/q.value)
}

// Cast changes the payload type of q, keeping its unit. The payload is
// converted with Go conversion rules.
func Cast[W, V Number](q Quantity[V]) Quantity[W] {
	return New(q.unit, W(q.value))
}

// Value returns the payload expressed in the unit of q.
func (q Quantity[V]) Value() V { return q.value }

// Unit returns the unit of q.
func (q Quantity[V]) Unit() Unit { return q.unit }

// Number returns the payload of a dimensionless quantity at scale 1/1.
func (q Quantity[V]) Number() (V, error) {
	if !q.unit.IsValid() {
		return 0, ErrInvalidUnit
	}
	return q.in(q.unit.sys.Dimensionless(), "number")
}

// In returns the payload of q expressed in u.
func (q Quantity[V]) In(u Unit) (V, error) {
	return q.in(u, "convert")
}

// ConvertTo re-expresses q in u, which must have the same dimension.
func (q Quantity[V]) ConvertTo(u Unit) (Quantity[V], error) {
	v, err := q.in(u, "convert")
	if err != nil {
		return Quantity[V]{}, err
	}
	return New(u, v), nil
}

// Standard re-expresses q in the standard unit of its dimension.
func (q Quantity[V]) Standard() (Quantity[V], error) {
	return q.ConvertTo(q.unit.Standard())
}

// Neg returns -q.
func (q Quantity[V]) Neg() Quantity[V] { return New(q.unit, -q.value) }

// Pos returns q.
func (q Quantity[V]) Pos() Quantity[V] { return q }

// Add returns q+o in the unit of q.
func (q Quantity[V]) Add(o Quantity[V]) (Quantity[V], error) {
	v, err := q.operand(o, "add")
	if err != nil {
		return Quantity[V]{}, err
	}
	return New(q.unit, q.value+v), nil
}

// Sub returns q-o in the unit of q.
func (q Quantity[V]) Sub(o Quantity[V]) (Quantity[V], error) {
	v, err := q.operand(o, "subtract")
	if err != nil {
		return Quantity[V]{}, err
	}
	return New(q.unit, q.value-v), nil
}

// MulScalar returns q·n. The unit is unchanged.
func (q Quantity[V]) MulScalar(n V) Quantity[V] { return New(q.unit, q.value*n) }

// DivScalar returns q/n. The unit is unchanged.
func (q Quantity[V]) DivScalar(n V) Quantity[V] { return New(q.unit, q.value/n) }

// Mul returns q·o. Dimensions add and scales multiply; a dimensionless
// result is normalized to scale 1/1.
func (q Quantity[V]) Mul(o Quantity[V]) (Quantity[V], error) {
	u, err := q.unit.compose(o.unit, "multiply")
	if err != nil {
		_, err = q.unit.sys.define("multiply", Unit{}, err)
		return Quantity[V]{}, err
	}
	return normalize(u, q.value*o.value)
}

// Div returns q/o. Dimensions subtract and scales divide; a dimensionless
// result is normalized to scale 1/1.
func (q Quantity[V]) Div(o Quantity[V]) (Quantity[V], error) {
	u, err := q.unit.compose(o.unit.Invert(), "divide")
	if err != nil {
		_, err = q.unit.sys.define("divide", Unit{}, err)
		return Quantity[V]{}, err
	}
	return normalize(u, q.value/o.value)
}

// AddAssign sets q to q+o. On error q is unchanged.
func (q *Quantity[V]) AddAssign(o Quantity[V]) error {
	return q.assign(q.Add(o))
}

// SubAssign sets q to q-o. On error q is unchanged.
func (q *Quantity[V]) SubAssign(o Quantity[V]) error {
	return q.assign(q.Sub(o))
}

// MulAssign sets q to q·o. On error q is unchanged.
func (q *Quantity[V]) MulAssign(o Quantity[V]) error {
	return q.assign(q.Mul(o))
}

// DivAssign sets q to q/o. On error q is unchanged.
func (q *Quantity[V]) DivAssign(o Quantity[V]) error {
	return q.assign(q.Div(o))
}

// Compare returns -1, 0 or +1 depending on whether q is less than, equal to
// or greater than o, after converting o to the unit of q.
func (q Quantity[V]) Compare(o Quantity[V]) (int, error) {
	v, err := q.operand(o, "compare")
	if err != nil {
		return 0, err
	}
	return cmp.Compare(q.value, v), nil
}

// Equal reports whether q == o.
func (q Quantity[V]) Equal(o Quantity[V]) (bool, error) {
	return q.compare(o, func(a, b V) bool { return a == b })
}

// NotEqual reports whether q != o.
func (q Quantity[V]) NotEqual(o Quantity[V]) (bool, error) {
	return q.compare(o, func(a, b V) bool { return a != b })
}

// Less reports whether q < o.
func (q Quantity[V]) Less(o Quantity[V]) (bool, error) {
	return q.compare(o, func(a, b V) bool { return a < b })
}

// LessOrEqual reports whether q <= o.
func (q Quantity[V]) LessOrEqual(o Quantity[V]) (bool, error) {
	return q.compare(o, func(a, b V) bool { return a <= b })
}

// Greater reports whether q > o.
func (q Quantity[V]) Greater(o Quantity[V]) (bool, error) {
	return q.compare(o, func(a, b V) bool { return a > b })
}

// GreaterOrEqual reports whether q >= o.
func (q Quantity[V]) GreaterOrEqual(o Quantity[V]) (bool, error) {
	return q.compare(o, func(a, b V) bool { return a >= b })
}

// ApproxEqual reports whether q and o are equal within tol, either
// absolutely or relative to their magnitude, after converting o to the unit
// of q.
func (q Quantity[V]) ApproxEqual(o Quantity[V], tol float64) (bool, error) {
	v, err := q.operand(o, "compare")
	if err != nil {
		return false, err
	}
	return scalar.EqualWithinAbsOrRel(float64(q.value), float64(v), tol, tol), nil
}

// String renders the payload followed by the unit, e.g. "3.5 5/18 L·T^-1".
func (q Quantity[V]) String() string {
	return fmt.Sprintf("%v %s", q.value, q.unit)
}

func (q Quantity[V]) compare(o Quantity[V], op func(a, b V) bool) (bool, error) {
	v, err := q.operand(o, "compare")
	if err != nil {
		return false, err
	}
	return op(q.value, v), nil
}

func (q *Quantity[V]) assign(r Quantity[V], err error) error {
	if err != nil {
		return err
	}
	*q = r
	return nil
}

// in expresses the payload of q in u. The dimension check happens before
// any payload arithmetic.
func (q Quantity[V]) in(u Unit, op string) (V, error) {
	if !q.unit.Compatible(u) {
		return 0, mismatch(op, q.unit, u)
	}
	return q.rescale(u)
}

// operand expresses the payload of o in the unit of q.
func (q Quantity[V]) operand(o Quantity[V], op string) (V, error) {
	if !q.unit.Compatible(o.unit) {
		return 0, mismatch(op, q.unit, o.unit)
	}
	return o.rescale(q.unit)
}

func (q Quantity[V]) rescale(u Unit) (V, error) {
	if q.unit.scale == u.scale {
		return q.value, nil
	}
	v, err := numeric.Scale(q.value, scale.RatioRat(q.unit.scale, u.scale))
	if err = q.unit.sys.converted(q.unit, u, err); err != nil {
		return 0, err
	}
	return v, nil
}

func mismatch(op string, left, right Unit) error {
	sys := left.sys
	if sys == nil {
		sys = right.sys
	}
	return sys.mismatch(op, left, right)
}

// normalize forces a dimensionless unit to scale 1/1, folding its scale
// into the payload.
func normalize[V Number](u Unit, v V) (Quantity[V], error) {
	if !u.dim.IsZero() || u.scale.IsOne() {
		return New(u, v), nil
	}
	std := u.Standard()
	v, err := numeric.Scale(v, u.scale.Rat())
	if err = u.sys.converted(u, std, err); err != nil {
		return Quantity[V]{}, err
	}
	return New(std, v), nil
}
