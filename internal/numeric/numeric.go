// Package numeric rescales numeric payloads by exact rational factors.
//
// Payloads are lifted into big.Rat, which represents every finite float and
// every integer exactly, multiplied by the factor and rounded once back into
// the payload type. Chained conversions therefore accumulate at most one
// rounding step each instead of one per multiply and divide.
package numeric

import (
	"errors"
	"math"
	"math/big"
	"reflect"

	"golang.org/x/exp/constraints"
)

var (
	// ErrInexact is returned when an integer payload cannot hold the exact result.
	ErrInexact = errors.New("numeric: inexact conversion")

	// ErrOverflow is returned when an integer result does not fit the payload type.
	ErrOverflow = errors.New("numeric: value out of range")
)

// Number is the set of payload types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Kind classifies a payload type.
type Kind uint8

const (
	Signed Kind = iota
	Unsigned
	Float32
	Float64
)

// IsFloat reports whether k is a floating-point kind.
func (k Kind) IsFloat() bool { return k == Float32 || k == Float64 }

func (k Kind) String() string {
	switch k {
	case Signed:
		return "signed"
	case Unsigned:
		return "unsigned"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// KindOf returns the kind of V. Named types report the kind of their
// underlying type.
func KindOf[V Number]() Kind {
	switch reflect.TypeFor[V]().Kind() {
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Unsigned
	default:
		return Signed
	}
}

// ToRat returns v as an exact rational. It reports false for NaN and ±Inf.
func ToRat[V Number](v V) (*big.Rat, bool) {
	switch KindOf[V]() {
	case Float32, Float64:
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, false
		}
		return new(big.Rat).SetFloat64(f), true
	case Unsigned:
		return new(big.Rat).SetInt(new(big.Int).SetUint64(uint64(v))), true
	default:
		return new(big.Rat).SetInt64(int64(v)), true
	}
}

// FromRat rounds x into V. Floats round to nearest; integers must be exact
// and in range.
func FromRat[V Number](x *big.Rat) (V, error) {
	switch KindOf[V]() {
	case Float32:
		f, _ := x.Float32()
		return V(f), nil
	case Float64:
		f, _ := x.Float64()
		return V(f), nil
	}

	if !x.IsInt() {
		return 0, ErrInexact
	}
	n := x.Num()
	if KindOf[V]() == Unsigned {
		if n.Sign() < 0 || !n.IsUint64() {
			return 0, ErrOverflow
		}
		u := n.Uint64()
		out := V(u)
		if uint64(out) != u {
			return 0, ErrOverflow
		}
		return out, nil
	}
	if !n.IsInt64() {
		return 0, ErrOverflow
	}
	i := n.Int64()
	out := V(i)
	if int64(out) != i {
		return 0, ErrOverflow
	}
	return out, nil
}

// Scale returns v*r rounded once into V.
//
// Non-finite floats are scaled in floating point so that NaN and ±Inf
// propagate with the correct sign.
func Scale[V Number](v V, r *big.Rat) (V, error) {
	if r.IsInt() && r.Num().IsInt64() && r.Num().Int64() == 1 {
		return v, nil
	}
	x, ok := ToRat(v)
	if !ok {
		num, _ := new(big.Float).SetInt(r.Num()).Float64()
		den, _ := new(big.Float).SetInt(r.Denom()).Float64()
		return V(float64(v) * num / den), nil
	}
	return FromRat[V](x.Mul(x, r))
}
