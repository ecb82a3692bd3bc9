package dimension

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrDuplicateBase is returned when two base dimensions share a name.
	ErrDuplicateBase = errors.New("dimension: duplicate base dimension")

	// ErrUnknownBase is returned when a base dimension name is not part of a set.
	ErrUnknownBase = errors.New("dimension: unknown base dimension")

	// ErrInvalidBase is returned for a base dimension without a name.
	ErrInvalidBase = errors.New("dimension: invalid base dimension")
)

// Base describes one axis of measurement.
type Base struct {
	// Name identifies the base dimension within a set, e.g. "length".
	Name string
	// Symbol is used by Set.Format, e.g. "L". Defaults to Name.
	Symbol string
}

// Set is an ordered list of base dimensions. The index of a base in the set
// is the index of its exponent in every Vector built over the set.
//
// A Set is immutable once built and safe for concurrent use.
type Set struct {
	bases []Base
}

// NewSet builds a set from the given bases, in order.
func NewSet(bases ...Base) (Set, error) {
	if len(bases) > MaxBases {
		return Set{}, fmt.Errorf("%w: %d > %d", ErrTooManyBases, len(bases), MaxBases)
	}
	out := make([]Base, 0, len(bases))
	for _, b := range bases {
		if b.Name == "" {
			return Set{}, ErrInvalidBase
		}
		if b.Symbol == "" {
			b.Symbol = b.Name
		}
		if slices.ContainsFunc(out, func(x Base) bool { return x.Name == b.Name }) {
			return Set{}, fmt.Errorf("%w: %q", ErrDuplicateBase, b.Name)
		}
		out = append(out, b)
	}
	return Set{bases: out}, nil
}

// Append returns the set s followed by the bases of o.
func (s Set) Append(o Set) (Set, error) {
	return NewSet(append(slices.Clone(s.bases), o.bases...)...)
}

// Len returns the number of base dimensions.
func (s Set) Len() int { return len(s.bases) }

// Bases returns a copy of the base dimensions in order.
func (s Set) Bases() []Base { return slices.Clone(s.bases) }

// Index returns the position of the named base dimension.
func (s Set) Index(name string) (int, bool) {
	i := slices.IndexFunc(s.bases, func(b Base) bool { return b.Name == name })
	return i, i >= 0
}

// Basis returns the vector with exponent 1 for the named base and 0 elsewhere.
func (s Set) Basis(name string) (Vector, error) {
	i, ok := s.Index(name)
	if !ok {
		return Vector{}, fmt.Errorf("%w: %q", ErrUnknownBase, name)
	}
	v := Zero(len(s.bases))
	v.exp[i] = 1
	return v, nil
}

// Zero returns the dimensionless vector over s.
func (s Set) Zero() Vector { return Zero(len(s.bases)) }

// Format renders v using the base symbols of s, e.g. "L·T^-1".
// Dimensionless vectors render as "1". Vectors of a different length fall
// back to Vector.String.
func (s Set) Format(v Vector) string {
	if v.Len() != len(s.bases) {
		return v.String()
	}
	var parts []string
	for i, b := range s.bases {
		switch e := v.At(i); e {
		case 0:
		case 1:
			parts = append(parts, b.Symbol)
		default:
			parts = append(parts, b.Symbol+"^"+strconv.Itoa(e))
		}
	}
	if len(parts) == 0 {
		return "1"
	}
	return strings.Join(parts, "·")
}
