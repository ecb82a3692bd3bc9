package dimension

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	// MaxBases is the largest number of base dimensions a Vector can hold.
	MaxBases = 16

	// MaxExponent bounds the magnitude of every exponent. The bound is
	// symmetric so that Invert can never overflow.
	MaxExponent = 127
)

var (
	// ErrLengthMismatch is returned when two vectors over different base sets are combined.
	ErrLengthMismatch = errors.New("dimension: vector length mismatch")

	// ErrTooManyBases is returned when a vector or set would exceed MaxBases.
	ErrTooManyBases = errors.New("dimension: too many base dimensions")

	// ErrExponentRange is returned when an exponent leaves [-MaxExponent, MaxExponent].
	ErrExponentRange = errors.New("dimension: exponent out of range")
)

// Vector is a fixed-length sequence of base-dimension exponents.
//
// Vectors are immutable values and comparable with ==; two vectors are equal
// iff they have the same length and the same exponents.
type Vector struct {
	n   uint8
	exp [MaxBases]int8
}

// New builds a vector from the given exponents.
func New(exps ...int) (Vector, error) {
	if len(exps) > MaxBases {
		return Vector{}, fmt.Errorf("%w: %d > %d", ErrTooManyBases, len(exps), MaxBases)
	}
	v := Vector{n: uint8(len(exps))}
	for i, e := range exps {
		if e < -MaxExponent || e > MaxExponent {
			return Vector{}, fmt.Errorf("%w: exponent %d at index %d", ErrExponentRange, e, i)
		}
		v.exp[i] = int8(e)
	}
	return v, nil
}

// MustNew is like New but panics on error.
// It simplifies the definition of package-level vectors.
func MustNew(exps ...int) Vector {
	v, err := New(exps...)
	if err != nil {
		panic(err)
	}
	return v
}

// Zero returns the dimensionless vector of length n.
// n is clamped to [0, MaxBases].
func Zero(n int) Vector {
	return Vector{n: uint8(min(max(n, 0), MaxBases))}
}

// Len returns the number of base dimensions.
func (v Vector) Len() int { return int(v.n) }

// At returns the exponent of the i-th base dimension.
func (v Vector) At(i int) int {
	if i < 0 || i >= int(v.n) {
		panic(fmt.Sprintf("dimension: index %d out of range [0, %d)", i, v.n))
	}
	return int(v.exp[i])
}

// Exponents returns a copy of the exponents.
func (v Vector) Exponents() []int {
	out := make([]int, v.n)
	for i := range out {
		out[i] = int(v.exp[i])
	}
	return out
}

// IsZero reports whether every exponent is zero, i.e. whether v is dimensionless.
func (v Vector) IsZero() bool {
	for i := 0; i < int(v.n); i++ {
		if v.exp[i] != 0 {
			return false
		}
	}
	return true
}

// String returns the exponents in brackets, e.g. "[0 1 -1]".
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < int(v.n); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(int(v.exp[i])))
	}
	sb.WriteByte(']')
	return sb.String()
}

// Append concatenates a and b into a vector of length a.Len()+b.Len().
func Append(a, b Vector) (Vector, error) {
	n := int(a.n) + int(b.n)
	if n > MaxBases {
		return Vector{}, fmt.Errorf("%w: %d > %d", ErrTooManyBases, n, MaxBases)
	}
	out := a
	out.n = uint8(n)
	copy(out.exp[a.n:], b.exp[:b.n])
	return out, nil
}

// Invert negates every exponent of d.
func Invert(d Vector) Vector {
	out := Vector{n: d.n}
	for i := 0; i < int(d.n); i++ {
		out.exp[i] = -d.exp[i]
	}
	return out
}

// Sum adds a and b element-wise.
// Both vectors must have the same length.
func Sum(a, b Vector) (Vector, error) {
	if a.n != b.n {
		return Vector{}, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, a.n, b.n)
	}
	out := Vector{n: a.n}
	for i := 0; i < int(a.n); i++ {
		e := int(a.exp[i]) + int(b.exp[i])
		if e < -MaxExponent || e > MaxExponent {
			return Vector{}, fmt.Errorf("%w: exponent %d at index %d", ErrExponentRange, e, i)
		}
		out.exp[i] = int8(e)
	}
	return out, nil
}
