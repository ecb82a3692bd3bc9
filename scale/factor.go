package scale

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"math/bits"
)

var (
	// ErrZeroDenominator is returned for a factor with denominator zero.
	ErrZeroDenominator = errors.New("scale: zero denominator")

	// ErrZeroFactor is returned for a factor with numerator zero.
	ErrZeroFactor = errors.New("scale: zero factor")

	// ErrOverflow is returned when a numerator or denominator leaves the int64 range.
	ErrOverflow = errors.New("scale: overflow")
)

// Factor is a reduced rational number num/den with den > 0.
//
// The zero value is not a valid factor; use One or New.
type Factor struct {
	num int64
	den int64
}

// One is the scale factor of a standard unit.
var One = Factor{num: 1, den: 1}

// New returns the reduced factor num/den.
func New(num, den int64) (Factor, error) {
	if den == 0 {
		return Factor{}, ErrZeroDenominator
	}
	if num == 0 {
		return Factor{}, ErrZeroFactor
	}
	if num == math.MinInt64 || den == math.MinInt64 {
		return Factor{}, fmt.Errorf("%w: %d/%d", ErrOverflow, num, den)
	}
	num, den = Reduce(num, den)
	return Factor{num: num, den: den}, nil
}

// MustNew is like New but panics on error.
func MustNew(num, den int64) Factor {
	f, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return f
}

// Reduce divides num and den by their greatest common divisor and moves the
// sign to the numerator. den must not be zero.
func Reduce(num, den int64) (int64, int64) {
	if g := gcd(num, den); g > 1 {
		num /= g
		den /= g
	}
	if den < 0 {
		num, den = -num, -den
	}
	return num, den
}

// Num returns the numerator.
func (f Factor) Num() int64 { return f.num }

// Den returns the denominator.
func (f Factor) Den() int64 { return f.den }

// IsValid reports whether f was built by New (or is One).
func (f Factor) IsValid() bool { return f.den > 0 && f.num != 0 }

// IsOne reports whether f is 1/1.
func (f Factor) IsOne() bool { return f == One }

// Invert returns den/num, keeping the denominator positive.
func (f Factor) Invert() Factor {
	if f.num < 0 {
		return Factor{num: -f.den, den: -f.num}
	}
	return Factor{num: f.den, den: f.num}
}

// Float64 returns the nearest float64 to num/den.
func (f Factor) Float64() float64 {
	v, _ := f.Rat().Float64()
	return v
}

// Rat returns f as a new big.Rat.
func (f Factor) Rat() *big.Rat {
	return big.NewRat(f.num, f.den)
}

// String returns "num/den", or just "num" for integral factors.
func (f Factor) String() string {
	if f.den == 1 {
		return fmt.Sprintf("%d", f.num)
	}
	return fmt.Sprintf("%d/%d", f.num, f.den)
}

// Multiply returns a*b in reduced form.
func Multiply(a, b Factor) (Factor, error) {
	if !a.IsValid() || !b.IsValid() {
		return Factor{}, ErrZeroDenominator
	}
	// Cross-reduce first; the result is then reduced without another gcd.
	g1 := gcd(a.num, b.den)
	g2 := gcd(b.num, a.den)
	num, ok1 := mul(a.num/g1, b.num/g2)
	den, ok2 := mul(a.den/g2, b.den/g1)
	if !ok1 || !ok2 {
		return Factor{}, fmt.Errorf("%w: %s * %s", ErrOverflow, a, b)
	}
	return Factor{num: num, den: den}, nil
}

// Ratio returns the factor that re-expresses a value in scale from as a
// value in scale to: from.num*to.den / (from.den*to.num).
func Ratio(from, to Factor) (Factor, error) {
	if !to.IsValid() {
		return Factor{}, ErrZeroDenominator
	}
	return Multiply(from, to.Invert())
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// mul multiplies two int64 values, reporting false if the magnitude of the
// product exceeds math.MaxInt64.
func mul(a, b int64) (int64, bool) {
	neg := (a < 0) != (b < 0)
	hi, lo := bits.Mul64(abs(a), abs(b))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, false
	}
	if neg {
		return -int64(lo), true
	}
	return int64(lo), true
}

func abs(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

// RatioRat is Ratio computed in arbitrary precision. It never overflows and
// is used to rescale payloads.
func RatioRat(from, to Factor) *big.Rat {
	r := from.Rat()
	return r.Quo(r, to.Rat())
}
