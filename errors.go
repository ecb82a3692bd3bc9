package physunit

import (
	"errors"
	"fmt"

	"github.com/hupe1980/physunit/internal/numeric"
)

var (
	// ErrInvalidUnit is returned for the zero Unit or a unit with an invalid scale.
	ErrInvalidUnit = errors.New("invalid unit")

	// ErrSystemMismatch is returned when units from different systems are composed.
	ErrSystemMismatch = errors.New("units belong to different systems")

	// ErrEmptySystem is returned when a system declares no base dimensions.
	ErrEmptySystem = errors.New("system has no base dimensions")

	// ErrInexactConversion indicates an integer payload cannot hold the converted value.
	ErrInexactConversion = numeric.ErrInexact

	// ErrConversionOverflow indicates a converted integer payload is out of range.
	ErrConversionOverflow = numeric.ErrOverflow
)

// ErrDimensionMismatch indicates an operation on quantities of different dimensions.
type ErrDimensionMismatch struct {
	Op    string
	Left  Unit
	Right Unit
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch in %s: %s vs %s", e.Op, e.Left.dimensionString(), e.Right.dimensionString())
}

// ErrConfiguration indicates a malformed unit or system definition.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrConfiguration struct {
	Op    string
	cause error
}

func (e *ErrConfiguration) Error() string {
	return fmt.Sprintf("invalid %s definition: %v", e.Op, e.cause)
}

func (e *ErrConfiguration) Unwrap() error { return e.cause }

// ErrConversion indicates a payload that cannot be expressed in the target unit.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrConversion struct {
	From  Unit
	To    Unit
	cause error
}

func (e *ErrConversion) Error() string {
	return fmt.Sprintf("cannot convert %s to %s: %v", e.From, e.To, e.cause)
}

func (e *ErrConversion) Unwrap() error { return e.cause }

// Must returns v or panics if err is non-nil.
// It simplifies package-level unit definitions:
//
//	var Kilometer = physunit.Must(Meter.Derive(scale.Kilo))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
