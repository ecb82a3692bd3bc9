package physunit

import (
	"github.com/hupe1980/physunit/dimension"
	"github.com/hupe1980/physunit/scale"
)

// System is a fixed, ordered set of base dimensions shared by every unit
// built from it. Units of different systems never mix.
//
// A System is immutable after construction and safe for concurrent use.
type System struct {
	set     dimension.Set
	logger  *Logger
	metrics MetricsCollector
}

// NewSystem creates a System over the given base-dimension set.
func NewSystem(set dimension.Set, optFns ...Option) (*System, error) {
	if set.Len() == 0 {
		return nil, &ErrConfiguration{Op: "system", cause: ErrEmptySystem}
	}
	o := applyOptions(optFns)
	s := &System{
		set:     set,
		logger:  o.logger,
		metrics: o.metricsCollector,
	}
	s.logger.LogSystem(set)
	return s, nil
}

// Set returns the base dimensions of s.
func (s *System) Set() dimension.Set { return s.set }

// Dimensionless returns the standard dimensionless unit of s.
func (s *System) Dimensionless() Unit {
	return Unit{sys: s, dim: s.set.Zero(), scale: scale.One}
}

// Base returns the standard unit of the named base dimension.
func (s *System) Base(name string) (Unit, error) {
	v, err := s.set.Basis(name)
	if err != nil {
		return s.define("base", Unit{}, &ErrConfiguration{Op: "base", cause: err})
	}
	return s.define("base", Unit{sys: s, dim: v, scale: scale.One}, nil)
}

// MustBase is like Base but panics on error.
func (s *System) MustBase(name string) Unit {
	return Must(s.Base(name))
}

// Unit returns the unit with the given dimension vector and scale factor.
func (s *System) Unit(dim dimension.Vector, f scale.Factor) (Unit, error) {
	if dim.Len() != s.set.Len() {
		return s.define("unit", Unit{}, &ErrConfiguration{Op: "unit", cause: dimension.ErrLengthMismatch})
	}
	if !f.IsValid() {
		return s.define("unit", Unit{}, &ErrConfiguration{Op: "unit", cause: ErrInvalidUnit})
	}
	return s.define("unit", Unit{sys: s, dim: dim, scale: f}, nil)
}

func (s *System) define(op string, u Unit, err error) (Unit, error) {
	if s == nil {
		return u, err
	}
	s.logger.LogDefinition(op, u, err)
	s.metrics.RecordDefinition(op, err)
	if err != nil {
		return Unit{}, err
	}
	return u, nil
}

func (s *System) mismatch(op string, left, right Unit) error {
	if s != nil {
		s.logger.LogDimensionMismatch(op, left, right)
		s.metrics.RecordDimensionMismatch(op)
	}
	return &ErrDimensionMismatch{Op: op, Left: left, Right: right}
}

func (s *System) converted(from, to Unit, err error) error {
	if err != nil {
		err = &ErrConversion{From: from, To: to, cause: err}
	}
	if s != nil {
		if err != nil {
			s.logger.LogConversion(from, to, err)
		}
		s.metrics.RecordConversion(err)
	}
	return err
}
