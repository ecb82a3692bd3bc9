// Package physunit provides dimensionally checked physical quantities.
//
// This file implements the fluent builder API for declaring a System.
// Builders are immutable - each method returns a new builder with the updated configuration.
package physunit

import (
	"slices"

	"github.com/hupe1980/physunit/dimension"
)

// =============================================================================
// System Builder (Immutable)
// =============================================================================

// NewSystemBuilder creates a new builder for a base-dimension system.
//
// The builder is immutable - each method returns a new builder with the updated configuration.
// This ensures thread-safety and prevents accidental state sharing.
//
// Example:
//
//	sys, err := physunit.NewSystemBuilder().
//	    Base("mass", "M").
//	    Base("length", "L").
//	    Base("time", "T").
//	    Build()
func NewSystemBuilder() SystemBuilder {
	return SystemBuilder{}
}

// SystemBuilder is an immutable fluent builder for creating a System.
// Each method returns a new builder with the updated configuration.
type SystemBuilder struct {
	bases   []dimension.Base
	logger  *Logger
	metrics MetricsCollector
}

// Base appends a base dimension. Its position is the index of its exponent
// in every dimension vector of the system.
func (b SystemBuilder) Base(name, symbol string) SystemBuilder {
	b.bases = append(slices.Clip(b.bases), dimension.Base{Name: name, Symbol: symbol})
	return b
}

// Bases appends every base dimension of set.
func (b SystemBuilder) Bases(set dimension.Set) SystemBuilder {
	b.bases = append(slices.Clip(b.bases), set.Bases()...)
	return b
}

// Logger sets the structured logger for definition and conversion tracing.
func (b SystemBuilder) Logger(l *Logger) SystemBuilder {
	b.logger = l
	return b
}

// Metrics sets the metrics collector for monitoring.
func (b SystemBuilder) Metrics(mc MetricsCollector) SystemBuilder {
	b.metrics = mc
	return b
}

// Build creates the System.
func (b SystemBuilder) Build() (*System, error) {
	set, err := dimension.NewSet(b.bases...)
	if err != nil {
		return nil, &ErrConfiguration{Op: "system", cause: err}
	}

	var opts []Option
	if b.logger != nil {
		opts = append(opts, WithLogger(b.logger))
	}
	if b.metrics != nil {
		opts = append(opts, WithMetricsCollector(b.metrics))
	}
	return NewSystem(set, opts...)
}

// MustBuild creates the System, panicking on error.
func (b SystemBuilder) MustBuild() *System {
	sys, err := b.Build()
	if err != nil {
		panic(err)
	}
	return sys
}
