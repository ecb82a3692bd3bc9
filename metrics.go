package physunit

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Implementations are called from arbitrary goroutines and must be safe for
// concurrent use.
type MetricsCollector interface {
	// RecordDefinition is called after each unit definition
	// (Base, Multiply, Divide, Derive). err is nil if successful.
	RecordDefinition(op string, err error)

	// RecordConversion is called after each payload rescale between two
	// different scales. err is nil if successful.
	RecordConversion(err error)

	// RecordDimensionMismatch is called when an operation is rejected
	// because its operands have different dimensions.
	RecordDimensionMismatch(op string)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordDefinition(string, error) {}
func (NoopMetricsCollector) RecordConversion(error)         {}
func (NoopMetricsCollector) RecordDimensionMismatch(string) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	DefinitionCount  atomic.Int64
	DefinitionErrors atomic.Int64
	ConversionCount  atomic.Int64
	ConversionErrors atomic.Int64
	MismatchCount    atomic.Int64
}

// RecordDefinition implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDefinition(_ string, err error) {
	b.DefinitionCount.Add(1)
	if err != nil {
		b.DefinitionErrors.Add(1)
	}
}

// RecordConversion implements MetricsCollector.
func (b *BasicMetricsCollector) RecordConversion(err error) {
	b.ConversionCount.Add(1)
	if err != nil {
		b.ConversionErrors.Add(1)
	}
}

// RecordDimensionMismatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDimensionMismatch(string) {
	b.MismatchCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		DefinitionCount:  b.DefinitionCount.Load(),
		DefinitionErrors: b.DefinitionErrors.Load(),
		ConversionCount:  b.ConversionCount.Load(),
		ConversionErrors: b.ConversionErrors.Load(),
		MismatchCount:    b.MismatchCount.Load(),
	}
}

// BasicMetricsStats is a snapshot of metrics from BasicMetricsCollector.
type BasicMetricsStats struct {
	DefinitionCount  int64
	DefinitionErrors int64
	ConversionCount  int64
	ConversionErrors int64
	MismatchCount    int64
}
