package physunit

import (
	"log/slog"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures System construction.
type Option func(*options)

// WithMetricsCollector configures metrics collection for unit definitions,
// conversions and dimension mismatches.
// Pass nil to disable metrics.
//
// Example:
//
//	metrics := &physunit.BasicMetricsCollector{}
//	sys, _ := physunit.NewSystem(set, physunit.WithMetricsCollector(metrics))
//	// ... use sys ...
//	stats := metrics.GetStats()
//	fmt.Printf("Conversions: %d, Mismatches: %d\n", stats.ConversionCount, stats.MismatchCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := physunit.NewJSONLogger(slog.LevelDebug)
//	sys, _ := physunit.NewSystem(set, physunit.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
