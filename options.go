package quantity

import (
	"log/slog"
	"time"

	"github.com/hupe1980/quantity/internal/storage"
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	copier           storage.Copier
}

// Option configures vector construction.
//
// Options are fixed when a vector is built. Views derived from it (Mutable,
// Immutable, Copy) share them, and combinator results inherit the options of
// their left operand.
type Option func(*options)

// WithLogger configures structured logging of copy-on-write copies, failed
// operations and unnamed derived units.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := quantity.NewJSONLogger(slog.LevelDebug)
//	v, _ := quantity.NewVector[quantity.Absolute, quantity.Dense](values, unit.Meter, quantity.WithLogger(logger))
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

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &quantity.BasicMetricsCollector{}
//	v, _ := quantity.NewVector[quantity.Relative, quantity.Dense](values, unit.Second, quantity.WithMetricsCollector(metrics))
//	// ... use v ...
//	stats := metrics.GetStats()
//	fmt.Printf("Copies: %d, cells copied: %d\n", stats.CopyCount, stats.CopyCells)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithParallelCopy tunes the deep copy performed on the first write to shared
// storage. Storages with at least threshold cells are copied by up to workers
// goroutines; the write proceeds only after the copy has completed.
//
// threshold <= 0 or workers <= 1 disables parallel copying.
func WithParallelCopy(threshold, workers int) Option {
	return func(o *options) {
		o.copier = storage.Copier{Threshold: threshold, Workers: workers}
	}
}

func applyOptions(optFns []Option) *options {
	o := &options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		copier:           storage.DefaultCopier(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(o)
		}
	}
	return o
}

// cloneStorage is the copy-on-write clone function of every view.
func (o *options) cloneStorage(s storage.Storage) storage.Storage {
	start := time.Now()
	c := o.copier.Clone(s)
	d := time.Since(start)

	o.metricsCollector.RecordCopy(s.Size(), d)
	o.logger.LogCopy(s.Size(), s.Kind().String(), d)

	return c
}
