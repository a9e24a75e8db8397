package quantity

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    copiedCells prometheus.Counter
//	    opHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordCopy(cells int, duration time.Duration) {
//	    p.copiedCells.Add(float64(cells))
//	}
type MetricsCollector interface {
	// RecordCopy is called after a write on shared storage forced a deep copy.
	// cells is the size of the copied storage.
	RecordCopy(cells int, duration time.Duration)

	// RecordOperation is called after each whole-vector combinator
	// (Plus, Minus, Diff, Times, ...). err is nil if successful.
	RecordOperation(op string, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCopy(int, time.Duration)               {}
func (NoopMetricsCollector) RecordOperation(string, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	CopyCount           atomic.Int64
	CopyCells           atomic.Int64
	CopyTotalNanos      atomic.Int64
	OperationCount      atomic.Int64
	OperationErrors     atomic.Int64
	OperationTotalNanos atomic.Int64
}

// RecordCopy implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCopy(cells int, duration time.Duration) {
	b.CopyCount.Add(1)
	b.CopyCells.Add(int64(cells))
	b.CopyTotalNanos.Add(duration.Nanoseconds())
}

// RecordOperation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOperation(_ string, duration time.Duration, err error) {
	b.OperationCount.Add(1)
	b.OperationTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.OperationErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		CopyCount:         b.CopyCount.Load(),
		CopyCells:         b.CopyCells.Load(),
		CopyAvgNanos:      avg(b.CopyTotalNanos.Load(), b.CopyCount.Load()),
		OperationCount:    b.OperationCount.Load(),
		OperationErrors:   b.OperationErrors.Load(),
		OperationAvgNanos: avg(b.OperationTotalNanos.Load(), b.OperationCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	CopyCount         int64
	CopyCells         int64
	CopyAvgNanos      int64
	OperationCount    int64
	OperationErrors   int64
	OperationAvgNanos int64
}
