package dynvec

import (
	"sync"
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operation metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordOp is called after each operation.
	// op names the operation, duration is the time taken,
	// err is nil if successful.
	RecordOp(op string, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordOp(string, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	OpCount    atomic.Int64
	OpErrors   atomic.Int64
	TotalNanos atomic.Int64

	mu   sync.Mutex
	byOp map[string]int64
}

// RecordOp implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOp(op string, duration time.Duration, err error) {
	b.OpCount.Add(1)
	b.TotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.OpErrors.Add(1)
	}

	b.mu.Lock()
	if b.byOp == nil {
		b.byOp = make(map[string]int64)
	}
	b.byOp[op]++
	b.mu.Unlock()
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	b.mu.Lock()
	byOp := make(map[string]int64, len(b.byOp))
	for k, v := range b.byOp {
		byOp[k] = v
	}
	b.mu.Unlock()

	return BasicMetricsStats{
		OpCount:  b.OpCount.Load(),
		OpErrors: b.OpErrors.Load(),
		AvgNanos: b.getAvgNanos(),
		ByOp:     byOp,
	}
}

func (b *BasicMetricsCollector) getAvgNanos() int64 {
	count := b.OpCount.Load()
	if count == 0 {
		return 0
	}
	return b.TotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of metrics from BasicMetricsCollector.
type BasicMetricsStats struct {
	OpCount  int64
	OpErrors int64
	AvgNanos int64
	ByOp     map[string]int64
}
