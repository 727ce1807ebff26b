package core

import (
	"sync/atomic"
	"time"
)

// =============================================================================
// Metrics: Interface for observability and monitoring
// =============================================================================

// Metrics defines the interface for collecting thread lifecycle metrics.
// Implementations can send metrics to monitoring systems (Prometheus, StatsD, etc.).
//
// Methods should be non-blocking and fast to avoid impacting thread startup
// and teardown paths. Implementations must be safe for concurrent use.
type Metrics interface {
	// RecordThreadStarted records that a thread was successfully started.
	RecordThreadStarted(name string, priority ThreadPriority)

	// RecordThreadFinished records that a thread's main function returned.
	// runtime is measured from launcher entry to main-function return.
	RecordThreadFinished(name string, priority ThreadPriority, runtime time.Duration)

	// RecordStartFailure records a Start call that returned false.
	RecordStartFailure(name string, reason string)
}

// NilMetrics provides a no-op metrics implementation that does nothing.
// This is the default when no metrics interface is provided.
type NilMetrics struct{}

// RecordThreadStarted is a no-op.
func (m *NilMetrics) RecordThreadStarted(name string, priority ThreadPriority) {}

// RecordThreadFinished is a no-op.
func (m *NilMetrics) RecordThreadFinished(name string, priority ThreadPriority, runtime time.Duration) {
}

// RecordStartFailure is a no-op.
func (m *NilMetrics) RecordStartFailure(name string, reason string) {}

// =============================================================================
// RegistryStats: process-wide lifecycle counters
// =============================================================================

// RegistryStats is a snapshot of the process-wide thread lifecycle counters.
type RegistryStats struct {
	// Started is the number of threads that passed Start successfully.
	Started int64

	// Finished is the number of threads whose main function has returned.
	Finished int64

	// Running is Started minus Finished. The bootstrapped main thread is not
	// counted.
	Running int64

	// StartFailures is the number of Start calls that returned false.
	StartFailures int64

	// Bound is the number of goroutines currently bound to a thread identity,
	// including the main thread once its identity has been resolved.
	Bound int
}

var lifecycleCounters struct {
	started       atomic.Int64
	finished      atomic.Int64
	startFailures atomic.Int64
}

// Stats returns a snapshot of the process-wide lifecycle counters.
func Stats() RegistryStats {
	started := lifecycleCounters.started.Load()
	finished := lifecycleCounters.finished.Load()
	return RegistryStats{
		Started:       started,
		Finished:      finished,
		Running:       started - finished,
		StartFailures: lifecycleCounters.startFailures.Load(),
		Bound:         boundThreadCount(),
	}
}
