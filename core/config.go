package core

// =============================================================================
// ThreadConfig: Configuration for Thread
// =============================================================================

// ThreadConfig holds configuration options for a Thread.
// All fields are optional; if not provided, default implementations will be used.
type ThreadConfig struct {
	// Logger receives debug-level lifecycle events (start, terminate) and
	// warnings from best-effort operations. Defaults to NoOpLogger.
	Logger Logger

	// Metrics is called to record lifecycle metrics. Defaults to NilMetrics.
	Metrics Metrics

	// Contract overrides the process-wide violation handler for operations on
	// this thread. Defaults to the handler installed via SetContractHandler.
	Contract ContractHandler

	// Spawn creates the OS-backed execution context for the launcher. If nil,
	// the entry runs on a new goroutine that the launcher locks to an OS
	// thread. A non-nil error makes Start return false; this is the
	// resource-exhaustion path, e.g. for callers enforcing a thread budget.
	Spawn func(entry func()) error

	// OnDestroy, if set, is called exactly once when the thread's reference
	// count reaches zero and its handle has been released.
	OnDestroy func()
}

// DefaultThreadConfig returns a config with default handlers.
func DefaultThreadConfig() *ThreadConfig {
	return &ThreadConfig{
		Logger:  NewNoOpLogger(),
		Metrics: &NilMetrics{},
	}
}

func (c *ThreadConfig) logger() Logger {
	if c == nil || c.Logger == nil {
		return NewNoOpLogger()
	}
	return c.Logger
}

func (c *ThreadConfig) metrics() Metrics {
	if c == nil || c.Metrics == nil {
		return &NilMetrics{}
	}
	return c.Metrics
}

func (c *ThreadConfig) contract() ContractHandler {
	if c == nil || c.Contract == nil {
		return globalContractHandler()
	}
	return c.Contract
}

func (c *ThreadConfig) spawn(entry func()) error {
	if c == nil || c.Spawn == nil {
		go entry()
		return nil
	}
	return c.Spawn(entry)
}
