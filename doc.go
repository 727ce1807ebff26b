// Package nativethread provides an OS-backed thread lifecycle abstraction for Go.
//
// This library wraps native thread creation, priority assignment, join
// semantics, and current-thread identity tracking behind a uniform state
// machine. Each logical Thread is a reference-counted identity plus a unit of
// work; starting it spawns a goroutine locked to a dedicated OS thread for
// its whole life.
//
// # Quick Start
//
// Create a thread, start it joinable, and wait for it:
//
//	t := nativethread.NewThread("worker", func() {
//		// Your code here - runs on a dedicated OS thread
//	})
//	if !t.Start(nativethread.PriorityNormal, true) {
//		// thread could not be started
//	}
//	t.Join()
//	t.Unref()
//
// # Key Concepts
//
// Thread: the logical, reference-counted execution identity. The creator
// holds one reference; Start takes an additional one that the launcher
// releases when the thread finishes.
//
// Lifecycle: New -> StartCalled -> Running -> Finished, forward-only.
// Join blocks until Finished; multiple concurrent joiners are all released
// together.
//
// Current-thread registry: GetCurrentThread returns the Thread bound to the
// calling goroutine. Threads created through Start are bound automatically
// before any user code runs. The first unbound caller process-wide is assumed
// to be the main thread and bound to MainThread(); any later unbound caller
// is reported as a contract violation rather than handed a nil identity.
//
// ThreadPriority: a best-effort scheduling hint (Low, Normal, High, Urgent)
// applied through the platform's native facility; failure to apply it is
// never surfaced.
//
// # Observability
//
// The core package records lifecycle events through the Metrics interface and
// process-wide counters (Stats). The observability/prometheus package exports
// both to Prometheus; observability/zlog adapts the Logger interface to
// zerolog.
//
// # Error Handling
//
// Recoverable failures (thread creation) surface as a boolean from Start.
// Invariant violations (joining a non-joinable thread, querying identity from
// an unregistered goroutine) go through a configurable ContractHandler; the
// default panics, because a silently wrong thread identity is a worse bug
// than a crash.
package nativethread
