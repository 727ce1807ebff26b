package core

import (
	"fmt"
	"sync"
)

// ThreadHandle identifies the OS-level execution context backing a started
// thread. It is invalid before Start succeeds, valid from the launcher's
// first instruction until the owning Thread is destroyed.
type ThreadHandle struct {
	pid   int
	tid   uint64
	valid bool
}

// Valid reports whether the handle refers to a live or completed OS thread.
func (h ThreadHandle) Valid() bool {
	return h.valid
}

// threadImpl is the per-thread lifecycle state machine. One mutex and one
// condition variable guard the state field and the join predicate; they are
// the only synchronization this machine uses. The condition variable is
// broadcast on both the StartCalled->Running and Running->Finished
// transitions: a starter waiting for confirmation and a joiner waiting for
// completion each re-check their own monotonic predicate.
type threadImpl struct {
	mu       sync.Mutex
	cond     *sync.Cond
	state    atomicState
	joinable bool
	priority ThreadPriority
	handle   ThreadHandle
	parent   *Thread
}

func (impl *threadImpl) init(parent *Thread) {
	impl.cond = sync.NewCond(&impl.mu)
	impl.parent = parent
	impl.state.store(StateNew)
}

// Start transitions the thread from StateNew to StateStartCalled and spawns
// the launcher. It returns false without side effects if the thread was
// already started, and false after releasing the launcher's reference if the
// OS-level spawn failed. In the spawn-failure case the state stays at
// StateStartCalled: failure is knowable only from the return value, not from
// later state inspection, and the thread cannot be restarted.
//
// On success the requested priority is applied by the launcher through the
// platform's native facility, best effort only.
func (t *Thread) Start(priority ThreadPriority, joinable bool) bool {
	impl := &t.impl

	// Fast path for duplicate Start calls; revalidated under the lock.
	if impl.state.load() != StateNew {
		return false
	}

	impl.mu.Lock()
	t.cfg.logger().Debug("starting thread", F("name", t.name), F("priority", priority.String()))

	if impl.state.load() != StateNew || impl.handle.valid {
		impl.mu.Unlock()
		return false
	}

	impl.joinable = joinable
	impl.priority = priority
	impl.state.store(StateStartCalled)

	// Take the launcher's reference first. The launcher releases it when the
	// thread terminates.
	t.Ref()
	err := t.cfg.spawn(func() { launch(t) })
	impl.mu.Unlock()

	if err != nil {
		t.cfg.logger().Warn("thread creation failed",
			F("name", t.name), F("error", err))
		t.cfg.metrics().RecordStartFailure(t.name, "spawn")
		lifecycleCounters.startFailures.Add(1)
		t.Unref()
		return false
	}

	t.cfg.metrics().RecordThreadStarted(t.name, priority)
	lifecycleCounters.started.Add(1)
	return true
}

// Join blocks the calling context until the thread reaches StateFinished. If
// the thread has already finished, Join returns immediately. Calling Join on
// a non-joinable or never-started thread is a contract violation; if the
// installed handler returns, Join degrades to an immediate return.
func (t *Thread) Join() {
	impl := &t.impl
	impl.mu.Lock()
	if !impl.joinable || impl.state.load() == StateNew {
		impl.mu.Unlock()
		t.cfg.contract().HandleViolation(ContractViolation{
			Kind:   PreconditionViolation,
			Op:     "Join",
			Detail: fmt.Sprintf("thread %q is not joinable or was never started", t.name),
		})
		return
	}
	for impl.state.load() != StateFinished {
		impl.cond.Wait()
	}
	impl.mu.Unlock()
}

// UniqueID returns a process-scoped identifier combining the OS process id
// and the OS thread id, "pid.tid". The value is stable for the life of the
// OS thread and meaningless before the launcher has published the handle.
func (t *Thread) UniqueID() string {
	impl := &t.impl
	impl.mu.Lock()
	defer impl.mu.Unlock()
	return fmt.Sprintf("%d.%d", impl.handle.pid, impl.handle.tid)
}

// SetupMainThread marks a pre-existing OS thread, typically the process's
// original thread, as already running without going through Start. It is used
// exactly once, at process initialization, for the main thread only.
func (t *Thread) SetupMainThread() {
	impl := &t.impl
	impl.mu.Lock()
	impl.state.store(StateRunning)
	impl.mu.Unlock()
}

// State returns the thread's current lifecycle state.
func (t *Thread) State() ThreadState {
	impl := &t.impl
	impl.mu.Lock()
	defer impl.mu.Unlock()
	return impl.state.load()
}

// IsStarted reports whether Start has been called (successfully or not) or
// the thread was set up as the main thread.
func (t *Thread) IsStarted() bool {
	return t.State() != StateNew
}

// IsJoinable reports whether the thread was started with the joinable flag.
func (t *Thread) IsJoinable() bool {
	impl := &t.impl
	impl.mu.Lock()
	defer impl.mu.Unlock()
	return impl.joinable
}

// releaseHandle drops the OS-level handle at destruction time.
func (impl *threadImpl) releaseHandle() {
	impl.mu.Lock()
	impl.handle = ThreadHandle{}
	impl.mu.Unlock()
}
