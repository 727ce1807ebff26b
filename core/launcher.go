package core

import (
	"fmt"
	"os"
	"runtime"
	"time"
)

// launch is the entry point of every thread created through Start. It bridges
// OS-level execution into the lifecycle state machine and the thread's main
// function.
//
// The goroutine is locked to its OS thread for its whole life, so the native
// thread id resolved here stays valid until termination, and the goroutine id
// is a faithful stand-in for a thread-local slot.
func launch(self *Thread) {
	runtime.LockOSThread()

	handle := ThreadHandle{
		pid:   os.Getpid(),
		tid:   osThreadID(),
		valid: true,
	}

	// Bind identity before any user code runs, so GetCurrentThread is correct
	// from the first instruction of the main function onward.
	gid := curGoroutineID()
	bindCurrent(gid, self)

	impl := &self.impl
	impl.mu.Lock()
	if impl.state.load() != StateStartCalled {
		state := impl.state.load()
		impl.mu.Unlock()
		self.cfg.contract().HandleViolation(ContractViolation{
			Kind:   PreconditionViolation,
			Op:     "launch",
			Detail: fmt.Sprintf("thread %q entered the launcher in state %s, want %s", self.name, state, StateStartCalled),
		})
		return
	}
	impl.handle = handle
	priority := impl.priority
	impl.state.store(StateRunning)
	impl.cond.Broadcast()
	impl.mu.Unlock()

	// Scheduling priority is a hint; failure to apply it is never fatal.
	if err := applyOSPriority(priority); err != nil {
		self.cfg.logger().Debug("priority hint not applied",
			F("name", self.name), F("priority", priority.String()), F("error", err))
	}

	begin := time.Now()
	self.main()

	self.cfg.logger().Debug("terminating thread",
		F("name", self.name), F("count", self.RefCount()))

	impl.mu.Lock()
	if impl.state.load() != StateRunning {
		state := impl.state.load()
		impl.mu.Unlock()
		self.cfg.contract().HandleViolation(ContractViolation{
			Kind:   PreconditionViolation,
			Op:     "launch",
			Detail: fmt.Sprintf("thread %q finished in state %s, want %s", self.name, state, StateRunning),
		})
		return
	}
	impl.state.store(StateFinished)
	impl.cond.Broadcast()
	impl.mu.Unlock()

	unbindCurrent(gid)
	self.cfg.metrics().RecordThreadFinished(self.name, priority, time.Since(begin))
	lifecycleCounters.finished.Add(1)

	// Drop the reference taken in Start. This may destroy the Thread, so it
	// must be the very last touch of self.
	self.Unref()
}
