package core

import "sync/atomic"

// ThreadState is the lifecycle state of a Thread.
//
// A thread moves through exactly one forward-only sequence:
//
//	StateNew --Start()--> StateStartCalled --[launcher runs]--> StateRunning --[main returns]--> StateFinished
//
// No transition ever reverses or skips StateStartCalled. StateFinished is
// terminal.
type ThreadState int32

const (
	// StateNew: the thread object exists but Start has not been called.
	StateNew ThreadState = iota

	// StateStartCalled: Start has been called; the OS thread may not be
	// scheduled yet. A failed Start also leaves the thread in this state
	// (see Thread.Start).
	StateStartCalled

	// StateRunning: the launcher is executing the thread's main function.
	StateRunning

	// StateFinished: the main function has returned. Terminal.
	StateFinished
)

// String returns a human-readable representation of the state.
func (s ThreadState) String() string {
	switch s {
	case StateNew:
		return "new"
	case StateStartCalled:
		return "start_called"
	case StateRunning:
		return "running"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// atomicState holds a ThreadState that is written only under the owning
// thread's mutex but may be read without it. The only lock-free read is the
// duplicate-Start fast path; every decision is revalidated under the lock.
type atomicState struct {
	v atomic.Int32
}

func (s *atomicState) load() ThreadState {
	return ThreadState(s.v.Load())
}

func (s *atomicState) store(state ThreadState) {
	s.v.Store(int32(state))
}
