package core

import (
	"sync"
	"sync/atomic"
)

// The current-thread registry maps a goroutine to the Thread it is executing.
// Go has no thread-local storage; a goroutine-id-keyed map is the equivalent
// slot, since a launcher-created worker is a single goroutine locked to a
// single OS thread. The slot is non-owning: binding and unbinding never touch
// the Thread's reference count.
var currentThreads sync.Map // goroutine id -> *Thread

// mainThreadKnown is set exactly once, the first time any goroutine either
// queries its identity before an explicit binding has occurred, or explicitly
// binds the main thread. Its only job is to pick the winner for "who resolves
// main-thread identity"; it orders no other memory.
var mainThreadKnown atomic.Bool

// GetCurrentThread returns the Thread bound to the calling goroutine.
//
// If no binding exists, the first such call process-wide assumes the caller
// is the main thread, binds it to MainThread(), and returns it. Any later
// unbound caller was never registered: that is a programming error, reported
// as an UnregisteredThread contract violation. A nil return is only possible
// when the installed handler chooses to continue; a nil identity is a more
// dangerous latent bug than a crash, which is why the default handler panics.
func GetCurrentThread() *Thread {
	gid := curGoroutineID()
	if v, ok := currentThreads.Load(gid); ok {
		return v.(*Thread)
	}
	return initCurrentThread(gid)
}

// initCurrentThread handles the empty-slot path of GetCurrentThread: it
// either resolves the caller as the main thread or reports the caller as
// unregistered.
func initCurrentThread(gid uint64) *Thread {
	if !mainThreadKnown.Swap(true) {
		// This call happened before the first thread was spawned and before
		// any explicit binding, so the caller must be the main thread.
		t := MainThread()
		currentThreads.Store(gid, t)
		return t
	}
	reportViolation(UnregisteredThread, "GetCurrentThread",
		"calling goroutine was neither created by the launcher nor bound with BindThread")
	return nil
}

// BindThread associates the calling goroutine with the given Thread,
// overwriting any prior binding. Worker goroutines created by the launcher
// are bound automatically and must not be rebound.
//
// Binding the main thread from a previously unbound goroutine also marks the
// main-thread identity as resolved, idempotently with the lazy path in
// GetCurrentThread.
func BindThread(t *Thread) {
	gid := curGoroutineID()
	if _, ok := currentThreads.Load(gid); !ok && t == MainThread() {
		mainThreadKnown.Store(true)
	}
	currentThreads.Store(gid, t)
}

// bindCurrent installs a launcher-created binding for the given goroutine.
func bindCurrent(gid uint64, t *Thread) {
	currentThreads.Store(gid, t)
}

// unbindCurrent removes a binding once its goroutine terminates. Goroutine
// ids are never reused, so a stale entry could only leak, never alias.
func unbindCurrent(gid uint64) {
	currentThreads.Delete(gid)
}

// boundThreadCount reports the number of live bindings.
func boundThreadCount() int {
	n := 0
	currentThreads.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
