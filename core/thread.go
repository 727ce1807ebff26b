package core

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// ThreadMain is the unit of work executed by a started thread.
//
// A panic escaping a ThreadMain is not caught by the launcher: unless the
// embedding application has established its own recovery boundary inside the
// function, an uncaught panic here terminates the process.
type ThreadMain func()

// Thread is a reference-counted logical thread: an identity and a unit of
// work, independent of the OS thread that executes it.
//
// A Thread is created with a reference count of one, owned by the caller.
// Start takes an additional reference for the duration of OS execution; the
// launcher releases it after the thread reaches StateFinished. When the count
// reaches zero the thread handle is released and the object must not be used
// again.
type Thread struct {
	name     string
	main     ThreadMain
	cfg      *ThreadConfig
	refCount atomic.Int32
	impl     threadImpl
}

// NewThread creates a logical thread with the given name and main function.
// The thread does not execute until Start is called.
func NewThread(name string, main ThreadMain) *Thread {
	return NewThreadWithConfig(name, main, nil)
}

// NewThreadWithConfig creates a logical thread with explicit configuration.
// A nil config is equivalent to DefaultThreadConfig().
func NewThreadWithConfig(name string, main ThreadMain, cfg *ThreadConfig) *Thread {
	if cfg == nil {
		cfg = DefaultThreadConfig()
	}
	t := &Thread{
		name: name,
		main: main,
		cfg:  cfg,
	}
	t.refCount.Store(1)
	t.impl.init(t)
	return t
}

// Name returns the thread's human-readable name.
func (t *Thread) Name() string {
	return t.name
}

// String implements fmt.Stringer.
func (t *Thread) String() string {
	return fmt.Sprintf("Thread %s", t.name)
}

// Ref takes an additional reference on the thread.
func (t *Thread) Ref() {
	t.refCount.Add(1)
}

// Unref releases one reference. When the count reaches zero the thread handle
// is released and the OnDestroy hook, if any, fires. The count reaching zero
// while the OS thread is still running is a reference contract violation by
// the caller; the launcher's own reference prevents it as long as all holders
// respect the contract.
func (t *Thread) Unref() {
	n := t.refCount.Add(-1)
	if n == 0 {
		t.destroy()
		return
	}
	if n < 0 {
		t.cfg.contract().HandleViolation(ContractViolation{
			Kind:   PreconditionViolation,
			Op:     "Unref",
			Detail: fmt.Sprintf("reference count of %q dropped below zero", t.name),
		})
	}
}

// RefCount returns the current reference count. Only useful for debug
// logging; the value may be stale by the time it is observed.
func (t *Thread) RefCount() int {
	return int(t.refCount.Load())
}

func (t *Thread) destroy() {
	t.cfg.logger().Debug("deleting thread", F("name", t.name))
	t.impl.releaseHandle()
	if t.cfg.OnDestroy != nil {
		t.cfg.OnDestroy()
	}
}

// =============================================================================
// Main thread singleton
// =============================================================================

var (
	mainThreadOnce sync.Once
	mainThread     *Thread
)

// MainThread returns the singleton Thread representing the process's original
// thread. It is constructed lazily, already in StateRunning, and is never
// started or joined through the lifecycle machine.
func MainThread() *Thread {
	mainThreadOnce.Do(func() {
		mainThread = NewThread("Main", nil)
		mainThread.SetupMainThread()
	})
	return mainThread
}

// =============================================================================
// Static helpers
// =============================================================================

// Yield offers the scheduler a chance to run other work.
func Yield() {
	runtime.Gosched()
}

// Sleep suspends the calling context for at least the given duration.
func Sleep(d time.Duration) {
	time.Sleep(d)
}
