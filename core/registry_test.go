package core

import (
	"sync"
	"testing"
	"time"
)

// resetThreadGlobalsForTest rewinds the process-wide registry state so each
// test observes a fresh bootstrap. Tests touching these globals must not run
// in parallel.
func resetThreadGlobalsForTest() {
	currentThreads.Range(func(k, _ any) bool {
		currentThreads.Delete(k)
		return true
	})
	mainThreadKnown.Store(false)
	mainThreadOnce = sync.Once{}
	mainThread = nil
	SetContractHandler(nil)
}

// recordingHandler collects violations instead of panicking.
type recordingHandler struct {
	mu         sync.Mutex
	violations []ContractViolation
}

func (h *recordingHandler) HandleViolation(v ContractViolation) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.violations = append(h.violations, v)
}

func (h *recordingHandler) all() []ContractViolation {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]ContractViolation(nil), h.violations...)
}

// TestGetCurrentThread_MainBootstrap verifies the lazy main-thread resolution
// Given: A fresh process state with no explicit binding
// When: The current goroutine queries its thread identity
// Then: It is bound to the main thread, idempotently
func TestGetCurrentThread_MainBootstrap(t *testing.T) {
	resetThreadGlobalsForTest()
	defer resetThreadGlobalsForTest()

	got := GetCurrentThread()
	if got == nil {
		t.Fatal("GetCurrentThread() = nil, want main thread")
	}
	if got != MainThread() {
		t.Errorf("GetCurrentThread() = %v, want the main thread singleton", got)
	}
	if got.Name() != "Main" {
		t.Errorf("main thread name = %q, want %q", got.Name(), "Main")
	}
	if got.State() != StateRunning {
		t.Errorf("main thread state = %v, want %v", got.State(), StateRunning)
	}

	// Second query from the same context returns the identical object.
	if again := GetCurrentThread(); again != got {
		t.Errorf("second GetCurrentThread() = %v, want identical object %v", again, got)
	}
}

// TestGetCurrentThread_Unregistered verifies the fatal unregistered path
// Given: The main-thread bootstrap already resolved on another goroutine
// When: An unbound goroutine queries its thread identity
// Then: The UnregisteredThread violation fires and no identity is returned
func TestGetCurrentThread_Unregistered(t *testing.T) {
	resetThreadGlobalsForTest()
	defer resetThreadGlobalsForTest()

	// Resolve main-thread identity here first.
	if GetCurrentThread() != MainThread() {
		t.Fatal("bootstrap did not resolve to the main thread")
	}

	handler := &recordingHandler{}
	SetContractHandler(handler)

	var got *Thread
	done := make(chan struct{})
	go func() {
		defer close(done)
		got = GetCurrentThread()
	}()
	<-done

	if got != nil {
		t.Errorf("GetCurrentThread() from unregistered goroutine = %v, want nil after violation", got)
	}
	violations := handler.all()
	if len(violations) != 1 {
		t.Fatalf("len(violations) = %d, want 1", len(violations))
	}
	if violations[0].Kind != UnregisteredThread {
		t.Errorf("violation kind = %v, want %v", violations[0].Kind, UnregisteredThread)
	}
}

// TestBindThread_MainMarksBootstrap verifies explicit main binding
// Given: A fresh process state
// When: A goroutine explicitly binds the main thread
// Then: The bootstrap flag is set and later unbound queries are violations
func TestBindThread_MainMarksBootstrap(t *testing.T) {
	resetThreadGlobalsForTest()
	defer resetThreadGlobalsForTest()

	done := make(chan struct{})
	go func() {
		defer close(done)
		BindThread(MainThread())
		if got := GetCurrentThread(); got != MainThread() {
			t.Errorf("bound goroutine GetCurrentThread() = %v, want main thread", got)
		}
	}()
	<-done

	// The test goroutine itself is still unbound; the explicit bind above
	// must have consumed the bootstrap.
	handler := &recordingHandler{}
	SetContractHandler(handler)
	if got := GetCurrentThread(); got != nil {
		t.Errorf("GetCurrentThread() = %v, want nil after violation", got)
	}
	if n := len(handler.all()); n != 1 {
		t.Errorf("len(violations) = %d, want 1", n)
	}
}

// TestBindThread_Overwrite verifies rebinding semantics
// Given: A goroutine bound to one thread
// When: BindThread is called with another thread
// Then: The newer binding wins
func TestBindThread_Overwrite(t *testing.T) {
	resetThreadGlobalsForTest()
	defer resetThreadGlobalsForTest()

	first := NewThread("first", nil)
	second := NewThread("second", nil)

	BindThread(first)
	if got := GetCurrentThread(); got != first {
		t.Fatalf("GetCurrentThread() = %v, want %v", got, first)
	}
	BindThread(second)
	if got := GetCurrentThread(); got != second {
		t.Fatalf("GetCurrentThread() after rebind = %v, want %v", got, second)
	}
}

// TestLauncherBinding_RemovedAfterFinish verifies worker slot cleanup
// Given: A thread started through the launcher
// When: Its main function returns
// Then: The worker's registry slot is removed
func TestLauncherBinding_RemovedAfterFinish(t *testing.T) {
	resetThreadGlobalsForTest()
	defer resetThreadGlobalsForTest()

	baseline := boundThreadCount()

	th := NewThread("worker", func() {})
	if !th.Start(PriorityNormal, true) {
		t.Fatal("Start() = false, want true")
	}
	th.Join()

	// The slot is removed after the Finished broadcast; poll briefly.
	deadline := time.Now().Add(2 * time.Second)
	for boundThreadCount() != baseline {
		if time.Now().After(deadline) {
			t.Fatalf("boundThreadCount() = %d, want %d after finish", boundThreadCount(), baseline)
		}
		time.Sleep(time.Millisecond)
	}
	th.Unref()
}
