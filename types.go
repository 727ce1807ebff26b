package nativethread

import "github.com/Swind/go-native-thread/core"

// Re-export commonly used types from core package for convenience.
// This allows users to import only the nativethread package for most use cases.

// Thread is the reference-counted logical thread
type Thread = core.Thread

// ThreadMain is the unit of work executed by a started thread
type ThreadMain = core.ThreadMain

// ThreadConfig holds per-thread configuration (logger, metrics, contract handler)
type ThreadConfig = core.ThreadConfig

// ThreadState is the lifecycle state (New, StartCalled, Running, Finished)
type ThreadState = core.ThreadState

// ThreadPriority is the best-effort scheduling hint
type ThreadPriority = core.ThreadPriority

// ThreadHandle identifies the OS-level execution context of a started thread
type ThreadHandle = core.ThreadHandle

// ContractViolation describes a violated library invariant
type ContractViolation = core.ContractViolation

// ContractHandler decides the policy for contract violations
type ContractHandler = core.ContractHandler

// RegistryStats is a snapshot of the process-wide lifecycle counters
type RegistryStats = core.RegistryStats

// State constants
const (
	StateNew         ThreadState = core.StateNew
	StateStartCalled ThreadState = core.StateStartCalled
	StateRunning     ThreadState = core.StateRunning
	StateFinished    ThreadState = core.StateFinished
)

// Priority constants
const (
	PriorityLow    ThreadPriority = core.PriorityLow
	PriorityNormal ThreadPriority = core.PriorityNormal
	PriorityHigh   ThreadPriority = core.PriorityHigh
	PriorityUrgent ThreadPriority = core.PriorityUrgent
)

// NewThread creates a logical thread with the given name and main function.
func NewThread(name string, main ThreadMain) *Thread {
	return core.NewThread(name, main)
}

// NewThreadWithConfig creates a logical thread with explicit configuration.
// This is re-exported for advanced users who want custom logging, metrics,
// or violation policies per thread.
func NewThreadWithConfig(name string, main ThreadMain, cfg *ThreadConfig) *Thread {
	return core.NewThreadWithConfig(name, main, cfg)
}

// Current-thread registry operations
var (
	GetCurrentThread = core.GetCurrentThread
	BindThread       = core.BindThread
	MainThread       = core.MainThread
)

// SetContractHandler installs the process-wide violation policy
var SetContractHandler = core.SetContractHandler

// Stats returns the process-wide lifecycle counters
var Stats = core.Stats

// Yield and Sleep are scheduling helpers usable from any thread
var (
	Yield = core.Yield
	Sleep = core.Sleep
)
