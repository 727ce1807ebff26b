package core

import (
	"fmt"
	"sync"
)

// =============================================================================
// ContractHandler: Interface for reporting precondition violations
// =============================================================================

// ViolationKind classifies a contract violation.
type ViolationKind int

const (
	// PreconditionViolation: an operation was called in a state that forbids
	// it (Join on a non-joinable thread, launcher observing an unexpected
	// state, Unref below zero).
	PreconditionViolation ViolationKind = iota

	// UnregisteredThread: a goroutine that was neither created by this
	// package's launcher nor explicitly bound queried its thread identity
	// after the main-thread bootstrap had already resolved elsewhere.
	UnregisteredThread
)

// String returns a human-readable representation of the kind.
func (k ViolationKind) String() string {
	switch k {
	case PreconditionViolation:
		return "precondition_violation"
	case UnregisteredThread:
		return "unregistered_thread"
	default:
		return "unknown"
	}
}

// ContractViolation describes a violated invariant.
type ContractViolation struct {
	Kind   ViolationKind
	Op     string
	Detail string
}

// Error implements the error interface so handlers can wrap violations.
func (v ContractViolation) Error() string {
	return fmt.Sprintf("nativethread: %s in %s: %s", v.Kind, v.Op, v.Detail)
}

// ContractHandler is invoked when a library invariant is violated.
//
// If the handler returns (rather than panicking or aborting), the guarded
// operation degrades to an early return without mutating state. The embedding
// application decides the policy: abort, log-and-continue, or collect.
//
// Implementations must be safe for concurrent use.
type ContractHandler interface {
	// HandleViolation is called with a description of the violated invariant.
	HandleViolation(v ContractViolation)
}

// PanicContractHandler panics on every violation. This is the default: a nil
// thread identity or a corrupted lifecycle is a more dangerous latent bug
// than a crash.
type PanicContractHandler struct{}

// HandleViolation panics with the violation.
func (h *PanicContractHandler) HandleViolation(v ContractViolation) {
	panic(v)
}

// LogContractHandler reports violations through a Logger and continues.
type LogContractHandler struct {
	Logger Logger
}

// HandleViolation logs the violation at error level.
func (h *LogContractHandler) HandleViolation(v ContractViolation) {
	logger := h.Logger
	if logger == nil {
		logger = NewDefaultLogger()
	}
	logger.Error("contract violation",
		F("kind", v.Kind.String()),
		F("op", v.Op),
		F("detail", v.Detail),
	)
}

var (
	contractMu      sync.RWMutex
	contractHandler ContractHandler = &PanicContractHandler{}
)

// SetContractHandler installs the process-wide violation handler used by
// package-level operations (GetCurrentThread) and by threads whose config
// does not override it. Passing nil restores the default PanicContractHandler.
func SetContractHandler(h ContractHandler) {
	contractMu.Lock()
	defer contractMu.Unlock()
	if h == nil {
		h = &PanicContractHandler{}
	}
	contractHandler = h
}

func globalContractHandler() ContractHandler {
	contractMu.RLock()
	defer contractMu.RUnlock()
	return contractHandler
}

// reportViolation dispatches to the process-wide handler.
func reportViolation(kind ViolationKind, op, detail string) {
	globalContractHandler().HandleViolation(ContractViolation{Kind: kind, Op: op, Detail: detail})
}
