package core

// ThreadPriority is a scheduling hint for a thread about to be started.
//
// The hint is applied through the platform's native priority facility on a
// best-effort basis: failure to apply it is never surfaced to the caller.
type ThreadPriority int

const (
	// PriorityLow: background work that should yield to everything else.
	PriorityLow ThreadPriority = iota

	// PriorityNormal: the default scheduling priority.
	PriorityNormal

	// PriorityHigh: latency-sensitive work.
	PriorityHigh

	// PriorityUrgent: the highest hint; use sparingly.
	PriorityUrgent
)

// String returns a human-readable representation of the priority.
func (p ThreadPriority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityNormal:
		return "normal"
	case PriorityHigh:
		return "high"
	case PriorityUrgent:
		return "urgent"
	default:
		return "unknown"
	}
}
