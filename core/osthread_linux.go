//go:build linux

package core

import "golang.org/x/sys/unix"

// osThreadID returns the kernel task id of the calling thread. The caller
// must be locked to its OS thread for the value to stay meaningful.
func osThreadID() uint64 {
	return uint64(unix.Gettid())
}

// applyOSPriority adjusts the calling thread's nice value. Raising priority
// needs CAP_SYS_NICE; the resulting EPERM is swallowed by the caller.
func applyOSPriority(p ThreadPriority) error {
	var nice int
	switch p {
	case PriorityLow:
		nice = 10
	case PriorityHigh:
		nice = -5
	case PriorityUrgent:
		nice = -10
	default:
		nice = 0
	}
	return unix.Setpriority(unix.PRIO_PROCESS, unix.Gettid(), nice)
}
