//go:build windows

package core

import "golang.org/x/sys/windows"

var (
	kernel32              = windows.NewLazySystemDLL("kernel32.dll")
	procSetThreadPriority = kernel32.NewProc("SetThreadPriority")
)

// Thread priority levels from processthreadsapi.h.
const (
	threadPriorityBelowNormal int32 = -1
	threadPriorityNormal      int32 = 0
	threadPriorityAboveNormal int32 = 1
	threadPriorityHighest     int32 = 2
)

func osThreadID() uint64 {
	return uint64(windows.GetCurrentThreadId())
}

func applyOSPriority(p ThreadPriority) error {
	var level int32
	switch p {
	case PriorityLow:
		level = threadPriorityBelowNormal
	case PriorityHigh:
		level = threadPriorityAboveNormal
	case PriorityUrgent:
		level = threadPriorityHighest
	default:
		level = threadPriorityNormal
	}
	r1, _, err := procSetThreadPriority.Call(
		uintptr(windows.CurrentThread()),
		uintptr(uint32(level)),
	)
	if r1 == 0 {
		return err
	}
	return nil
}
