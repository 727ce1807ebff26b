//go:build !linux && !windows

package core

// osThreadID falls back to the goroutine id. The launcher locks each
// goroutine to its OS thread, so the id is still unique and stable for the
// thread's life, just not the kernel's own numbering.
func osThreadID() uint64 {
	return curGoroutineID()
}

// applyOSPriority is a no-op on platforms without a wired priority facility.
func applyOSPriority(ThreadPriority) error {
	return nil
}
