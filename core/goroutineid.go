package core

import (
	"runtime"
	"strconv"
	"strings"
)

// curGoroutineID extracts the current goroutine's id from the stack header.
// Goroutine ids are never reused by the runtime, so the id is a stable key
// for the lifetime of the goroutine.
func curGoroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	if n <= 0 {
		return 0
	}
	// Stack header: "goroutine 123 ["
	fields := strings.Fields(strings.TrimPrefix(string(buf[:n]), "goroutine "))
	if len(fields) == 0 {
		return 0
	}
	id, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return 0
	}
	return id
}
