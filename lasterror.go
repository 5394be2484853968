package mmfio

import "sync"

// lastErr holds the most recent Open failure message, process-wide.
// The mutex keeps the slot memory-safe; the value itself is only
// meaningful when failing calls are serialized by the caller.
var lastErr struct {
	mu  sync.Mutex
	msg string
}

func setLastError(err error) {
	lastErr.mu.Lock()
	lastErr.msg = err.Error()
	lastErr.mu.Unlock()
}

// LastError returns the description of the most recent failure, or the
// empty string if no operation has failed yet. Each failure overwrites
// the previous message.
func LastError() string {
	lastErr.mu.Lock()
	defer lastErr.mu.Unlock()
	return lastErr.msg
}
