package session

import "sync/atomic"

// slotLock - a single-slot lock with try-acquire semantics. Mutating
// operations on the session must hold the slot; callers that fail to
// acquire it are rejected, never queued.
type slotLock struct {
	held atomic.Bool
}

func (that *slotLock) TryAcquire() bool {
	return that.held.CompareAndSwap(false, true)
}

func (that *slotLock) Release() {
	that.held.Store(false)
}

func (that *slotLock) Held() bool {
	return that.held.Load()
}
