package ui

import (
	"sync"
	"time"
)

// tasks runs delayed callbacks which can be canceled all at once
type tasks struct {
	mu      sync.Mutex
	pending map[uint64]*time.Timer
	next    uint64
	closed  bool
}

func newTasks() *tasks {
	return &tasks{pending: make(map[uint64]*time.Timer)}
}

// After schedules fn to run once after d. Returns cancel func, safe to call multiple times.
// Nothing is scheduled once tasks closed.
func (t *tasks) After(d time.Duration, fn func()) (cancel func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return func() {}
	}
	t.next++
	id := t.next
	t.pending[id] = time.AfterFunc(d, func() {
		t.mu.Lock()
		_, ok := t.pending[id]
		delete(t.pending, id)
		t.mu.Unlock()
		if ok {
			fn()
		}
	})
	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if tm, ok := t.pending[id]; ok {
			tm.Stop()
			delete(t.pending, id)
		}
	}
}

// Pending returns number of scheduled callbacks not fired yet
func (t *tasks) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending)
}

// Close cancels all pending callbacks and rejects new ones
func (t *tasks) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	for id, tm := range t.pending {
		tm.Stop()
		delete(t.pending, id)
	}
}
