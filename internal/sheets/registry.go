package sheets

import (
	"encoding/json"
	"sync"
)

// pendingRegistry holds the process-wide set of in-flight callback
// registrations, the equivalent of the uniquely named globals the
// script-injection technique relies on. Entries are removed exactly
// once on every exit path; release is idempotent.
type pendingRegistry struct {
	mu      sync.Mutex
	pending map[string]chan json.RawMessage
}

var callbacks = &pendingRegistry{pending: make(map[string]chan json.RawMessage)}

// acquire registers a callback name and returns its delivery channel
// plus a release that removes the entry at most once.
func (r *pendingRegistry) acquire(name string) (<-chan json.RawMessage, func()) {
	ch := make(chan json.RawMessage, 1)
	r.mu.Lock()
	r.pending[name] = ch
	r.mu.Unlock()

	var once sync.Once
	release := func() {
		once.Do(func() {
			r.mu.Lock()
			delete(r.pending, name)
			r.mu.Unlock()
		})
	}
	return ch, release
}

// deliver hands a payload to a still-registered callback. Deliveries
// after release (timeout, error) are dropped silently.
func (r *pendingRegistry) deliver(name string, payload json.RawMessage) {
	r.mu.Lock()
	ch, ok := r.pending[name]
	r.mu.Unlock()
	if ok {
		select {
		case ch <- payload:
		default:
		}
	}
}

func (r *pendingRegistry) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}
