// Package reveal tracks the one-way hidden → revealed transition of elements
// that become visible in a viewport.
package reveal

import "sync"

// State of a tracked element.
type State int

const (
	Hidden State = iota
	Revealed
)

func (s State) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	default:
		return "unknown"
	}
}

// Tracker holds the reveal state of a set of elements keyed by K.
// Once an element is revealed it stays revealed until unregistered.
type Tracker[K comparable] struct {
	mu        sync.Mutex
	states    map[K]State
	callbacks map[K]func(K)
}

// NewTracker returns an empty Tracker.
func NewTracker[K comparable]() *Tracker[K] {
	return &Tracker[K]{
		states:    make(map[K]State),
		callbacks: make(map[K]func(K)),
	}
}

// Register starts tracking key in the hidden state. onReveal, if non-nil, is
// called once when key is first observed visible. Registering a key that is
// already tracked replaces its callback and keeps its state.
func (t *Tracker[K]) Register(key K, onReveal func(K)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.states[key]; !ok {
		t.states[key] = Hidden
	}
	if t.states[key] == Revealed {
		delete(t.callbacks, key)
		return
	}
	if onReveal != nil {
		t.callbacks[key] = onReveal
	}
}

// Unregister stops tracking key and drops any pending callback.
func (t *Tracker[K]) Unregister(key K) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.states, key)
	delete(t.callbacks, key)
}

// Observe records the current visibility of key and reports whether this
// observation revealed it. Unknown keys are registered implicitly.
func (t *Tracker[K]) Observe(key K, visible bool) bool {
	t.mu.Lock()
	state, ok := t.states[key]
	if !ok {
		t.states[key] = Hidden
	}
	if !visible || state == Revealed {
		t.mu.Unlock()
		return false
	}
	t.states[key] = Revealed
	cb := t.callbacks[key]
	delete(t.callbacks, key)
	t.mu.Unlock()

	if cb != nil {
		cb(key)
	}
	return true
}

// ObserveVisible observes every key in visible as visible and returns the
// keys revealed by this call, in order.
func (t *Tracker[K]) ObserveVisible(visible []K) []K {
	var revealed []K
	for _, k := range visible {
		if t.Observe(k, true) {
			revealed = append(revealed, k)
		}
	}
	return revealed
}

// State returns the state of key; untracked keys are Hidden.
func (t *Tracker[K]) State(key K) State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.states[key]
}

// Revealed reports whether key has been revealed.
func (t *Tracker[K]) Revealed(key K) bool {
	return t.State(key) == Revealed
}

// Len returns the number of tracked keys.
func (t *Tracker[K]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.states)
}
