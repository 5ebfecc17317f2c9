package store

import "sync"

// Event describes a cache change published to store subscribers.
type Event struct {
	Entity string `json:"entity"`
	Op     string `json:"op"`
	ID     string `json:"id,omitempty"`
}

type notifier struct {
	subMu sync.RWMutex
	subs  []func(Event)
}

// Subscribe registers a callback invoked after every cache change. Callbacks
// run on the mutating goroutine and must not block.
func (n *notifier) Subscribe(fn func(Event)) {
	n.subMu.Lock()
	defer n.subMu.Unlock()
	n.subs = append(n.subs, fn)
}

func (n *notifier) publish(e Event) {
	n.subMu.RLock()
	defer n.subMu.RUnlock()
	for _, fn := range n.subs {
		fn(e)
	}
}
