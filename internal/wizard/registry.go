package wizard

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/store"
)

const sweepInterval = time.Minute

// Registry tracks one live wizard per UI client, keyed by an opaque id handed
// out when the flow starts. Wizards idle for longer than ttl are swept, so
// abandoned flows do not accumulate.
type Registry struct {
	mu          sync.Mutex
	submissions *store.SubmissionStore
	ttl         time.Duration
	entries     map[string]*registryEntry
	stopCh      chan struct{}
}

type registryEntry struct {
	wizard  *Wizard
	touched time.Time
}

func NewRegistry(submissions *store.SubmissionStore, ttl time.Duration) *Registry {
	return &Registry{
		submissions: submissions,
		ttl:         ttl,
		entries:     make(map[string]*registryEntry),
		stopCh:      make(chan struct{}),
	}
}

func (r *Registry) Create() (string, *Wizard) {
	id := uuid.NewString()
	w := New(r.submissions)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[id] = &registryEntry{wizard: w, touched: time.Now()}
	return id, w
}

// Get returns the live wizard for id, refreshing its idle timer.
func (r *Registry) Get(id string) *Wizard {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return nil
	}
	e.touched = time.Now()
	return e.wizard
}

func (r *Registry) Clear(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
}

// Start launches the idle sweep loop; a non-positive ttl disables sweeping.
func (r *Registry) Start() {
	if r.ttl <= 0 {
		return
	}
	go r.loop()
	log.Printf("[WizardRegistry] sweep started (ttl %s)", r.ttl)
}

func (r *Registry) Stop() {
	close(r.stopCh)
}

func (r *Registry) loop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-r.stopCh:
			return
		case <-ticker.C:
			r.sweep(time.Now())
		}
	}
}

func (r *Registry) sweep(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, e := range r.entries {
		if now.Sub(e.touched) > r.ttl {
			delete(r.entries, id)
		}
	}
}
