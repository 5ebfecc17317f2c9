package store

import (
	"sync"

	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/backend"
	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/metrics"
	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/models"
)

// HackathonStore caches the hackathon collection. Overlapping mutations for
// the same id are not serialized here; callers gate on IsLoading.
type HackathonStore struct {
	notifier
	svc *backend.Service

	mu      sync.RWMutex
	items   []models.Hackathon
	loading bool
	err     string
}

func NewHackathonStore(svc *backend.Service) *HackathonStore {
	return &HackathonStore{svc: svc}
}

func (s *HackathonStore) Items() []models.Hackathon {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Hackathon, len(s.items))
	copy(out, s.items)
	return out
}

func (s *HackathonStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *HackathonStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// FetchAll replaces the cached collection wholesale. Failures are recorded in
// the error field, never returned.
func (s *HackathonStore) FetchAll() {
	s.setLoading()

	items, err := s.svc.Hackathons(1, 100)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.err = err.Error()
		s.mu.Unlock()
		return
	}
	s.items = items
	s.err = ""
	s.mu.Unlock()

	metrics.StoreRefreshes.Inc()
	s.publish(Event{Entity: "hackathons", Op: "refresh"})
}

// GetByID answers from the cache when possible; a miss falls through to a
// single-entity fetch without inserting the result into the cache.
func (s *HackathonStore) GetByID(id string) *models.Hackathon {
	s.mu.RLock()
	for i := range s.items {
		if s.items[i].ID == id {
			h := s.items[i]
			s.mu.RUnlock()
			return &h
		}
	}
	s.mu.RUnlock()

	h, err := s.svc.HackathonByID(id)
	if err != nil {
		return nil
	}
	return &h
}

func (s *HackathonStore) GetBySlug(slug string) *models.Hackathon {
	s.mu.RLock()
	for i := range s.items {
		if s.items[i].Slug == slug {
			h := s.items[i]
			s.mu.RUnlock()
			return &h
		}
	}
	s.mu.RUnlock()

	h, err := s.svc.HackathonBySlug(slug)
	if err != nil {
		return nil
	}
	return &h
}

// Create posts the draft and then refetches the whole collection: the server
// is the source of truth, so reconciliation beats optimistic insertion.
func (s *HackathonStore) Create(d models.HackathonDraft) (models.Hackathon, error) {
	s.setLoading()

	created, err := s.svc.CreateHackathon(d)
	if err != nil {
		s.setError(err)
		return models.Hackathon{}, err
	}

	s.clearLoading()
	s.FetchAll()
	s.publish(Event{Entity: "hackathons", Op: "create", ID: created.ID})
	return created, nil
}

// Update patches the matching cached item in place; the rest of the
// collection is left untouched.
func (s *HackathonStore) Update(id string, d models.HackathonDraft) (models.Hackathon, error) {
	s.setLoading()

	updated, err := s.svc.UpdateHackathon(id, d)
	if err != nil {
		s.setError(err)
		return models.Hackathon{}, err
	}

	s.replace(id, updated)
	s.publish(Event{Entity: "hackathons", Op: "update", ID: id})
	return updated, nil
}

func (s *HackathonStore) UpdateStatus(id string, status models.HackathonStatus) (models.Hackathon, error) {
	s.setLoading()

	updated, err := s.svc.UpdateHackathonStatus(id, status)
	if err != nil {
		s.setError(err)
		return models.Hackathon{}, err
	}

	s.replace(id, updated)
	s.publish(Event{Entity: "hackathons", Op: "update", ID: id})
	return updated, nil
}

// Delete removes the entity from the cache by identity. Deleting an entity
// the cache never held is still a success.
func (s *HackathonStore) Delete(id string) error {
	s.setLoading()

	if err := s.svc.DeleteHackathon(id); err != nil {
		s.setError(err)
		return err
	}

	s.mu.Lock()
	s.loading = false
	s.err = ""
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.publish(Event{Entity: "hackathons", Op: "delete", ID: id})
	return nil
}

func (s *HackathonStore) setLoading() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *HackathonStore) clearLoading() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *HackathonStore) setError(err error) {
	s.mu.Lock()
	s.loading = false
	s.err = err.Error()
	s.mu.Unlock()
}

func (s *HackathonStore) replace(id string, item models.Hackathon) {
	s.mu.Lock()
	s.loading = false
	s.err = ""
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i] = item
			break
		}
	}
	s.mu.Unlock()
}
