package store

import (
	"sort"
	"sync"

	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/backend"
	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/metrics"
	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/models"
)

type BlogStore struct {
	notifier
	svc *backend.Service

	mu      sync.RWMutex
	items   []models.BlogPost
	loading bool
	err     string
}

func NewBlogStore(svc *backend.Service) *BlogStore {
	return &BlogStore{svc: svc}
}

func (s *BlogStore) Items() []models.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.BlogPost, len(s.items))
	copy(out, s.items)
	return out
}

func (s *BlogStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *BlogStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *BlogStore) FetchAll() {
	s.setLoading()

	items, err := s.svc.BlogPosts(1, 100)

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
	s.publish(Event{Entity: "blog", Op: "refresh"})
}

func (s *BlogStore) GetBySlug(slug string) *models.BlogPost {
	s.mu.RLock()
	for i := range s.items {
		if s.items[i].Slug == slug {
			p := s.items[i]
			s.mu.RUnlock()
			return &p
		}
	}
	s.mu.RUnlock()

	p, err := s.svc.BlogPostBySlug(slug)
	if err != nil {
		return nil
	}
	return &p
}

// Published returns only publicly visible posts.
func (s *BlogStore) Published() []models.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.BlogPost
	for _, p := range s.items {
		if p.Status == models.BlogPublished {
			out = append(out, p)
		}
	}
	return out
}

func (s *BlogStore) ByCategory(category models.BlogCategory) []models.BlogPost {
	var out []models.BlogPost
	for _, p := range s.Published() {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Latest returns the n most recently created published posts. Timestamps are
// ISO 8601, so lexicographic order is chronological.
func (s *BlogStore) Latest(n int) []models.BlogPost {
	posts := s.Published()
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt > posts[j].CreatedAt
	})
	if len(posts) > n {
		posts = posts[:n]
	}
	return posts
}

func (s *BlogStore) Create(d models.BlogPostDraft) (models.BlogPost, error) {
	s.setLoading()

	created, err := s.svc.CreateBlogPost(d)
	if err != nil {
		s.setError(err)
		return models.BlogPost{}, err
	}

	s.clearLoading()
	s.FetchAll()
	s.publish(Event{Entity: "blog", Op: "create", ID: created.ID})
	return created, nil
}

func (s *BlogStore) Update(id string, d models.BlogPostDraft) (models.BlogPost, error) {
	s.setLoading()

	updated, err := s.svc.UpdateBlogPost(id, d)
	if err != nil {
		s.setError(err)
		return models.BlogPost{}, err
	}

	s.mu.Lock()
	s.loading = false
	s.err = ""
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i] = updated
			break
		}
	}
	s.mu.Unlock()

	s.publish(Event{Entity: "blog", Op: "update", ID: id})
	return updated, nil
}

func (s *BlogStore) Delete(id string) error {
	s.setLoading()

	if err := s.svc.DeleteBlogPost(id); err != nil {
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

	s.publish(Event{Entity: "blog", Op: "delete", ID: id})
	return nil
}

func (s *BlogStore) setLoading() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *BlogStore) clearLoading() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *BlogStore) setError(err error) {
	s.mu.Lock()
	s.loading = false
	s.err = err.Error()
	s.mu.Unlock()
}
