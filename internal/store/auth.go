package store

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/api"
	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/backend"
	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/models"
	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/session"
)

// AdminAuthStore holds the admin session: a bearer token plus a minimal
// profile snapshot, both persisted so a restart can rehydrate them.
type AdminAuthStore struct {
	svc     *backend.Service
	storage session.Storage

	mu            sync.RWMutex
	authenticated bool
	admin         models.AdminUser
	loading       bool
	err           string
}

func NewAdminAuthStore(svc *backend.Service, storage session.Storage) *AdminAuthStore {
	return &AdminAuthStore{svc: svc, storage: storage}
}

func (s *AdminAuthStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

func (s *AdminAuthStore) Admin() models.AdminUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.admin
}

func (s *AdminAuthStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *AdminAuthStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Login returns false for rejected credentials and an error only for
// transport-level failures.
func (s *AdminAuthStore) Login(email, password string) (bool, error) {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	token, admin, err := s.svc.AdminLogin(email, password)
	if err != nil {
		s.mu.Lock()
		s.loading = false
		s.err = err.Error()
		s.mu.Unlock()

		var reqErr *api.RequestError
		if errors.As(err, &reqErr) {
			return false, nil
		}
		return false, err
	}

	s.mu.Lock()
	s.authenticated = true
	s.admin = admin
	s.loading = false
	s.mu.Unlock()

	snapshot, _ := json.Marshal(admin)
	s.storage.Set(session.KeyAdminToken, token)
	s.storage.Set(session.KeyAdminAuth, string(snapshot))
	return true, nil
}

func (s *AdminAuthStore) Logout() {
	s.mu.Lock()
	s.authenticated = false
	s.admin = models.AdminUser{}
	s.mu.Unlock()

	s.storage.Delete(session.KeyAdminToken)
	s.storage.Delete(session.KeyAdminAuth)
}

// InitializeAuth rehydrates the session from durable storage. Corrupt or
// partial persisted state is discarded and treated as logged out.
func (s *AdminAuthStore) InitializeAuth() {
	token, hasToken := s.storage.Get(session.KeyAdminToken)
	snapshot, hasSnapshot := s.storage.Get(session.KeyAdminAuth)
	if !hasToken || !hasSnapshot || token == "" {
		return
	}

	var admin models.AdminUser
	if err := json.Unmarshal([]byte(snapshot), &admin); err != nil {
		s.storage.Delete(session.KeyAdminToken)
		s.storage.Delete(session.KeyAdminAuth)
		return
	}

	s.mu.Lock()
	s.authenticated = true
	s.admin = admin
	s.mu.Unlock()
}

// Metrics proxies the dashboard aggregate counts.
func (s *AdminAuthStore) Metrics() (models.DashboardMetrics, error) {
	return s.svc.Metrics()
}

// Export proxies the backend blob export.
func (s *AdminAuthStore) Export(filters map[string]string) ([]byte, string, error) {
	return s.svc.Export(filters)
}
