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

type StudentStore struct {
	svc     *backend.Service
	storage session.Storage

	mu            sync.RWMutex
	user          *models.StudentUser
	authenticated bool
	loading       bool
	err           string
}

func NewStudentStore(svc *backend.Service, storage session.Storage) *StudentStore {
	return &StudentStore{svc: svc, storage: storage}
}

func (s *StudentStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

func (s *StudentStore) User() *models.StudentUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *StudentStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *StudentStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *StudentStore) Login(email, password string) (bool, error) {
	s.setLoading()
	token, user, err := s.svc.StudentLogin(email, password)
	return s.finishAuth(token, user, err)
}

func (s *StudentStore) Register(reg backend.StudentRegistration) (bool, error) {
	s.setLoading()
	token, user, err := s.svc.StudentRegister(reg)
	return s.finishAuth(token, user, err)
}

func (s *StudentStore) setLoading() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *StudentStore) finishAuth(token string, user models.StudentUser, err error) (bool, error) {
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
	s.user = &user
	s.authenticated = true
	s.loading = false
	s.err = ""
	s.mu.Unlock()

	snapshot, _ := json.Marshal(user)
	s.storage.Set(session.KeyStudentToken, token)
	s.storage.Set(session.KeyStudentUser, string(snapshot))
	return true, nil
}

func (s *StudentStore) Logout() {
	s.mu.Lock()
	s.user = nil
	s.authenticated = false
	s.mu.Unlock()

	s.storage.Delete(session.KeyStudentToken)
	s.storage.Delete(session.KeyStudentUser)
}

func (s *StudentStore) InitializeAuth() {
	token, hasToken := s.storage.Get(session.KeyStudentToken)
	snapshot, hasSnapshot := s.storage.Get(session.KeyStudentUser)
	if !hasToken || !hasSnapshot || token == "" {
		return
	}

	var user models.StudentUser
	if err := json.Unmarshal([]byte(snapshot), &user); err != nil {
		s.storage.Delete(session.KeyStudentToken)
		s.storage.Delete(session.KeyStudentUser)
		return
	}

	s.mu.Lock()
	s.user = &user
	s.authenticated = true
	s.mu.Unlock()
}

// UpdateProfile pushes the edit to the backend and persists the refreshed
// snapshot on success.
func (s *StudentStore) UpdateProfile(update backend.StudentProfileUpdate) bool {
	s.mu.RLock()
	user := s.user
	s.mu.RUnlock()
	if user == nil {
		return false
	}

	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	updated, err := s.svc.UpdateStudentProfile(user.ID, update)
	if err != nil {
		s.mu.Lock()
		s.loading = false
		s.err = "Failed to update profile"
		s.mu.Unlock()
		return false
	}

	merged := *user
	merged.Name = updated.Name
	merged.Year = updated.Year
	merged.Branch = updated.Branch
	merged.Bio = updated.Bio
	merged.Skills = updated.Skills

	s.mu.Lock()
	s.user = &merged
	s.loading = false
	s.err = ""
	s.mu.Unlock()

	snapshot, _ := json.Marshal(merged)
	s.storage.Set(session.KeyStudentUser, string(snapshot))
	return true
}

// Search never surfaces transport errors; a failed lookup is an empty result.
func (s *StudentStore) Search(year, branch, skills string) []models.StudentUser {
	results, err := s.svc.SearchStudents(year, branch, skills)
	if err != nil {
		return []models.StudentUser{}
	}
	return results
}
