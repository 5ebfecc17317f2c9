package store

import (
	"sync"

	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/backend"
	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/metrics"
	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/models"
)

// SubmissionStore caches participation records. List entries are summaries:
// counts are populated but the participant/mentor lists stay empty until a
// detail fetch, so callers needing rows must use GetDetail.
type SubmissionStore struct {
	notifier
	svc *backend.Service

	mu      sync.RWMutex
	items   []models.Submission
	loading bool
	err     string
}

func NewSubmissionStore(svc *backend.Service) *SubmissionStore {
	return &SubmissionStore{svc: svc}
}

func (s *SubmissionStore) Items() []models.Submission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Submission, len(s.items))
	copy(out, s.items)
	return out
}

func (s *SubmissionStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *SubmissionStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *SubmissionStore) FetchAll() {
	s.setLoading()

	items, err := s.svc.Submissions(nil)

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
	s.publish(Event{Entity: "submissions", Op: "refresh"})
}

// GetByID is cache-first and may return a summary record. Use GetDetail when
// the participant and mentor lists are needed.
func (s *SubmissionStore) GetByID(id string) *models.Submission {
	s.mu.RLock()
	for i := range s.items {
		if s.items[i].ID == id {
			sub := s.items[i]
			s.mu.RUnlock()
			return &sub
		}
	}
	s.mu.RUnlock()

	sub, err := s.svc.SubmissionDetail(id)
	if err != nil {
		return nil
	}
	return &sub
}

// GetDetail always fetches the detail-expanded record.
func (s *SubmissionStore) GetDetail(id string) *models.Submission {
	sub, err := s.svc.SubmissionDetail(id)
	if err != nil {
		return nil
	}
	return &sub
}

func (s *SubmissionStore) ByHackathon(hackathonID string) []models.Submission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Submission
	for _, sub := range s.items {
		if sub.HackathonID == hackathonID {
			out = append(out, sub)
		}
	}
	return out
}

// Create posts a new participation record and reconciles by refetching the
// whole collection. This is the wizard's terminal action.
func (s *SubmissionStore) Create(d models.SubmissionDraft) (models.SubmitResult, error) {
	s.setLoading()

	result, err := s.svc.SubmitParticipation(d)
	if err != nil {
		s.setError(err)
		return models.SubmitResult{}, err
	}

	s.clearLoading()
	s.FetchAll()
	s.publish(Event{Entity: "submissions", Op: "create", ID: result.SubmissionID})
	return result, nil
}

func (s *SubmissionStore) UpdateStatus(id string, status models.SubmissionStatus) error {
	s.setLoading()

	if err := s.svc.UpdateSubmissionStatus(id, status); err != nil {
		s.setError(err)
		return err
	}

	s.mu.Lock()
	s.loading = false
	s.err = ""
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Status = status
			break
		}
	}
	s.mu.Unlock()

	s.publish(Event{Entity: "submissions", Op: "update", ID: id})
	return nil
}

func (s *SubmissionStore) Delete(id string) error {
	s.setLoading()

	if err := s.svc.DeleteSubmission(id); err != nil {
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

	s.publish(Event{Entity: "submissions", Op: "delete", ID: id})
	return nil
}

// TotalStudents counts distinct participant emails across cached submissions
// that carry detail rows.
func (s *SubmissionStore) TotalStudents() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	emails := make(map[string]struct{})
	for _, sub := range s.items {
		for _, p := range sub.Participants {
			emails[p.CollegeEmail] = struct{}{}
		}
	}
	return len(emails)
}

func (s *SubmissionStore) TotalMentors() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make(map[string]struct{})
	for _, sub := range s.items {
		for _, m := range sub.Mentors {
			names[m.Name] = struct{}{}
		}
	}
	return len(names)
}

func (s *SubmissionStore) setLoading() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *SubmissionStore) clearLoading() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *SubmissionStore) setError(err error) {
	s.mu.Lock()
	s.loading = false
	s.err = err.Error()
	s.mu.Unlock()
}
