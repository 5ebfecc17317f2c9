package wizard

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/backend"
	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/models"
	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/session"
	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/store"
)

func newSubmissionStore(t *testing.T, handler http.Handler) *store.SubmissionStore {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return store.NewSubmissionStore(backend.NewService(srv.URL, session.NewMemory()))
}

func fillParticipants(w *Wizard) {
	w.SetParticipant(0, models.Participant{
		FullName:     "Asha",
		CollegeEmail: "asha@college.edu",
		Department:   models.Departments[0],
		AcademicYear: models.AcademicYears[0],
	})
}

// readyWizard walks a wizard to the review step with valid data.
func readyWizard(t *testing.T, submissions *store.SubmissionStore) *Wizard {
	t.Helper()
	w := New(submissions)
	w.SelectHackathon("h1")
	require.True(t, w.Next())
	w.SetTeamName("Byte Club")
	require.True(t, w.Next())
	fillParticipants(w)
	require.True(t, w.Next())
	require.True(t, w.Next(), "mentors step passes when mentorship is off")
	require.Equal(t, StepReview, w.Step())
	return w
}

func TestNextRequiresHackathonSelection(t *testing.T) {
	w := New(nil)
	assert.False(t, w.Next())
	assert.Equal(t, "Please select a hackathon", w.Errors()["hackathon"])
	assert.Equal(t, StepHackathon, w.Step())

	w.SelectHackathon("h1")
	assert.True(t, w.Next())
	assert.Empty(t, w.Errors())
}

func TestTeamStepValidation(t *testing.T) {
	w := New(nil)
	w.SelectHackathon("h1")
	require.True(t, w.Next())

	w.SetTeamName("   ")
	w.SetParticipantCount(11)
	assert.False(t, w.Next())
	errs := w.Errors()
	assert.Equal(t, "Team name is required", errs["teamName"])
	assert.Equal(t, "Participant count must be between 1 and 10", errs["participantCount"])
}

func TestParticipantStepValidation(t *testing.T) {
	w := New(nil)
	w.SelectHackathon("h1")
	require.True(t, w.Next())
	w.SetTeamName("Byte Club")
	w.SetParticipantCount(2)
	require.True(t, w.Next())

	assert.False(t, w.Next())
	errs := w.Errors()
	assert.Equal(t, "Full name is required", errs["name_0"])
	assert.Equal(t, "College email is required", errs["email_1"])
}

func TestDuplicateEmailDetected(t *testing.T) {
	w := New(nil)
	w.SelectHackathon("h1")
	require.True(t, w.Next())
	w.SetTeamName("Byte Club")
	w.SetParticipantCount(2)
	require.True(t, w.Next())

	w.SetParticipant(0, models.Participant{FullName: "Asha", CollegeEmail: "same@college.edu"})
	w.SetParticipant(1, models.Participant{FullName: "Ravi", CollegeEmail: "same@college.edu"})
	assert.False(t, w.Next())
	assert.Equal(t, "Duplicate email addresses found", w.Errors()["duplicateEmail"])
}

func TestParticipantResizePreservesPrefix(t *testing.T) {
	w := New(nil)
	w.SetParticipantCount(3)
	w.SetParticipant(0, models.Participant{FullName: "Asha", CollegeEmail: "asha@college.edu"})
	w.SetParticipant(1, models.Participant{FullName: "Ravi", CollegeEmail: "ravi@college.edu"})

	w.SetParticipantCount(2)
	parts := w.Participants()
	require.Len(t, parts, 2)
	assert.Equal(t, "Asha", parts[0].FullName)
	assert.Equal(t, "Ravi", parts[1].FullName)

	w.SetParticipantCount(4)
	parts = w.Participants()
	require.Len(t, parts, 4)
	assert.Equal(t, "Asha", parts[0].FullName, "growing keeps entered rows")
	assert.Equal(t, models.Departments[0], parts[2].Department, "new rows get the default department")
	assert.Equal(t, models.AcademicYears[0], parts[2].AcademicYear)
}

func TestMentorshipSeedsOneRow(t *testing.T) {
	w := New(nil)
	assert.Empty(t, w.Mentors())

	w.SetMentorship(true)
	require.Len(t, w.Mentors(), 1)
	assert.Equal(t, models.Departments[0], w.Mentors()[0].Department)

	w.SetMentorship(false)
	w.SetMentorship(true)
	assert.Equal(t, 1, w.MentorCount(), "re-enabling keeps the existing count")
}

func TestMentorStepValidation(t *testing.T) {
	w := New(nil)
	w.SelectHackathon("h1")
	require.True(t, w.Next())
	w.SetTeamName("Byte Club")
	require.True(t, w.Next())
	fillParticipants(w)
	require.True(t, w.Next())

	w.SetMentorship(true)
	assert.False(t, w.Next())
	assert.Equal(t, "Mentor name is required", w.Errors()["mentorName_0"])

	w.SetMentor(0, models.Mentor{Name: "Dr. Rao", Department: models.Departments[0]})
	assert.True(t, w.Next())
}

func TestPreviousNeverValidates(t *testing.T) {
	w := New(nil)
	w.SelectHackathon("h1")
	require.True(t, w.Next())
	w.SetTeamName("")

	w.Previous()
	assert.Equal(t, StepHackathon, w.Step())

	w.Previous()
	assert.Equal(t, StepHackathon, w.Step(), "stepping back from the first step is a no-op")
}

func TestSubmitOnlyFromReview(t *testing.T) {
	w := New(nil)
	_, err := w.Submit()
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.NotEmpty(t, w.Errors()["submit"])
}

func TestSubmitRequiresConfirmation(t *testing.T) {
	w := readyWizard(t, nil)

	_, err := w.Submit()
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Equal(t, "You must confirm external registration", w.Errors()["confirmed"])
}

func TestSubmitPayload(t *testing.T) {
	var captured map[string]interface{}
	mux := http.NewServeMux()
	mux.HandleFunc("/submit", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &captured))
		w.Write([]byte(`{"submission_id":"s1","status":"submitted"}`))
	})
	mux.HandleFunc("/admin/submissions", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	submissions := newSubmissionStore(t, mux)
	w := readyWizard(t, submissions)
	w.SetConfirmed(true)

	result, err := w.Submit()
	require.NoError(t, err)
	assert.Equal(t, "s1", result.SubmissionID)

	require.NotNil(t, captured)
	assert.Equal(t, "h1", captured["hackathon_id"])
	assert.Equal(t, "Byte Club", captured["team_name"])
	assert.Equal(t, true, captured["external_registration_confirmed"])

	participants, ok := captured["participants"].([]interface{})
	require.True(t, ok)
	require.Len(t, participants, 1)
	first := participants[0].(map[string]interface{})
	assert.Equal(t, "Asha", first["name"])
	assert.Equal(t, "asha@college.edu", first["email"])

	mentors, ok := captured["mentors"].([]interface{})
	require.True(t, ok, "mentors is an empty list, never null, when mentorship is off")
	assert.Empty(t, mentors)
}

func TestSubmitTransportErrorSurfacedUnderSubmitKey(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/submit", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"message":"backend unavailable"}`))
	})

	submissions := newSubmissionStore(t, mux)
	w := readyWizard(t, submissions)
	w.SetConfirmed(true)

	_, err := w.Submit()
	require.Error(t, err)
	assert.False(t, IsValidation(err))
	assert.Equal(t, "backend unavailable", w.Errors()["submit"])
	assert.Equal(t, StepReview, w.Step(), "the machine stays in review after a failed submit")
}

func TestRowCountsClamped(t *testing.T) {
	w := New(nil)

	w.SetParticipantCount(-1)
	assert.Empty(t, w.Participants(), "negative count yields no rows")

	w.SetParticipantCount(1 << 30)
	assert.Len(t, w.Participants(), 10, "row allocation is capped")

	w.SetMentorship(true)
	w.SetMentorCount(-3)
	assert.Empty(t, w.Mentors())
	w.SetMentorCount(200)
	assert.Len(t, w.Mentors(), 5)
}

func TestOutOfRangeCountsStillFailValidation(t *testing.T) {
	w := New(nil)
	w.SelectHackathon("h1")
	require.True(t, w.Next())
	w.SetTeamName("Byte Club")
	w.SetParticipantCount(1 << 30)

	assert.False(t, w.Next())
	assert.Equal(t, "Participant count must be between 1 and 10", w.Errors()["participantCount"])

	w.SetParticipantCount(-1)
	assert.False(t, w.Next())
	assert.NotEmpty(t, w.Errors()["participantCount"])
}

func TestMentorCountRangeValidated(t *testing.T) {
	w := New(nil)
	w.SelectHackathon("h1")
	require.True(t, w.Next())
	w.SetTeamName("Byte Club")
	require.True(t, w.Next())
	fillParticipants(w)
	require.True(t, w.Next())

	w.SetMentorship(true)
	w.SetMentor(0, models.Mentor{Name: "Dr. Rao", Department: models.Departments[0]})
	w.SetMentorCount(6)
	assert.False(t, w.Next())
	assert.Equal(t, "Mentor count must be between 1 and 5", w.Errors()["mentorCount"])
}

func TestWizardConcurrentAccess(t *testing.T) {
	w := New(nil)
	w.SelectHackathon("h1")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				w.Next()
				_ = w.Errors()
				w.SetTeamName("Byte Club")
				w.SetParticipantCount(j % 12)
				_ = w.Participants()
				w.Previous()
			}
		}()
	}
	wg.Wait()
}

func TestRegistryLifecycle(t *testing.T) {
	r := NewRegistry(nil, time.Minute)

	id, w := r.Create()
	require.NotEmpty(t, id)
	require.NotNil(t, w)
	assert.Same(t, w, r.Get(id))

	id2, _ := r.Create()
	assert.NotEqual(t, id, id2)

	r.Clear(id)
	assert.Nil(t, r.Get(id))
}

func TestRegistrySweepExpiresIdleWizards(t *testing.T) {
	r := NewRegistry(nil, time.Minute)
	stale, _ := r.Create()
	fresh, _ := r.Create()

	r.mu.Lock()
	r.entries[stale].touched = time.Now().Add(-2 * time.Minute)
	r.mu.Unlock()

	r.sweep(time.Now())
	assert.Nil(t, r.Get(stale), "idle wizards are swept after the ttl")
	assert.NotNil(t, r.Get(fresh))
}

func TestRegistryGetRefreshesIdleTimer(t *testing.T) {
	r := NewRegistry(nil, time.Minute)
	id, _ := r.Create()

	r.mu.Lock()
	r.entries[id].touched = time.Now().Add(-50 * time.Second)
	r.mu.Unlock()

	require.NotNil(t, r.Get(id))
	r.sweep(time.Now().Add(30 * time.Second))
	assert.NotNil(t, r.Get(id), "an active wizard is kept alive past the original deadline")
}
