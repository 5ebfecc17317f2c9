package wizard

import (
	"strconv"
	"strings"
	"sync"

	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/metrics"
	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/models"
	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/store"
)

type Step int

const (
	StepHackathon Step = iota
	StepTeam
	StepParticipants
	StepMentors
	StepReview
)

// Row caps bound the resize allocations. Declared counts outside these caps
// are kept as entered so validation can reject them, but never drive the
// backing array past the cap.
const (
	maxParticipantRows = 10
	maxMentorRows      = 5
)

func (s Step) String() string {
	switch s {
	case StepHackathon:
		return "hackathon"
	case StepTeam:
		return "team"
	case StepParticipants:
		return "participants"
	case StepMentors:
		return "mentors"
	case StepReview:
		return "review"
	default:
		return "unknown"
	}
}

// Wizard drives the linear participation flow: hackathon selection, team
// details, participants, mentors, review. Forward transitions are gated by
// per-step validation; Previous never validates. The machine is purely local
// until Submit hands the assembled draft to the submission store. All methods
// are safe for concurrent use.
type Wizard struct {
	submissions *store.SubmissionStore

	mu               sync.Mutex
	step             Step
	hackathonID      string
	teamName         string
	participantCount int
	participants     []models.Participant
	hasMentor        bool
	mentorCount      int
	mentors          []models.Mentor
	confirmed        bool
	errors           map[string]string
}

func New(submissions *store.SubmissionStore) *Wizard {
	w := &Wizard{
		submissions:      submissions,
		participantCount: 1,
		errors:           map[string]string{},
	}
	w.syncParticipants()
	return w
}

func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

func (w *Wizard) Errors() map[string]string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make(map[string]string, len(w.errors))
	for k, v := range w.errors {
		out[k] = v
	}
	return out
}

func (w *Wizard) HackathonID() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.hackathonID
}

func (w *Wizard) TeamName() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.teamName
}

func (w *Wizard) ParticipantCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.participantCount
}

func (w *Wizard) HasMentor() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.hasMentor
}

func (w *Wizard) MentorCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.mentorCount
}

func (w *Wizard) Confirmed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.confirmed
}

func (w *Wizard) Participants() []models.Participant {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cloneParticipants()
}

func (w *Wizard) Mentors() []models.Mentor {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cloneMentors()
}

func (w *Wizard) cloneParticipants() []models.Participant {
	out := make([]models.Participant, len(w.participants))
	copy(out, w.participants)
	return out
}

func (w *Wizard) cloneMentors() []models.Mentor {
	out := make([]models.Mentor, len(w.mentors))
	copy(out, w.mentors)
	return out
}

func (w *Wizard) SelectHackathon(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.hackathonID = id
}

func (w *Wizard) SetTeamName(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.teamName = name
}

// SetParticipantCount resizes the participant rows, preserving everything
// already entered at matching indices and default-filling new slots.
func (w *Wizard) SetParticipantCount(n int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.participantCount = n
	w.syncParticipants()
}

func (w *Wizard) SetParticipant(i int, p models.Participant) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i < 0 || i >= len(w.participants) {
		return false
	}
	w.participants[i] = p
	return true
}

// SetMentorship toggles mentor rows; enabling with no mentors yet seeds a
// single row.
func (w *Wizard) SetMentorship(enabled bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.hasMentor = enabled
	if enabled && w.mentorCount == 0 {
		w.mentorCount = 1
	}
	w.syncMentors()
}

func (w *Wizard) SetMentorCount(n int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.mentorCount = n
	w.syncMentors()
}

func (w *Wizard) SetMentor(i int, m models.Mentor) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i < 0 || i >= len(w.mentors) {
		return false
	}
	w.mentors[i] = m
	return true
}

func (w *Wizard) SetConfirmed(confirmed bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.confirmed = confirmed
}

func clampRows(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}

func (w *Wizard) syncParticipants() {
	rows := clampRows(w.participantCount, maxParticipantRows)
	if len(w.participants) == rows {
		return
	}
	next := make([]models.Participant, rows)
	for i := 0; i < rows; i++ {
		if i < len(w.participants) {
			next[i] = w.participants[i]
			continue
		}
		next[i] = models.Participant{
			Department:   models.Departments[0],
			AcademicYear: models.AcademicYears[0],
		}
	}
	w.participants = next
}

func (w *Wizard) syncMentors() {
	rows := clampRows(w.mentorCount, maxMentorRows)
	if len(w.mentors) == rows {
		return
	}
	next := make([]models.Mentor, rows)
	for i := 0; i < rows; i++ {
		if i < len(w.mentors) {
			next[i] = w.mentors[i]
			continue
		}
		next[i] = models.Mentor{Department: models.Departments[0]}
	}
	w.mentors = next
}

func (w *Wizard) validate() map[string]string {
	errs := map[string]string{}

	switch w.step {
	case StepHackathon:
		if w.hackathonID == "" {
			errs["hackathon"] = "Please select a hackathon"
		}

	case StepTeam:
		if strings.TrimSpace(w.teamName) == "" {
			errs["teamName"] = "Team name is required"
		}
		if w.participantCount < 1 || w.participantCount > maxParticipantRows {
			errs["participantCount"] = "Participant count must be between 1 and 10"
		}

	case StepParticipants:
		for i, p := range w.participants {
			if strings.TrimSpace(p.FullName) == "" {
				errs["name_"+strconv.Itoa(i)] = "Full name is required"
			}
			if strings.TrimSpace(p.CollegeEmail) == "" {
				errs["email_"+strconv.Itoa(i)] = "College email is required"
			}
		}
		seen := make(map[string]bool, len(w.participants))
		for _, p := range w.participants {
			if seen[p.CollegeEmail] {
				errs["duplicateEmail"] = "Duplicate email addresses found"
				break
			}
			seen[p.CollegeEmail] = true
		}

	case StepMentors:
		if w.hasMentor {
			if w.mentorCount < 1 || w.mentorCount > maxMentorRows {
				errs["mentorCount"] = "Mentor count must be between 1 and 5"
			}
			for i, m := range w.mentors {
				if strings.TrimSpace(m.Name) == "" {
					errs["mentorName_"+strconv.Itoa(i)] = "Mentor name is required"
				}
			}
		}

	case StepReview:
		if !w.confirmed {
			errs["confirmed"] = "You must confirm external registration"
		}
	}

	return errs
}

// Next advances one step when the current step validates; it reports whether
// the transition happened. The review step advances only through Submit.
func (w *Wizard) Next() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.errors = w.validate()
	if len(w.errors) > 0 {
		return false
	}
	if w.step < StepReview {
		w.step++
		return true
	}
	return false
}

// Previous always steps back without validating.
func (w *Wizard) Previous() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step > StepHackathon {
		w.step--
	}
}

// Submit runs the review guard and hands the assembled draft to the
// submission store. On failure the machine stays in Review with the error
// surfaced under "submit". The lock is held across the store call, so
// concurrent submits on one wizard serialize.
func (w *Wizard) Submit() (models.SubmitResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepReview {
		w.errors = map[string]string{"submit": "Review the submission before submitting"}
		return models.SubmitResult{}, errInvalidStep
	}
	w.errors = w.validate()
	if len(w.errors) > 0 {
		return models.SubmitResult{}, errValidation
	}

	mentors := []models.Mentor{}
	if w.hasMentor {
		mentors = w.cloneMentors()
	}
	draft := models.SubmissionDraft{
		HackathonID:       w.hackathonID,
		TeamName:          w.teamName,
		Participants:      w.cloneParticipants(),
		Mentors:           mentors,
		ExternalConfirmed: true,
	}

	result, err := w.submissions.Create(draft)
	if err != nil {
		w.errors = map[string]string{"submit": err.Error()}
		return models.SubmitResult{}, err
	}

	metrics.WizardSubmissions.Inc()
	return result, nil
}
