package models

type SubmissionStatus string

const (
	SubmissionSubmitted SubmissionStatus = "submitted"
	SubmissionVerified  SubmissionStatus = "verified"
	SubmissionArchived  SubmissionStatus = "archived"
)

// Departments is the institution-defined department list used for participant
// and mentor rows.
var Departments = []string{
	"Computer Science and Engineering",
	"Electronics and Communication Engineering",
	"Electrical and Electronics Engineering",
	"Mechanical Engineering",
	"Civil Engineering",
	"Chemical Engineering",
	"Automobile Engineering",
	"Biomedical Engineering",
	"Information Technology",
	"Artificial Intelligence and Data Science",
	"Information and Communication Technology",
}

// AcademicYears lists the four valid participant year values.
var AcademicYears = []string{"First Year", "Second Year", "Third Year", "Fourth Year"}

func IsValidDepartment(dept string) bool {
	for _, d := range Departments {
		if d == dept {
			return true
		}
	}
	return false
}

type Participant struct {
	FullName     string `json:"fullName"`
	CollegeEmail string `json:"collegeEmail"`
	Department   string `json:"department"`
	AcademicYear string `json:"academicYear"`
}

type Mentor struct {
	Name       string `json:"name"`
	Department string `json:"department"`
}

// Submission in list view carries the denormalized counts with empty
// participant/mentor lists; only a detail fetch fills them in.
type Submission struct {
	ID                string           `json:"id"`
	HackathonID       string           `json:"hackathonId"`
	HackathonName     string           `json:"hackathonName,omitempty"`
	TeamName          string           `json:"teamName"`
	ParticipantCount  int              `json:"participantCount"`
	MentorCount       int              `json:"mentorCount"`
	Participants      []Participant    `json:"participants"`
	Mentors           []Mentor         `json:"mentors"`
	ExternalConfirmed bool             `json:"externalConfirmed"`
	Status            SubmissionStatus `json:"status"`
	SubmittedAt       string           `json:"submittedAt"`
}

// SubmissionDraft is the payload the wizard hands to the submission store on
// its terminal step.
type SubmissionDraft struct {
	HackathonID       string        `json:"hackathonId"`
	TeamName          string        `json:"teamName"`
	Participants      []Participant `json:"participants"`
	Mentors           []Mentor      `json:"mentors"`
	ExternalConfirmed bool          `json:"externalConfirmed"`
}

type SubmitResult struct {
	SubmissionID string `json:"submission_id"`
	Status       string `json:"status"`
}
