package models

type HackathonMode string

const (
	ModeOnline  HackathonMode = "ONLINE"
	ModeOffline HackathonMode = "OFFLINE"
)

type HackathonStatus string

const (
	StatusUpcoming HackathonStatus = "UPCOMING"
	StatusOngoing  HackathonStatus = "ONGOING"
	StatusClosed   HackathonStatus = "CLOSED"
)

// Hackathon is the client-side shape consumed by the UI. The slug is derived
// from the name at map time and stays stable across renames.
type Hackathon struct {
	ID                   string          `json:"id"`
	Slug                 string          `json:"slug"`
	Name                 string          `json:"name"`
	Organizer            string          `json:"organizer"`
	Description          string          `json:"description"`
	Mode                 HackathonMode   `json:"mode"`
	Location             string          `json:"location,omitempty"`
	StartDate            string          `json:"startDate"`
	EndDate              string          `json:"endDate"`
	RegistrationDeadline string          `json:"registrationDeadline"`
	OfficialLink         string          `json:"officialLink"`
	Eligibility          string          `json:"eligibility"`
	Semester             string          `json:"semester"`
	Status               HackathonStatus `json:"status"`
	CreatedAt            string          `json:"createdAt"`
	UpdatedAt            string          `json:"updatedAt"`
}

// HackathonDraft holds the fields an admin fills in when creating or editing
// a hackathon.
type HackathonDraft struct {
	Name                 string          `json:"name"`
	Organizer            string          `json:"organizer"`
	Description          string          `json:"description"`
	Mode                 HackathonMode   `json:"mode"`
	Location             string          `json:"location,omitempty"`
	StartDate            string          `json:"startDate"`
	EndDate              string          `json:"endDate"`
	RegistrationDeadline string          `json:"registrationDeadline"`
	OfficialLink         string          `json:"officialLink"`
	Eligibility          string          `json:"eligibility"`
	Semester             string          `json:"semester"`
	Status               HackathonStatus `json:"status"`
}
