package backend

// Wire records mirror the backend's JSON exactly (snake_case fields, backend
// enumeration vocabulary). They never leak past the mapper.

type wireHackathon struct {
	ID                       string `json:"id"`
	Name                     string `json:"name"`
	Organizer                string `json:"organizer"`
	Description              string `json:"description"`
	Mode                     string `json:"mode"`
	Location                 string `json:"location"`
	StartDate                string `json:"start_date"`
	EndDate                  string `json:"end_date"`
	RegistrationDeadline     string `json:"registration_deadline"`
	OfficialRegistrationLink string `json:"official_registration_link"`
	Eligibility              string `json:"eligibility"`
	Status                   string `json:"status"`
	Semester                 string `json:"semester"`
	CreatedAt                string `json:"created_at"`
	UpdatedAt                string `json:"updated_at"`
}

type wireBlogPost struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Slug             string `json:"slug"`
	Summary          string `json:"summary"`
	Content          string `json:"content"`
	Category         string `json:"category"`
	Author           string `json:"author"`
	RelatedHackathon string `json:"related_hackathon"`
	Status           string `json:"status"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

type wireSubmission struct {
	ID                            string `json:"id"`
	HackathonID                   string `json:"hackathon_id"`
	HackathonName                 string `json:"hackathon_name"`
	TeamName                      string `json:"team_name"`
	ParticipantCount              int    `json:"participant_count"`
	MentorCount                   int    `json:"mentor_count"`
	ExternalRegistrationConfirmed bool   `json:"external_registration_confirmed"`
	Status                        string `json:"status"`
	CreatedAt                     string `json:"created_at"`
}

type wireParticipant struct {
	ID           string `json:"id"`
	SubmissionID string `json:"submission_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Department   string `json:"department"`
	AcademicYear string `json:"academic_year"`
}

type wireMentor struct {
	ID           string `json:"id"`
	SubmissionID string `json:"submission_id"`
	Name         string `json:"name"`
	Department   string `json:"department"`
}

type wireSubmissionDetail struct {
	Submission   wireSubmission    `json:"submission"`
	Participants []wireParticipant `json:"participants"`
	Mentors      []wireMentor      `json:"mentors"`
}

type wireStudent struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Year   int      `json:"year"`
	Branch string   `json:"branch"`
	Bio    string   `json:"bio"`
	Skills []string `json:"skills"`
}

type wireMetrics struct {
	TotalHackathons  int `json:"total_hackathons"`
	TotalSubmissions int `json:"total_submissions"`
	TotalStudents    int `json:"total_students"`
	TotalMentors     int `json:"total_mentors"`
}

type adminLoginResponse struct {
	Token string `json:"token"`
	Admin struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"admin"`
}

type studentAuthResponse struct {
	Token   string      `json:"token"`
	Student wireStudent `json:"student"`
}
