package models

type AdminUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type StudentUser struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Year   int      `json:"year"`
	Branch string   `json:"branch"`
	Bio    string   `json:"bio,omitempty"`
	Skills []string `json:"skills,omitempty"`
}

type DashboardMetrics struct {
	TotalHackathons  int `json:"totalHackathons"`
	TotalSubmissions int `json:"totalSubmissions"`
	TotalStudents    int `json:"totalStudents"`
	TotalMentors     int `json:"totalMentors"`
}
