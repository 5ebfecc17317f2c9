package backend

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/api"
	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/models"
	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/session"
)

// Service is the typed surface over the backend REST API. Admin-scoped calls
// carry the admin bearer token, student-scoped calls the student token; both
// tokens live in durable session storage.
type Service struct {
	admin      *api.Client
	student    *api.Client
	httpClient *http.Client
}

func NewService(baseURL string, storage session.Storage) *Service {
	return &Service{
		admin:      api.NewClient(baseURL, storage, session.KeyAdminToken),
		student:    api.NewClient(baseURL, storage, session.KeyStudentToken),
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

func pageParams(page, limit int) map[string]string {
	return map[string]string{
		"page":  strconv.Itoa(page),
		"limit": strconv.Itoa(limit),
	}
}

// Hackathons

func (s *Service) Hackathons(page, limit int) ([]models.Hackathon, error) {
	raw, err := s.admin.Get("/hackathons", pageParams(page, limit))
	if err != nil {
		return nil, err
	}
	var wires []wireHackathon
	if err := api.DecodeList(raw, &wires); err != nil {
		return nil, fmt.Errorf("decode hackathons: %w", err)
	}
	out := make([]models.Hackathon, 0, len(wires))
	for _, w := range wires {
		out = append(out, mapHackathon(w))
	}
	return out, nil
}

func (s *Service) HackathonByID(id string) (models.Hackathon, error) {
	return s.fetchHackathon("/hackathons/" + id)
}

func (s *Service) HackathonBySlug(slug string) (models.Hackathon, error) {
	return s.fetchHackathon("/hackathons/slug/" + slug)
}

func (s *Service) fetchHackathon(path string) (models.Hackathon, error) {
	raw, err := s.admin.Get(path, nil)
	if err != nil {
		return models.Hackathon{}, err
	}
	var w wireHackathon
	if err := json.Unmarshal(raw, &w); err != nil {
		return models.Hackathon{}, fmt.Errorf("decode hackathon: %w", err)
	}
	return mapHackathon(w), nil
}

type hackathonPayload struct {
	Name                     string `json:"name"`
	Organizer                string `json:"organizer"`
	Description              string `json:"description"`
	Mode                     string `json:"mode"`
	Location                 string `json:"location,omitempty"`
	StartDate                string `json:"start_date"`
	EndDate                  string `json:"end_date"`
	RegistrationDeadline     string `json:"registration_deadline"`
	OfficialRegistrationLink string `json:"official_registration_link"`
	Eligibility              string `json:"eligibility"`
	Semester                 string `json:"semester"`
	Status                   string `json:"status,omitempty"`
}

func buildHackathonPayload(d models.HackathonDraft, withStatus bool) hackathonPayload {
	p := hackathonPayload{
		Name:                     d.Name,
		Organizer:                d.Organizer,
		Description:              d.Description,
		Mode:                     wireMode(d.Mode),
		Location:                 d.Location,
		StartDate:                d.StartDate,
		EndDate:                  d.EndDate,
		RegistrationDeadline:     d.RegistrationDeadline,
		OfficialRegistrationLink: d.OfficialLink,
		Eligibility:              d.Eligibility,
		Semester:                 d.Semester,
	}
	if withStatus {
		p.Status = wireStatus(d.Status)
	}
	return p
}

func (s *Service) CreateHackathon(d models.HackathonDraft) (models.Hackathon, error) {
	raw, err := s.admin.Post("/admin/hackathons", buildHackathonPayload(d, true))
	if err != nil {
		return models.Hackathon{}, err
	}
	var w wireHackathon
	if err := json.Unmarshal(raw, &w); err != nil {
		return models.Hackathon{}, fmt.Errorf("decode hackathon: %w", err)
	}
	return mapHackathon(w), nil
}

func (s *Service) UpdateHackathon(id string, d models.HackathonDraft) (models.Hackathon, error) {
	raw, err := s.admin.Put("/admin/hackathons/"+id, buildHackathonPayload(d, false))
	if err != nil {
		return models.Hackathon{}, err
	}
	var w wireHackathon
	if err := json.Unmarshal(raw, &w); err != nil {
		return models.Hackathon{}, fmt.Errorf("decode hackathon: %w", err)
	}
	return mapHackathon(w), nil
}

func (s *Service) UpdateHackathonStatus(id string, status models.HackathonStatus) (models.Hackathon, error) {
	body := struct {
		Status string `json:"status"`
	}{Status: wireStatus(status)}
	raw, err := s.admin.Patch("/admin/hackathons/"+id+"/status", body)
	if err != nil {
		return models.Hackathon{}, err
	}
	var w wireHackathon
	if err := json.Unmarshal(raw, &w); err != nil {
		return models.Hackathon{}, fmt.Errorf("decode hackathon: %w", err)
	}
	return mapHackathon(w), nil
}

func (s *Service) DeleteHackathon(id string) error {
	_, err := s.admin.Delete("/admin/hackathons/" + id)
	return err
}

// Blog

func (s *Service) BlogPosts(page, limit int) ([]models.BlogPost, error) {
	raw, err := s.admin.Get("/blog", pageParams(page, limit))
	if err != nil {
		return nil, err
	}
	var wires []wireBlogPost
	if err := api.DecodeList(raw, &wires); err != nil {
		return nil, fmt.Errorf("decode blog posts: %w", err)
	}
	out := make([]models.BlogPost, 0, len(wires))
	for _, w := range wires {
		out = append(out, mapBlogPost(w))
	}
	return out, nil
}

func (s *Service) BlogPostBySlug(slug string) (models.BlogPost, error) {
	raw, err := s.admin.Get("/blog/"+slug, nil)
	if err != nil {
		return models.BlogPost{}, err
	}
	var w wireBlogPost
	if err := json.Unmarshal(raw, &w); err != nil {
		return models.BlogPost{}, fmt.Errorf("decode blog post: %w", err)
	}
	return mapBlogPost(w), nil
}

type blogPayload struct {
	Title            string `json:"title"`
	Summary          string `json:"summary"`
	Content          string `json:"content"`
	Category         string `json:"category"`
	Author           string `json:"author,omitempty"`
	RelatedHackathon string `json:"related_hackathon,omitempty"`
	Status           string `json:"status"`
}

func buildBlogPayload(d models.BlogPostDraft) blogPayload {
	status := "draft"
	if d.Status == models.BlogPublished {
		status = "published"
	}
	return blogPayload{
		Title:            d.Title,
		Summary:          d.Summary,
		Content:          d.Content,
		Category:         strings.ToLower(string(d.Category)),
		Author:           d.Author,
		RelatedHackathon: d.RelatedHackathon,
		Status:           status,
	}
}

func (s *Service) CreateBlogPost(d models.BlogPostDraft) (models.BlogPost, error) {
	raw, err := s.admin.Post("/admin/blog", buildBlogPayload(d))
	if err != nil {
		return models.BlogPost{}, err
	}
	var w wireBlogPost
	if err := json.Unmarshal(raw, &w); err != nil {
		return models.BlogPost{}, fmt.Errorf("decode blog post: %w", err)
	}
	return mapBlogPost(w), nil
}

func (s *Service) UpdateBlogPost(id string, d models.BlogPostDraft) (models.BlogPost, error) {
	raw, err := s.admin.Put("/admin/blog/"+id, buildBlogPayload(d))
	if err != nil {
		return models.BlogPost{}, err
	}
	var w wireBlogPost
	if err := json.Unmarshal(raw, &w); err != nil {
		return models.BlogPost{}, fmt.Errorf("decode blog post: %w", err)
	}
	return mapBlogPost(w), nil
}

func (s *Service) DeleteBlogPost(id string) error {
	_, err := s.admin.Delete("/admin/blog/" + id)
	return err
}

// Submissions

func (s *Service) Submissions(filters map[string]string) ([]models.Submission, error) {
	raw, err := s.admin.Get("/admin/submissions", filters)
	if err != nil {
		return nil, err
	}
	var wires []wireSubmission
	if err := api.DecodeList(raw, &wires); err != nil {
		return nil, fmt.Errorf("decode submissions: %w", err)
	}
	out := make([]models.Submission, 0, len(wires))
	for _, w := range wires {
		out = append(out, mapSubmission(w))
	}
	return out, nil
}

func (s *Service) SubmissionDetail(id string) (models.Submission, error) {
	raw, err := s.admin.Get("/admin/submissions/"+id, nil)
	if err != nil {
		return models.Submission{}, err
	}
	var w wireSubmissionDetail
	if err := json.Unmarshal(raw, &w); err != nil {
		return models.Submission{}, fmt.Errorf("decode submission: %w", err)
	}
	return mapSubmissionDetail(w), nil
}

type participantPayload struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Department   string `json:"department"`
	AcademicYear string `json:"academic_year"`
}

type mentorPayload struct {
	Name       string `json:"name"`
	Department string `json:"department"`
}

type submitPayload struct {
	HackathonID                   string               `json:"hackathon_id"`
	TeamName                      string               `json:"team_name"`
	ExternalRegistrationConfirmed bool                 `json:"external_registration_confirmed"`
	Participants                  []participantPayload `json:"participants"`
	Mentors                       []mentorPayload      `json:"mentors"`
}

func (s *Service) SubmitParticipation(d models.SubmissionDraft) (models.SubmitResult, error) {
	payload := submitPayload{
		HackathonID:                   d.HackathonID,
		TeamName:                      d.TeamName,
		ExternalRegistrationConfirmed: d.ExternalConfirmed,
		Participants:                  make([]participantPayload, 0, len(d.Participants)),
		Mentors:                       make([]mentorPayload, 0, len(d.Mentors)),
	}
	for _, p := range d.Participants {
		payload.Participants = append(payload.Participants, participantPayload{
			Name:         p.FullName,
			Email:        p.CollegeEmail,
			Department:   p.Department,
			AcademicYear: p.AcademicYear,
		})
	}
	for _, m := range d.Mentors {
		payload.Mentors = append(payload.Mentors, mentorPayload{
			Name:       m.Name,
			Department: m.Department,
		})
	}

	raw, err := s.admin.Post("/submit", payload)
	if err != nil {
		return models.SubmitResult{}, err
	}
	var result models.SubmitResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return models.SubmitResult{}, fmt.Errorf("decode submit result: %w", err)
	}
	return result, nil
}

func (s *Service) UpdateSubmissionStatus(id string, status models.SubmissionStatus) error {
	body := struct {
		Status string `json:"status"`
	}{Status: string(status)}
	_, err := s.admin.Patch("/admin/submissions/"+id+"/status", body)
	return err
}

func (s *Service) DeleteSubmission(id string) error {
	_, err := s.admin.Delete("/admin/submissions/" + id)
	return err
}

// Auth

func (s *Service) AdminLogin(email, password string) (string, models.AdminUser, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}
	raw, err := s.admin.Post("/admin/login", body)
	if err != nil {
		return "", models.AdminUser{}, err
	}
	var resp adminLoginResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", models.AdminUser{}, fmt.Errorf("decode login response: %w", err)
	}
	return resp.Token, models.AdminUser{ID: resp.Admin.ID, Name: resp.Admin.Name, Email: resp.Admin.Email}, nil
}

type StudentRegistration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Year     int    `json:"year"`
	Branch   string `json:"branch"`
}

func (s *Service) StudentRegister(reg StudentRegistration) (string, models.StudentUser, error) {
	return s.studentAuth("/student/register", reg)
}

func (s *Service) StudentLogin(email, password string) (string, models.StudentUser, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}
	return s.studentAuth("/student/login", body)
}

func (s *Service) studentAuth(path string, body interface{}) (string, models.StudentUser, error) {
	raw, err := s.student.Post(path, body)
	if err != nil {
		return "", models.StudentUser{}, err
	}
	var resp studentAuthResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", models.StudentUser{}, fmt.Errorf("decode student auth: %w", err)
	}
	return resp.Token, mapStudent(resp.Student), nil
}

// StudentProfileUpdate carries the editable profile fields; nil slices and
// empty strings are still sent so the backend can clear values.
type StudentProfileUpdate struct {
	Name   string   `json:"name"`
	Year   int      `json:"year"`
	Branch string   `json:"branch"`
	Bio    string   `json:"bio"`
	Skills []string `json:"skills"`
}

func (s *Service) UpdateStudentProfile(id string, update StudentProfileUpdate) (models.StudentUser, error) {
	raw, err := s.student.Put("/student/"+id, update)
	if err != nil {
		return models.StudentUser{}, err
	}
	var w wireStudent
	if err := json.Unmarshal(raw, &w); err != nil {
		return models.StudentUser{}, fmt.Errorf("decode student: %w", err)
	}
	return mapStudent(w), nil
}

func (s *Service) SearchStudents(year, branch, skills string) ([]models.StudentUser, error) {
	params := map[string]string{"year": year, "branch": branch, "skills": skills}
	raw, err := s.student.Get("/student/search", params)
	if err != nil {
		return nil, err
	}
	var wires []wireStudent
	if err := api.DecodeList(raw, &wires); err != nil {
		return nil, fmt.Errorf("decode students: %w", err)
	}
	out := make([]models.StudentUser, 0, len(wires))
	for _, w := range wires {
		out = append(out, mapStudent(w))
	}
	return out, nil
}

// Metrics and export

func (s *Service) Metrics() (models.DashboardMetrics, error) {
	raw, err := s.admin.Get("/admin/metrics", nil)
	if err != nil {
		return models.DashboardMetrics{}, err
	}
	var w wireMetrics
	if err := json.Unmarshal(raw, &w); err != nil {
		return models.DashboardMetrics{}, fmt.Errorf("decode metrics: %w", err)
	}
	return mapMetrics(w), nil
}

// Export streams the admin export as-is. It bypasses the JSON adapter because
// the response is a binary blob, attaching the bearer token manually.
func (s *Service) Export(filters map[string]string) ([]byte, string, error) {
	u, err := url.Parse(s.admin.BaseURL() + "/admin/export")
	if err != nil {
		return nil, "", fmt.Errorf("url: %w", err)
	}
	q := u.Query()
	for key, value := range filters {
		if value != "" {
			q.Set(key, value)
		}
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, "", fmt.Errorf("request: %w", err)
	}
	if token := s.admin.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("http: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", &api.RequestError{Status: resp.StatusCode, Message: "export failed"}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read: %w", err)
	}
	return data, resp.Header.Get("Content-Type"), nil
}
