package backend

import (
	"regexp"
	"strings"

	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/models"
)

// The mapper is the tolerance boundary between the backend contract and the
// client model: unknown enumeration values degrade to a default instead of
// failing, so schema drift never aborts a fetch.

func parseMode(mode string) models.HackathonMode {
	switch mode {
	case "ONLINE":
		return models.ModeOnline
	case "OFFLINE":
		return models.ModeOffline
	default:
		return models.ModeOnline
	}
}

func parseStatus(status string) models.HackathonStatus {
	switch status {
	case "UPCOMING":
		return models.StatusUpcoming
	case "ONGOING":
		return models.StatusOngoing
	case "CLOSED":
		return models.StatusClosed
	default:
		return models.StatusUpcoming
	}
}

func parseBlogCategory(category string) models.BlogCategory {
	switch category {
	case "article":
		return models.CategoryArticle
	case "winner":
		return models.CategoryWinner
	case "announcement":
		return models.CategoryAnnouncement
	default:
		return models.CategoryArticle
	}
}

func parseBlogStatus(status string) models.BlogStatus {
	if status == "published" {
		return models.BlogPublished
	}
	return models.BlogDraft
}

func parseSubmissionStatus(status string) models.SubmissionStatus {
	switch status {
	case "verified":
		return models.SubmissionVerified
	case "archived":
		return models.SubmissionArchived
	default:
		return models.SubmissionSubmitted
	}
}

var (
	nonWord    = regexp.MustCompile(`[^\w\s-]`)
	whitespace = regexp.MustCompile(`[\s_]+`)
	edgeHyphen = regexp.MustCompile(`^-+|-+$`)
)

// Slugify derives a URL slug from a name or title: lowercase, punctuation
// stripped, runs of whitespace collapsed to a single hyphen.
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = nonWord.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	return edgeHyphen.ReplaceAllString(s, "")
}

func mapHackathon(w wireHackathon) models.Hackathon {
	return models.Hackathon{
		ID:                   w.ID,
		Slug:                 Slugify(w.Name),
		Name:                 w.Name,
		Organizer:            w.Organizer,
		Description:          w.Description,
		Mode:                 parseMode(w.Mode),
		Location:             w.Location,
		StartDate:            w.StartDate,
		EndDate:              w.EndDate,
		RegistrationDeadline: w.RegistrationDeadline,
		OfficialLink:         w.OfficialRegistrationLink,
		Eligibility:          w.Eligibility,
		Semester:             w.Semester,
		Status:               parseStatus(w.Status),
		CreatedAt:            w.CreatedAt,
		UpdatedAt:            w.UpdatedAt,
	}
}

func mapBlogPost(w wireBlogPost) models.BlogPost {
	slug := w.Slug
	if slug == "" {
		slug = Slugify(w.Title)
	}
	return models.BlogPost{
		ID:               w.ID,
		Slug:             slug,
		Title:            w.Title,
		Summary:          w.Summary,
		Content:          w.Content,
		Category:         parseBlogCategory(w.Category),
		Tags:             []string{},
		Author:           w.Author,
		RelatedHackathon: w.RelatedHackathon,
		Status:           parseBlogStatus(w.Status),
		CreatedAt:        w.CreatedAt,
		UpdatedAt:        w.UpdatedAt,
	}
}

func mapSubmission(w wireSubmission) models.Submission {
	return models.Submission{
		ID:                w.ID,
		HackathonID:       w.HackathonID,
		HackathonName:     w.HackathonName,
		TeamName:          w.TeamName,
		ParticipantCount:  w.ParticipantCount,
		MentorCount:       w.MentorCount,
		Participants:      []models.Participant{},
		Mentors:           []models.Mentor{},
		ExternalConfirmed: w.ExternalRegistrationConfirmed,
		Status:            parseSubmissionStatus(w.Status),
		SubmittedAt:       w.CreatedAt,
	}
}

func mapSubmissionDetail(w wireSubmissionDetail) models.Submission {
	s := mapSubmission(w.Submission)
	for _, p := range w.Participants {
		s.Participants = append(s.Participants, models.Participant{
			FullName:     p.Name,
			CollegeEmail: p.Email,
			Department:   p.Department,
			AcademicYear: p.AcademicYear,
		})
	}
	for _, m := range w.Mentors {
		s.Mentors = append(s.Mentors, models.Mentor{
			Name:       m.Name,
			Department: m.Department,
		})
	}
	return s
}

func mapStudent(w wireStudent) models.StudentUser {
	skills := w.Skills
	if skills == nil {
		skills = []string{}
	}
	return models.StudentUser{
		ID:     w.ID,
		Name:   w.Name,
		Email:  w.Email,
		Year:   w.Year,
		Branch: w.Branch,
		Bio:    w.Bio,
		Skills: skills,
	}
}

func mapMetrics(w wireMetrics) models.DashboardMetrics {
	return models.DashboardMetrics{
		TotalHackathons:  w.TotalHackathons,
		TotalSubmissions: w.TotalSubmissions,
		TotalStudents:    w.TotalStudents,
		TotalMentors:     w.TotalMentors,
	}
}

// Reverse mappings for request payloads.

func wireMode(mode models.HackathonMode) string {
	if mode == models.ModeOffline {
		return "OFFLINE"
	}
	return "ONLINE"
}

func wireStatus(status models.HackathonStatus) string {
	switch status {
	case models.StatusOngoing:
		return "ONGOING"
	case models.StatusClosed:
		return "CLOSED"
	default:
		return "UPCOMING"
	}
}
