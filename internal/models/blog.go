package models

type BlogCategory string

const (
	CategoryArticle      BlogCategory = "Article"
	CategoryWinner       BlogCategory = "Winner"
	CategoryAnnouncement BlogCategory = "Announcement"
)

type BlogStatus string

const (
	BlogDraft     BlogStatus = "Draft"
	BlogPublished BlogStatus = "Published"
)

type BlogPost struct {
	ID               string       `json:"id"`
	Slug             string       `json:"slug"`
	Title            string       `json:"title"`
	Summary          string       `json:"summary"`
	Content          string       `json:"content"`
	Category         BlogCategory `json:"category"`
	Tags             []string     `json:"tags"`
	Author           string       `json:"author,omitempty"`
	RelatedHackathon string       `json:"relatedHackathon,omitempty"`
	Status           BlogStatus   `json:"status"`
	CreatedAt        string       `json:"createdAt"`
	UpdatedAt        string       `json:"updatedAt"`
}

type BlogPostDraft struct {
	Title            string       `json:"title"`
	Summary          string       `json:"summary"`
	Content          string       `json:"content"`
	Category         BlogCategory `json:"category"`
	Author           string       `json:"author,omitempty"`
	RelatedHackathon string       `json:"relatedHackathon,omitempty"`
	Status           BlogStatus   `json:"status"`
}
