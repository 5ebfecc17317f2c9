package store

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/models"
)

const blogList = `[
	{"id":"b1","title":"Winners Announced","slug":"winners-announced","category":"winner","status":"published","created_at":"2025-03-01T10:00:00Z"},
	{"id":"b2","title":"How We Hack","category":"article","status":"published","created_at":"2025-04-01T10:00:00Z"},
	{"id":"b3","title":"Unfinished Draft","category":"article","status":"draft","created_at":"2025-05-01T10:00:00Z"}
]`

func newBlogFixture(t *testing.T) *BlogStore {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/blog", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(blogList))
	})
	s := NewBlogStore(newTestService(t, mux))
	s.FetchAll()
	require.Empty(t, s.Err())
	return s
}

func TestBlogPublishedFiltersDrafts(t *testing.T) {
	s := newBlogFixture(t)

	published := s.Published()
	require.Len(t, published, 2)
	for _, p := range published {
		assert.Equal(t, models.BlogPublished, p.Status)
	}
	assert.Len(t, s.Items(), 3, "drafts stay in the cache")
}

func TestBlogByCategory(t *testing.T) {
	s := newBlogFixture(t)

	winners := s.ByCategory(models.CategoryWinner)
	require.Len(t, winners, 1)
	assert.Equal(t, "b1", winners[0].ID)

	articles := s.ByCategory(models.CategoryArticle)
	require.Len(t, articles, 1, "draft articles are not public")
	assert.Equal(t, "b2", articles[0].ID)
}

func TestBlogLatestOrdersByCreatedAt(t *testing.T) {
	s := newBlogFixture(t)

	latest := s.Latest(1)
	require.Len(t, latest, 1)
	assert.Equal(t, "b2", latest[0].ID, "newest published post first")

	assert.Len(t, s.Latest(10), 2, "n larger than the collection returns everything published")
}

func TestBlogGetBySlugDerivedFromTitle(t *testing.T) {
	s := newBlogFixture(t)

	post := s.GetBySlug("how-we-hack")
	require.NotNil(t, post)
	assert.Equal(t, "b2", post.ID)
}
