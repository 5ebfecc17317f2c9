package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/models"
	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/store"
)

type BlogHandler struct {
	store *store.BlogStore
}

func NewBlogHandler(store *store.BlogStore) *BlogHandler {
	return &BlogHandler{store: store}
}

// List godoc
// @Summary      List published blog posts
// @Description  Published posts only; supports category and latest-N filters
// @Tags         blog
// @Produce      json
// @Param        category query string false "Filter by category"
// @Param        latest query int false "Return only the N most recent posts"
// @Success      200 {array} models.BlogPost
// @Failure      502 {object} ErrorResponse
// @Router       /api/v1/blog [get]
func (h *BlogHandler) List(c *gin.Context) {
	if len(h.store.Items()) == 0 && !h.store.IsLoading() {
		h.store.FetchAll()
		if msg := h.store.Err(); msg != "" {
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: msg})
			return
		}
	}

	if latest := c.Query("latest"); latest != "" {
		n, err := strconv.Atoi(latest)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid latest value"})
			return
		}
		c.JSON(http.StatusOK, h.store.Latest(n))
		return
	}

	if category := c.Query("category"); category != "" {
		c.JSON(http.StatusOK, h.store.ByCategory(models.BlogCategory(category)))
		return
	}

	c.JSON(http.StatusOK, h.store.Published())
}

// GetBySlug godoc
// @Summary      Get a blog post by slug
// @Tags         blog
// @Produce      json
// @Param        slug path string true "Post slug"
// @Success      200 {object} models.BlogPost
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/blog/{slug} [get]
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	post := h.store.GetBySlug(c.Param("slug"))
	if post == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "blog post not found"})
		return
	}
	c.JSON(http.StatusOK, post)
}

// ListAll godoc
// @Summary      List all blog posts including drafts
// @Tags         blog
// @Produce      json
// @Success      200 {array} models.BlogPost
// @Router       /api/v1/admin/blog [get]
func (h *BlogHandler) ListAll(c *gin.Context) {
	if len(h.store.Items()) == 0 && !h.store.IsLoading() {
		h.store.FetchAll()
		if msg := h.store.Err(); msg != "" {
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: msg})
			return
		}
	}
	c.JSON(http.StatusOK, h.store.Items())
}

// Create godoc
// @Summary      Create a blog post
// @Tags         blog
// @Accept       json
// @Produce      json
// @Param        request body models.BlogPostDraft true "Post data"
// @Success      201 {object} models.BlogPost
// @Failure      400 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /api/v1/admin/blog [post]
func (h *BlogHandler) Create(c *gin.Context) {
	var draft models.BlogPostDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	created, err := h.store.Create(draft)
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary      Update a blog post
// @Tags         blog
// @Accept       json
// @Produce      json
// @Param        id path string true "Post ID"
// @Param        request body models.BlogPostDraft true "Post data"
// @Success      200 {object} models.BlogPost
// @Failure      400 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /api/v1/admin/blog/{id} [put]
func (h *BlogHandler) Update(c *gin.Context) {
	var draft models.BlogPostDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	updated, err := h.store.Update(c.Param("id"), draft)
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary      Delete a blog post
// @Tags         blog
// @Param        id path string true "Post ID"
// @Success      204
// @Failure      502 {object} ErrorResponse
// @Router       /api/v1/admin/blog/{id} [delete]
func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
