package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/models"
	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/store"
)

type HackathonHandler struct {
	store *store.HackathonStore
}

func NewHackathonHandler(store *store.HackathonStore) *HackathonHandler {
	return &HackathonHandler{store: store}
}

type UpdateHackathonStatusRequest struct {
	Status models.HackathonStatus `json:"status" binding:"required" example:"ONGOING"`
}

// List godoc
// @Summary      List hackathons
// @Description  Get the cached hackathon collection, refreshing it on a cold cache
// @Tags         hackathons
// @Produce      json
// @Success      200 {array} models.Hackathon
// @Failure      502 {object} ErrorResponse
// @Router       /api/v1/hackathons [get]
func (h *HackathonHandler) List(c *gin.Context) {
	items := h.store.Items()
	if len(items) == 0 && !h.store.IsLoading() {
		h.store.FetchAll()
		items = h.store.Items()
		if msg := h.store.Err(); msg != "" {
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: msg})
			return
		}
	}
	c.JSON(http.StatusOK, items)
}

// GetBySlug godoc
// @Summary      Get a hackathon by slug
// @Tags         hackathons
// @Produce      json
// @Param        slug path string true "Hackathon slug"
// @Success      200 {object} models.Hackathon
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/hackathons/{slug} [get]
func (h *HackathonHandler) GetBySlug(c *gin.Context) {
	hackathon := h.store.GetBySlug(c.Param("slug"))
	if hackathon == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "hackathon not found"})
		return
	}
	c.JSON(http.StatusOK, hackathon)
}

// Create godoc
// @Summary      Create a hackathon
// @Tags         hackathons
// @Accept       json
// @Produce      json
// @Param        request body models.HackathonDraft true "Hackathon data"
// @Success      201 {object} models.Hackathon
// @Failure      400 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /api/v1/admin/hackathons [post]
func (h *HackathonHandler) Create(c *gin.Context) {
	var draft models.HackathonDraft
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
// @Summary      Update a hackathon
// @Tags         hackathons
// @Accept       json
// @Produce      json
// @Param        id path string true "Hackathon ID"
// @Param        request body models.HackathonDraft true "Hackathon data"
// @Success      200 {object} models.Hackathon
// @Failure      400 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /api/v1/admin/hackathons/{id} [put]
func (h *HackathonHandler) Update(c *gin.Context) {
	var draft models.HackathonDraft
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

// UpdateStatus godoc
// @Summary      Change a hackathon's status
// @Tags         hackathons
// @Accept       json
// @Produce      json
// @Param        id path string true "Hackathon ID"
// @Param        request body UpdateHackathonStatusRequest true "New status"
// @Success      200 {object} models.Hackathon
// @Failure      400 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /api/v1/admin/hackathons/{id}/status [patch]
func (h *HackathonHandler) UpdateStatus(c *gin.Context) {
	var req UpdateHackathonStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	updated, err := h.store.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary      Delete a hackathon
// @Tags         hackathons
// @Param        id path string true "Hackathon ID"
// @Success      204
// @Failure      502 {object} ErrorResponse
// @Router       /api/v1/admin/hackathons/{id} [delete]
func (h *HackathonHandler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
