package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/models"
	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/store"
)

type SubmissionHandler struct {
	store *store.SubmissionStore
}

func NewSubmissionHandler(store *store.SubmissionStore) *SubmissionHandler {
	return &SubmissionHandler{store: store}
}

type UpdateSubmissionStatusRequest struct {
	Status string `json:"status" binding:"required" example:"verified"`
}

// List godoc
// @Summary      List participation submissions
// @Description  Summary records; participant/mentor lists are empty until a detail fetch
// @Tags         submissions
// @Produce      json
// @Success      200 {array} models.Submission
// @Failure      502 {object} ErrorResponse
// @Router       /api/v1/admin/submissions [get]
func (h *SubmissionHandler) List(c *gin.Context) {
	h.store.FetchAll()
	if msg := h.store.Err(); msg != "" {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: msg})
		return
	}
	c.JSON(http.StatusOK, h.store.Items())
}

// Get godoc
// @Summary      Get a submission with participants and mentors
// @Tags         submissions
// @Produce      json
// @Param        id path string true "Submission ID"
// @Success      200 {object} models.Submission
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/submissions/{id} [get]
func (h *SubmissionHandler) Get(c *gin.Context) {
	sub := h.store.GetDetail(c.Param("id"))
	if sub == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "submission not found"})
		return
	}
	c.JSON(http.StatusOK, sub)
}

// UpdateStatus godoc
// @Summary      Change a submission's review status
// @Tags         submissions
// @Accept       json
// @Produce      json
// @Param        id path string true "Submission ID"
// @Param        request body UpdateSubmissionStatusRequest true "New status"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /api/v1/admin/submissions/{id}/status [patch]
func (h *SubmissionHandler) UpdateStatus(c *gin.Context) {
	var req UpdateSubmissionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	status := models.SubmissionStatus(req.Status)
	switch status {
	case models.SubmissionSubmitted, models.SubmissionVerified, models.SubmissionArchived:
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid submission status"})
		return
	}

	if err := h.store.UpdateStatus(c.Param("id"), status); err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "status updated"})
}

// Delete godoc
// @Summary      Delete a submission
// @Tags         submissions
// @Param        id path string true "Submission ID"
// @Success      204
// @Failure      502 {object} ErrorResponse
// @Router       /api/v1/admin/submissions/{id} [delete]
func (h *SubmissionHandler) Delete(c *gin.Context) {
	if err := h.store.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
