package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/models"
	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/wizard"
)

type WizardHandler struct {
	registry *wizard.Registry
}

func NewWizardHandler(registry *wizard.Registry) *WizardHandler {
	return &WizardHandler{registry: registry}
}

// WizardUpdateRequest carries partial wizard edits; only the fields present
// in the request body are applied.
type WizardUpdateRequest struct {
	HackathonID      *string              `json:"hackathonId"`
	TeamName         *string              `json:"teamName"`
	ParticipantCount *int                 `json:"participantCount"`
	Participants     []models.Participant `json:"participants"`
	HasMentor        *bool                `json:"hasMentor"`
	MentorCount      *int                 `json:"mentorCount"`
	Mentors          []models.Mentor      `json:"mentors"`
	Confirmed        *bool                `json:"confirmed"`
}

type WizardStateResponse struct {
	ID               string               `json:"id"`
	Step             string               `json:"step"`
	HackathonID      string               `json:"hackathonId"`
	TeamName         string               `json:"teamName"`
	ParticipantCount int                  `json:"participantCount"`
	Participants     []models.Participant `json:"participants"`
	HasMentor        bool                 `json:"hasMentor"`
	MentorCount      int                  `json:"mentorCount"`
	Mentors          []models.Mentor      `json:"mentors"`
	Confirmed        bool                 `json:"confirmed"`
	Errors           map[string]string    `json:"errors"`
}

func wizardState(id string, w *wizard.Wizard) WizardStateResponse {
	return WizardStateResponse{
		ID:               id,
		Step:             w.Step().String(),
		HackathonID:      w.HackathonID(),
		TeamName:         w.TeamName(),
		ParticipantCount: w.ParticipantCount(),
		Participants:     w.Participants(),
		HasMentor:        w.HasMentor(),
		MentorCount:      w.MentorCount(),
		Mentors:          w.Mentors(),
		Confirmed:        w.Confirmed(),
		Errors:           w.Errors(),
	}
}

// Start godoc
// @Summary      Start a participation wizard
// @Tags         wizard
// @Produce      json
// @Success      201 {object} WizardStateResponse
// @Router       /api/v1/wizard [post]
func (h *WizardHandler) Start(c *gin.Context) {
	id, w := h.registry.Create()
	c.JSON(http.StatusCreated, wizardState(id, w))
}

// Get godoc
// @Summary      Get the current wizard state
// @Tags         wizard
// @Produce      json
// @Param        id path string true "Wizard ID"
// @Success      200 {object} WizardStateResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/wizard/{id} [get]
func (h *WizardHandler) Get(c *gin.Context) {
	id := c.Param("id")
	w := h.registry.Get(id)
	if w == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "wizard not found"})
		return
	}
	c.JSON(http.StatusOK, wizardState(id, w))
}

// Update godoc
// @Summary      Apply field edits to a wizard
// @Description  Partial update; participant and mentor rows are applied by index
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        id path string true "Wizard ID"
// @Param        request body WizardUpdateRequest true "Fields to change"
// @Success      200 {object} WizardStateResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/wizard/{id} [patch]
func (h *WizardHandler) Update(c *gin.Context) {
	id := c.Param("id")
	w := h.registry.Get(id)
	if w == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "wizard not found"})
		return
	}

	var req WizardUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if req.HackathonID != nil {
		w.SelectHackathon(*req.HackathonID)
	}
	if req.TeamName != nil {
		w.SetTeamName(*req.TeamName)
	}
	if req.ParticipantCount != nil {
		w.SetParticipantCount(*req.ParticipantCount)
	}
	for i, p := range req.Participants {
		w.SetParticipant(i, p)
	}
	if req.HasMentor != nil {
		w.SetMentorship(*req.HasMentor)
	}
	if req.MentorCount != nil {
		w.SetMentorCount(*req.MentorCount)
	}
	for i, m := range req.Mentors {
		w.SetMentor(i, m)
	}
	if req.Confirmed != nil {
		w.SetConfirmed(*req.Confirmed)
	}

	c.JSON(http.StatusOK, wizardState(id, w))
}

// Next godoc
// @Summary      Advance the wizard one step
// @Description  Validates the current step; on failure the state carries the field errors
// @Tags         wizard
// @Produce      json
// @Param        id path string true "Wizard ID"
// @Success      200 {object} WizardStateResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} WizardStateResponse
// @Router       /api/v1/wizard/{id}/next [post]
func (h *WizardHandler) Next(c *gin.Context) {
	id := c.Param("id")
	w := h.registry.Get(id)
	if w == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "wizard not found"})
		return
	}

	if !w.Next() {
		c.JSON(http.StatusUnprocessableEntity, wizardState(id, w))
		return
	}
	c.JSON(http.StatusOK, wizardState(id, w))
}

// Previous godoc
// @Summary      Step the wizard back
// @Description  Never validates; entered data is kept
// @Tags         wizard
// @Produce      json
// @Param        id path string true "Wizard ID"
// @Success      200 {object} WizardStateResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/wizard/{id}/previous [post]
func (h *WizardHandler) Previous(c *gin.Context) {
	id := c.Param("id")
	w := h.registry.Get(id)
	if w == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "wizard not found"})
		return
	}

	w.Previous()
	c.JSON(http.StatusOK, wizardState(id, w))
}

// Submit godoc
// @Summary      Submit the completed participation
// @Description  Only valid from the review step; the wizard is discarded on success
// @Tags         wizard
// @Produce      json
// @Param        id path string true "Wizard ID"
// @Success      201 {object} models.SubmitResult
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} WizardStateResponse
// @Failure      502 {object} WizardStateResponse
// @Router       /api/v1/wizard/{id}/submit [post]
func (h *WizardHandler) Submit(c *gin.Context) {
	id := c.Param("id")
	w := h.registry.Get(id)
	if w == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "wizard not found"})
		return
	}

	result, err := w.Submit()
	if err != nil {
		if wizard.IsValidation(err) {
			c.JSON(http.StatusUnprocessableEntity, wizardState(id, w))
			return
		}
		c.JSON(http.StatusBadGateway, wizardState(id, w))
		return
	}

	h.registry.Clear(id)
	c.JSON(http.StatusCreated, result)
}
