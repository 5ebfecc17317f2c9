package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/store"
)

type AuthHandler struct {
	store *store.AdminAuthStore
}

func NewAuthHandler(store *store.AdminAuthStore) *AuthHandler {
	return &AuthHandler{store: store}
}

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@coin.example"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

type AdminLoginResponse struct {
	Authenticated bool   `json:"authenticated"`
	Name          string `json:"name,omitempty"`
	Email         string `json:"email,omitempty"`
}

// Login godoc
// @Summary      Admin login
// @Description  Exchanges credentials for a persisted admin session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body AdminLoginRequest true "Credentials"
// @Success      200 {object} AdminLoginResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /api/v1/admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	ok, err := h.store.Login(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
		return
	}

	admin := h.store.Admin()
	c.JSON(http.StatusOK, AdminLoginResponse{
		Authenticated: true,
		Name:          admin.Name,
		Email:         admin.Email,
	})
}

// Logout godoc
// @Summary      Admin logout
// @Tags         auth
// @Produce      json
// @Success      200 {object} MessageResponse
// @Router       /api/v1/admin/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.store.Logout()
	c.JSON(http.StatusOK, MessageResponse{Message: "logged out"})
}

// Session godoc
// @Summary      Current admin session state
// @Tags         auth
// @Produce      json
// @Success      200 {object} AdminLoginResponse
// @Router       /api/v1/admin/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	if !h.store.IsAuthenticated() {
		c.JSON(http.StatusOK, AdminLoginResponse{Authenticated: false})
		return
	}
	admin := h.store.Admin()
	c.JSON(http.StatusOK, AdminLoginResponse{
		Authenticated: true,
		Name:          admin.Name,
		Email:         admin.Email,
	})
}

// Metrics godoc
// @Summary      Dashboard aggregate counts
// @Tags         auth
// @Produce      json
// @Success      200 {object} models.DashboardMetrics
// @Failure      502 {object} ErrorResponse
// @Router       /api/v1/admin/metrics [get]
func (h *AuthHandler) Metrics(c *gin.Context) {
	m, err := h.store.Metrics()
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, m)
}

// Export godoc
// @Summary      Export submissions as a file
// @Description  Streams the backend export blob through with its content type
// @Tags         auth
// @Produce      octet-stream
// @Param        hackathon_id query string false "Filter by hackathon"
// @Param        status query string false "Filter by status"
// @Success      200 {file} binary
// @Failure      502 {object} ErrorResponse
// @Router       /api/v1/admin/export [get]
func (h *AuthHandler) Export(c *gin.Context) {
	filters := map[string]string{}
	if v := c.Query("hackathon_id"); v != "" {
		filters["hackathon_id"] = v
	}
	if v := c.Query("status"); v != "" {
		filters["status"] = v
	}

	blob, contentType, err := h.store.Export(filters)
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Data(http.StatusOK, contentType, blob)
}
