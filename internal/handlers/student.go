package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/backend"
	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/models"
	"github.com/Mr-IR0k-oo1/COIN-web-sub000/internal/store"
)

type StudentHandler struct {
	store *store.StudentStore
}

func NewStudentHandler(store *store.StudentStore) *StudentHandler {
	return &StudentHandler{store: store}
}

type StudentLoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane@college.edu"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

type StudentRegisterRequest struct {
	Name     string `json:"name" binding:"required" example:"Jane Doe"`
	Email    string `json:"email" binding:"required,email" example:"jane@college.edu"`
	Password string `json:"password" binding:"required,min=6" example:"secret123"`
	Year     int    `json:"year" binding:"required" example:"2"`
	Branch   string `json:"branch" binding:"required" example:"Computer Science and Engineering"`
}

type StudentProfileRequest struct {
	Name   string   `json:"name" binding:"required"`
	Year   int      `json:"year" binding:"required"`
	Branch string   `json:"branch" binding:"required"`
	Bio    string   `json:"bio"`
	Skills []string `json:"skills"`
}

// Login godoc
// @Summary      Student login
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        request body StudentLoginRequest true "Credentials"
// @Success      200 {object} models.StudentUser
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /api/v1/student/login [post]
func (h *StudentHandler) Login(c *gin.Context) {
	var req StudentLoginRequest
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

	c.JSON(http.StatusOK, h.store.User())
}

// Register godoc
// @Summary      Student registration
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        request body StudentRegisterRequest true "Registration data"
// @Success      201 {object} models.StudentUser
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /api/v1/student/register [post]
func (h *StudentHandler) Register(c *gin.Context) {
	var req StudentRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	ok, err := h.store.Register(backend.StudentRegistration{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Year:     req.Year,
		Branch:   req.Branch,
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusConflict, ErrorResponse{Error: h.store.Err()})
		return
	}

	c.JSON(http.StatusCreated, h.store.User())
}

// Logout godoc
// @Summary      Student logout
// @Tags         students
// @Produce      json
// @Success      200 {object} MessageResponse
// @Router       /api/v1/student/logout [post]
func (h *StudentHandler) Logout(c *gin.Context) {
	h.store.Logout()
	c.JSON(http.StatusOK, MessageResponse{Message: "logged out"})
}

// Profile godoc
// @Summary      Current student profile
// @Tags         students
// @Produce      json
// @Success      200 {object} models.StudentUser
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/student/profile [get]
func (h *StudentHandler) Profile(c *gin.Context) {
	user := h.store.User()
	if user == nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "student session required"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile godoc
// @Summary      Update the current student profile
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        request body StudentProfileRequest true "Profile edits"
// @Success      200 {object} models.StudentUser
// @Failure      400 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /api/v1/student/profile [put]
func (h *StudentHandler) UpdateProfile(c *gin.Context) {
	var req StudentProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	ok := h.store.UpdateProfile(backend.StudentProfileUpdate{
		Name:   req.Name,
		Year:   req.Year,
		Branch: req.Branch,
		Bio:    req.Bio,
		Skills: req.Skills,
	})
	if !ok {
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: h.store.Err()})
		return
	}

	c.JSON(http.StatusOK, h.store.User())
}

// Search godoc
// @Summary      Search student profiles
// @Tags         students
// @Produce      json
// @Param        year query string false "Academic year"
// @Param        branch query string false "Branch"
// @Param        skills query string false "Comma-separated skills"
// @Success      200 {array} models.StudentUser
// @Router       /api/v1/student/search [get]
func (h *StudentHandler) Search(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Search(c.Query("year"), c.Query("branch"), c.Query("skills")))
}

// Departments godoc
// @Summary      Valid department and academic year choices
// @Tags         students
// @Produce      json
// @Success      200 {object} map[string][]string
// @Router       /api/v1/departments [get]
func (h *StudentHandler) Departments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"departments":   models.Departments,
		"academicYears": models.AcademicYears,
	})
}
