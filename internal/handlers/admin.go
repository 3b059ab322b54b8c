package handlers

import (
	"net/http"

	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/middleware"
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/repository"
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler handles administrator registration, login and logout.
type AdminHandler struct {
	authService   service.AuthService
	actionLogRepo repository.ActionLogRepository
}

// NewAdminHandler creates a new AdminHandler instance.
func NewAdminHandler(authService service.AuthService, actionLogRepo repository.ActionLogRepository) *AdminHandler {
	return &AdminHandler{
		authService:   authService,
		actionLogRepo: actionLogRepo,
	}
}

// Register godoc
// @Summary Register a new admin
// @Tags admin
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration details"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /admin/register [post]
func (h *AdminHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	admin, err := h.authService.RegisterAdmin(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	_ = h.actionLogRepo.Log(c.Request.Context(), repository.ActionRegister, &admin.ID, map[string]interface{}{
		"username": admin.Username,
		"admin":    true,
	})

	c.JSON(http.StatusCreated, gin.H{"message": "Admin successfully registered"})
}

// Login godoc
// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} service.LoginResponse
// @Failure 401 {object} map[string]string
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	response, err := h.authService.LoginAdmin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		_ = h.actionLogRepo.Log(c.Request.Context(), repository.ActionLoginFailure, nil, map[string]interface{}{
			"email": req.Email,
			"admin": true,
		})
		RespondServiceError(c, err)
		return
	}

	_ = h.actionLogRepo.Log(c.Request.Context(), repository.ActionLoginSuccess, &response.UserID, map[string]interface{}{
		"username": response.Username,
		"admin":    true,
	})

	c.JSON(http.StatusOK, response)
}

// Logout godoc
// @Summary Admin logout
// @Tags admin
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /admin/logout [post]
func (h *AdminHandler) Logout(c *gin.Context) {
	token := middleware.ExtractToken(c)
	if token == "" {
		RespondError(c, http.StatusUnauthorized, "missing bearer token")
		return
	}

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "logout failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}
