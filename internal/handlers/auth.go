package handlers

import (
	"net/http"

	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/metrics"
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/middleware"
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/repository"
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/service"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles user registration, login and logout.
type AuthHandler struct {
	authService   service.AuthService
	actionLogRepo repository.ActionLogRepository
	metrics       *metrics.Metrics
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authService service.AuthService, actionLogRepo repository.ActionLogRepository, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		actionLogRepo: actionLogRepo,
		metrics:       m,
	}
}

// RegisterRequest represents the registration request payload.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration details"
// @Success 201 {object} models.User
// @Failure 400 {object} map[string]string
// @Router /users/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	_ = h.actionLogRepo.Log(c.Request.Context(), repository.ActionRegister, &user.ID, map[string]interface{}{
		"username": user.Username,
	})

	c.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary User login
// @Description Authenticate a user and return a bearer token
// @Tags users
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} service.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /users/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	response, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.metrics.LoginAttempts.WithLabelValues("failure").Inc()
		_ = h.actionLogRepo.Log(c.Request.Context(), repository.ActionLoginFailure, nil, map[string]interface{}{
			"email": req.Email,
		})
		RespondServiceError(c, err)
		return
	}

	h.metrics.LoginAttempts.WithLabelValues("success").Inc()
	_ = h.actionLogRepo.Log(c.Request.Context(), repository.ActionLoginSuccess, &response.UserID, map[string]interface{}{
		"username": response.Username,
	})

	c.JSON(http.StatusOK, response)
}

// Logout godoc
// @Summary User logout
// @Description Revoke the presented bearer token
// @Tags users
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token := middleware.ExtractToken(c)
	if token == "" {
		RespondError(c, http.StatusUnauthorized, "missing bearer token")
		return
	}

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "logout failed")
		return
	}

	var userID *int64
	if claims := middleware.ClaimsFromContext(c); claims != nil {
		userID = &claims.UserID
	}
	_ = h.actionLogRepo.Log(c.Request.Context(), repository.ActionLogout, userID, nil)

	c.JSON(http.StatusOK, gin.H{"msg": "Logout successful"})
}

// Protected godoc
// @Summary Access protected user data
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]string
// @Router /users/protected [get]
func (h *AuthHandler) Protected(c *gin.Context) {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		RespondError(c, http.StatusUnauthorized, "invalid token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"logged_in_as": gin.H{
		"id":       claims.UserID,
		"username": claims.Username,
	}})
}
