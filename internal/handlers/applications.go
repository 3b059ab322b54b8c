package handlers

import (
	"net/http"

	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/models"
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/repository"
	"github.com/gin-gonic/gin"
)

// ApplicationHandler handles funding-application endpoints.
type ApplicationHandler struct {
	applicationRepo repository.ApplicationRepository
}

// NewApplicationHandler creates a new ApplicationHandler instance.
func NewApplicationHandler(applicationRepo repository.ApplicationRepository) *ApplicationHandler {
	return &ApplicationHandler{applicationRepo: applicationRepo}
}

// CreateApplicationRequest represents the application creation payload.
// New applications always start out Pending.
type CreateApplicationRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Website     *string `json:"website"`
	ImageURL    *string `json:"image_url"`
}

// List godoc
// @Summary List funding applications
// @Tags applications
// @Produce json
// @Success 200 {array} models.Application
// @Router /applications [get]
func (h *ApplicationHandler) List(c *gin.Context) {
	applications, err := h.applicationRepo.FindAll(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

// Create godoc
// @Summary Create a funding application
// @Tags applications
// @Accept json
// @Produce json
// @Param request body CreateApplicationRequest true "Application details"
// @Success 201 {object} models.Application
// @Failure 400 {object} map[string]string
// @Router /applications [post]
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	application := &models.Application{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		ImageURL:    req.ImageURL,
		Status:      models.StatusPending,
	}
	if err := h.applicationRepo.Create(c.Request.Context(), application); err != nil {
		RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

// Get godoc
// @Summary Get a funding application
// @Tags applications
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} models.Application
// @Failure 404 {object} map[string]string
// @Router /applications/{id} [get]
func (h *ApplicationHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	application, err := h.applicationRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}

// Update godoc
// @Summary Update a funding application
// @Description Merge-patch: only fields present in the body are applied
// @Tags applications
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param request body repository.ApplicationPatch true "Fields to update"
// @Success 200 {object} models.Application
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /applications/{id} [patch]
func (h *ApplicationHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch repository.ApplicationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if patch.Status != nil && !validStatus(*patch.Status) {
		RespondError(c, http.StatusBadRequest, "invalid status")
		return
	}

	application, err := h.applicationRepo.Update(c.Request.Context(), id, patch)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, application)
}

// Delete godoc
// @Summary Delete a funding application
// @Tags applications
// @Param id path int true "Application ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /applications/{id} [delete]
func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.applicationRepo.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func validStatus(status string) bool {
	switch status {
	case models.StatusPending, models.StatusApproved, models.StatusRejected:
		return true
	}
	return false
}
