package handlers

import (
	"net/http"

	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/metrics"
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/models"
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/repository"
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/service"
	"github.com/gin-gonic/gin"
)

// CharityHandler handles charity CRUD and the intake workflow endpoints.
type CharityHandler struct {
	charityRepo    repository.CharityRepository
	submissionRepo repository.UnapprovedCharityRepository
	intakeService  service.IntakeService
	actionLogRepo  repository.ActionLogRepository
	metrics        *metrics.Metrics
}

// NewCharityHandler creates a new CharityHandler instance.
func NewCharityHandler(
	charityRepo repository.CharityRepository,
	submissionRepo repository.UnapprovedCharityRepository,
	intakeService service.IntakeService,
	actionLogRepo repository.ActionLogRepository,
	m *metrics.Metrics,
) *CharityHandler {
	return &CharityHandler{
		charityRepo:    charityRepo,
		submissionRepo: submissionRepo,
		intakeService:  intakeService,
		actionLogRepo:  actionLogRepo,
		metrics:        m,
	}
}

// CreateCharityRequest represents the charity creation payload.
type CreateCharityRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Website     *string `json:"website"`
	ImageURL    *string `json:"image_url"`
}

// DecideSubmissionRequest represents an intake decision payload.
type DecideSubmissionRequest struct {
	Status string `json:"status" binding:"required"`
}

// List godoc
// @Summary List approved charities
// @Description Pending submissions are staged in a separate table and never appear here
// @Tags charities
// @Produce json
// @Success 200 {array} models.Charity
// @Router /charities [get]
func (h *CharityHandler) List(c *gin.Context) {
	charities, err := h.charityRepo.FindAll(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, charities)
}

// Create godoc
// @Summary Create a charity
// @Tags charities
// @Accept json
// @Produce json
// @Param request body CreateCharityRequest true "Charity details"
// @Success 201 {object} models.Charity
// @Failure 400 {object} map[string]string
// @Router /charities [post]
func (h *CharityHandler) Create(c *gin.Context) {
	var req CreateCharityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	charity := &models.Charity{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		ImageURL:    req.ImageURL,
	}
	if err := h.charityRepo.Create(c.Request.Context(), charity); err != nil {
		RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, charity)
}

// Get godoc
// @Summary Get a charity
// @Tags charities
// @Produce json
// @Param id path int true "Charity ID"
// @Success 200 {object} models.Charity
// @Failure 404 {object} map[string]string
// @Router /charities/{id} [get]
func (h *CharityHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	charity, err := h.charityRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, charity)
}

// Update godoc
// @Summary Update a charity
// @Description Merge-patch: only fields present in the body are applied
// @Tags charities
// @Accept json
// @Produce json
// @Param id path int true "Charity ID"
// @Param request body repository.CharityPatch true "Fields to update"
// @Success 200 {object} models.Charity
// @Failure 404 {object} map[string]string
// @Router /charities/{id} [patch]
func (h *CharityHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch repository.CharityPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	charity, err := h.charityRepo.Update(c.Request.Context(), id, patch)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, charity)
}

// Delete godoc
// @Summary Delete a charity
// @Description Dependent donation and beneficiary rows survive with a null charity reference
// @Tags charities
// @Param id path int true "Charity ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /charities/{id} [delete]
func (h *CharityHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.charityRepo.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListSubmissions godoc
// @Summary List pending charity submissions
// @Tags intake
// @Produce json
// @Success 200 {array} models.UnapprovedCharity
// @Router /unapproved-charities [get]
func (h *CharityHandler) ListSubmissions(c *gin.Context) {
	submissions, err := h.submissionRepo.FindAll(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, submissions)
}

// CreateSubmission godoc
// @Summary Submit a charity for approval
// @Tags intake
// @Accept json
// @Produce json
// @Param request body CreateCharityRequest true "Submission details"
// @Success 201 {object} models.UnapprovedCharity
// @Failure 400 {object} map[string]string
// @Router /unapproved-charities [post]
func (h *CharityHandler) CreateSubmission(c *gin.Context) {
	var req CreateCharityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid input data")
		return
	}

	submission := &models.UnapprovedCharity{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		ImageURL:    req.ImageURL,
	}
	if err := h.submissionRepo.Create(c.Request.Context(), submission); err != nil {
		RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, submission)
}

// DecideSubmission godoc
// @Summary Approve or reject a charity submission
// @Tags intake
// @Accept json
// @Produce json
// @Param id path int true "Submission ID"
// @Param request body DecideSubmissionRequest true "Decision"
// @Success 200 {object} models.Charity
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /unapproved-charities/{id} [patch]
func (h *CharityHandler) DecideSubmission(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req DecideSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid input data")
		return
	}

	result, err := h.intakeService.Decide(c.Request.Context(), id, req.Status)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	h.metrics.IntakeDecisions.WithLabelValues(result.Status).Inc()
	_ = h.actionLogRepo.Log(c.Request.Context(), repository.ActionIntakeDecision, nil, map[string]interface{}{
		"submission_id": id,
		"status":        result.Status,
	})

	if result.Charity != nil {
		c.JSON(http.StatusOK, result.Charity)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application has been rejected!"})
}

// MoveSubmissions godoc
// @Summary Approve every pending charity submission
// @Description All-or-nothing: any failure rolls the whole batch back
// @Tags intake
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /move-unapproved-charities [post]
func (h *CharityHandler) MoveSubmissions(c *gin.Context) {
	moved, err := h.intakeService.MoveAll(c.Request.Context())
	if err != nil {
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to approve charities")
		return
	}

	_ = h.actionLogRepo.Log(c.Request.Context(), repository.ActionIntakeBulkMove, nil, map[string]interface{}{
		"moved": moved,
	})

	c.JSON(http.StatusOK, gin.H{"message": "Charities have been approved successfully"})
}
