package handlers

import (
	"net/http"

	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/metrics"
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/models"
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/repository"
	"github.com/gin-gonic/gin"
)

// DonationHandler handles donation endpoints.
type DonationHandler struct {
	donationRepo repository.DonationRepository
	metrics      *metrics.Metrics
}

// NewDonationHandler creates a new DonationHandler instance.
func NewDonationHandler(donationRepo repository.DonationRepository, m *metrics.Metrics) *DonationHandler {
	return &DonationHandler{donationRepo: donationRepo, metrics: m}
}

// CreateDonationRequest represents the donation creation payload. Amount and
// charity_id are required; the user reference is optional so platform
// donations can be recorded without an account.
type CreateDonationRequest struct {
	Amount    float64 `json:"amount" binding:"required"`
	CharityID int64   `json:"charity_id" binding:"required"`
	UserID    *int64  `json:"user_id"`
	Anonymous bool    `json:"anonymous"`
}

// List godoc
// @Summary List donations
// @Tags donations
// @Produce json
// @Success 200 {array} models.Donation
// @Router /donations [get]
func (h *DonationHandler) List(c *gin.Context) {
	donations, err := h.donationRepo.FindAll(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, donations)
}

// Create godoc
// @Summary Create a donation
// @Tags donations
// @Accept json
// @Produce json
// @Param request body CreateDonationRequest true "Donation details"
// @Success 201 {object} models.Donation
// @Failure 400 {object} map[string]string
// @Router /donations [post]
func (h *DonationHandler) Create(c *gin.Context) {
	var req CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "missing required fields")
		return
	}

	donation := &models.Donation{
		Amount:    req.Amount,
		CharityID: &req.CharityID,
		UserID:    req.UserID,
		Anonymous: req.Anonymous,
	}
	if err := h.donationRepo.Create(c.Request.Context(), donation); err != nil {
		RespondServiceError(c, err)
		return
	}

	h.metrics.DonationsCreated.Inc()
	c.JSON(http.StatusCreated, donation)
}

// Get godoc
// @Summary Get a donation
// @Tags donations
// @Produce json
// @Param id path int true "Donation ID"
// @Success 200 {object} models.Donation
// @Failure 404 {object} map[string]string
// @Router /donations/{id} [get]
func (h *DonationHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	donation, err := h.donationRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, donation)
}

// Delete godoc
// @Summary Delete a donation
// @Tags donations
// @Param id path int true "Donation ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /donations/{id} [delete]
func (h *DonationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.donationRepo.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
