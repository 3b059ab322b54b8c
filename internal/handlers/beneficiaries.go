package handlers

import (
	"net/http"

	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/models"
	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/repository"
	"github.com/gin-gonic/gin"
)

// BeneficiaryHandler handles beneficiary endpoints.
type BeneficiaryHandler struct {
	beneficiaryRepo repository.BeneficiaryRepository
}

// NewBeneficiaryHandler creates a new BeneficiaryHandler instance.
func NewBeneficiaryHandler(beneficiaryRepo repository.BeneficiaryRepository) *BeneficiaryHandler {
	return &BeneficiaryHandler{beneficiaryRepo: beneficiaryRepo}
}

// CreateBeneficiaryRequest represents the beneficiary creation payload.
type CreateBeneficiaryRequest struct {
	Name      string  `json:"name" binding:"required"`
	Story     *string `json:"story"`
	ImageURL  *string `json:"image_url"`
	CharityID *int64  `json:"charity_id" binding:"required"`
}

// List godoc
// @Summary List beneficiaries
// @Tags beneficiaries
// @Produce json
// @Success 200 {array} models.Beneficiary
// @Router /beneficiaries [get]
func (h *BeneficiaryHandler) List(c *gin.Context) {
	beneficiaries, err := h.beneficiaryRepo.FindAll(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, beneficiaries)
}

// Create godoc
// @Summary Create a beneficiary
// @Tags beneficiaries
// @Accept json
// @Produce json
// @Param request body CreateBeneficiaryRequest true "Beneficiary details"
// @Success 201 {object} models.Beneficiary
// @Failure 400 {object} map[string]string
// @Router /beneficiaries [post]
func (h *BeneficiaryHandler) Create(c *gin.Context) {
	var req CreateBeneficiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	beneficiary := &models.Beneficiary{
		Name:      req.Name,
		Story:     req.Story,
		ImageURL:  req.ImageURL,
		CharityID: req.CharityID,
	}
	if err := h.beneficiaryRepo.Create(c.Request.Context(), beneficiary); err != nil {
		RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, beneficiary)
}

// Get godoc
// @Summary Get a beneficiary
// @Tags beneficiaries
// @Produce json
// @Param id path int true "Beneficiary ID"
// @Success 200 {object} models.Beneficiary
// @Failure 404 {object} map[string]string
// @Router /beneficiaries/{id} [get]
func (h *BeneficiaryHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	beneficiary, err := h.beneficiaryRepo.FindByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, beneficiary)
}

// Update godoc
// @Summary Update a beneficiary
// @Description Merge-patch: only fields present in the body are applied
// @Tags beneficiaries
// @Accept json
// @Produce json
// @Param id path int true "Beneficiary ID"
// @Param request body repository.BeneficiaryPatch true "Fields to update"
// @Success 200 {object} models.Beneficiary
// @Failure 404 {object} map[string]string
// @Router /beneficiaries/{id} [patch]
func (h *BeneficiaryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch repository.BeneficiaryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	beneficiary, err := h.beneficiaryRepo.Update(c.Request.Context(), id, patch)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, beneficiary)
}

// Delete godoc
// @Summary Delete a beneficiary
// @Tags beneficiaries
// @Param id path int true "Beneficiary ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /beneficiaries/{id} [delete]
func (h *BeneficiaryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.beneficiaryRepo.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
