package repository

import (
	"context"

	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/models"
	"gorm.io/gorm"
)

// BeneficiaryPatch carries the optional fields of a beneficiary merge-patch.
type BeneficiaryPatch struct {
	Name     *string `json:"name"`
	Story    *string `json:"story"`
	ImageURL *string `json:"image_url"`
}

// BeneficiaryRepository defines the interface for beneficiary data operations.
type BeneficiaryRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Beneficiary, error)
	FindAll(ctx context.Context) ([]models.Beneficiary, error)
	Create(ctx context.Context, beneficiary *models.Beneficiary) error
	Update(ctx context.Context, id int64, patch BeneficiaryPatch) (*models.Beneficiary, error)
	Delete(ctx context.Context, id int64) error
}

type beneficiaryRepository struct {
	db *gorm.DB
}

// NewBeneficiaryRepository creates a new BeneficiaryRepository instance.
func NewBeneficiaryRepository(db *gorm.DB) BeneficiaryRepository {
	return &beneficiaryRepository{db: db}
}

func (r *beneficiaryRepository) FindByID(ctx context.Context, id int64) (*models.Beneficiary, error) {
	var beneficiary models.Beneficiary
	err := r.db.WithContext(ctx).First(&beneficiary, id).Error
	if err != nil {
		return nil, translate(err, "find beneficiary by id")
	}
	return &beneficiary, nil
}

func (r *beneficiaryRepository) FindAll(ctx context.Context) ([]models.Beneficiary, error) {
	var beneficiaries []models.Beneficiary
	if err := r.db.WithContext(ctx).Order("id").Find(&beneficiaries).Error; err != nil {
		return nil, translate(err, "list beneficiaries")
	}
	return beneficiaries, nil
}

func (r *beneficiaryRepository) Create(ctx context.Context, beneficiary *models.Beneficiary) error {
	if err := r.db.WithContext(ctx).Create(beneficiary).Error; err != nil {
		return translate(err, "create beneficiary")
	}
	return nil
}

func (r *beneficiaryRepository) Update(ctx context.Context, id int64, patch BeneficiaryPatch) (*models.Beneficiary, error) {
	var beneficiary models.Beneficiary
	if err := r.db.WithContext(ctx).First(&beneficiary, id).Error; err != nil {
		return nil, translate(err, "update beneficiary")
	}

	if patch.Name != nil {
		beneficiary.Name = *patch.Name
	}
	if patch.Story != nil {
		beneficiary.Story = patch.Story
	}
	if patch.ImageURL != nil {
		beneficiary.ImageURL = patch.ImageURL
	}

	if err := r.db.WithContext(ctx).Save(&beneficiary).Error; err != nil {
		return nil, translate(err, "update beneficiary")
	}
	return &beneficiary, nil
}

func (r *beneficiaryRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Beneficiary{}, id)
	if result.Error != nil {
		return translate(result.Error, "delete beneficiary")
	}
	if result.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "delete beneficiary")
	}
	return nil
}
