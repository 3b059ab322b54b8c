package repository

import (
	"context"

	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/models"
	"gorm.io/gorm"
)

// CharityPatch carries the optional fields of a charity merge-patch. Only
// non-nil fields are applied; absent fields leave stored values untouched.
type CharityPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Website     *string `json:"website"`
	ImageURL    *string `json:"image_url"`
}

// CharityRepository defines the interface for charity data operations.
type CharityRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Charity, error)
	FindAll(ctx context.Context) ([]models.Charity, error)
	Create(ctx context.Context, charity *models.Charity) error
	Update(ctx context.Context, id int64, patch CharityPatch) (*models.Charity, error)
	Delete(ctx context.Context, id int64) error
}

type charityRepository struct {
	db *gorm.DB
}

// NewCharityRepository creates a new CharityRepository instance.
func NewCharityRepository(db *gorm.DB) CharityRepository {
	return &charityRepository{db: db}
}

func (r *charityRepository) FindByID(ctx context.Context, id int64) (*models.Charity, error) {
	var charity models.Charity
	err := r.db.WithContext(ctx).First(&charity, id).Error
	if err != nil {
		return nil, translate(err, "find charity by id")
	}
	if err := r.fillTotal(ctx, &charity); err != nil {
		return nil, err
	}
	return &charity, nil
}

func (r *charityRepository) FindAll(ctx context.Context) ([]models.Charity, error) {
	var charities []models.Charity
	if err := r.db.WithContext(ctx).Order("id").Find(&charities).Error; err != nil {
		return nil, translate(err, "list charities")
	}
	for i := range charities {
		if err := r.fillTotal(ctx, &charities[i]); err != nil {
			return nil, err
		}
	}
	return charities, nil
}

func (r *charityRepository) Create(ctx context.Context, charity *models.Charity) error {
	if err := r.db.WithContext(ctx).Create(charity).Error; err != nil {
		return translate(err, "create charity")
	}
	return nil
}

func (r *charityRepository) Update(ctx context.Context, id int64, patch CharityPatch) (*models.Charity, error) {
	var charity models.Charity
	if err := r.db.WithContext(ctx).First(&charity, id).Error; err != nil {
		return nil, translate(err, "update charity")
	}

	if patch.Name != nil {
		charity.Name = *patch.Name
	}
	if patch.Description != nil {
		charity.Description = *patch.Description
	}
	if patch.Website != nil {
		charity.Website = patch.Website
	}
	if patch.ImageURL != nil {
		charity.ImageURL = patch.ImageURL
	}

	if err := r.db.WithContext(ctx).Save(&charity).Error; err != nil {
		return nil, translate(err, "update charity")
	}
	if err := r.fillTotal(ctx, &charity); err != nil {
		return nil, err
	}
	return &charity, nil
}

// Delete removes a charity and nulls the charity reference on dependent
// donation and beneficiary rows, in one transaction, so donation history
// survives charity removal.
func (r *charityRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var charity models.Charity
		if err := tx.First(&charity, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Donation{}).
			Where("charity_id = ?", id).
			Update("charity_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Beneficiary{}).
			Where("charity_id = ?", id).
			Update("charity_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&charity).Error
	})
	return translate(err, "delete charity")
}

// fillTotal computes the charity's donation total at query time, 0 when the
// charity has no donations.
func (r *charityRepository) fillTotal(ctx context.Context, charity *models.Charity) error {
	var total float64
	err := r.db.WithContext(ctx).Model(&models.Donation{}).
		Where("charity_id = ?", charity.ID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return translate(err, "sum charity donations")
	}
	charity.TotalDonations = total
	return nil
}
