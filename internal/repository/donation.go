package repository

import (
	"context"

	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/models"
	"gorm.io/gorm"
)

// DonationRepository defines the interface for donation data operations.
type DonationRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Donation, error)
	FindAll(ctx context.Context) ([]models.Donation, error)
	Create(ctx context.Context, donation *models.Donation) error
	Delete(ctx context.Context, id int64) error
}

type donationRepository struct {
	db *gorm.DB
}

// NewDonationRepository creates a new DonationRepository instance.
func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) FindByID(ctx context.Context, id int64) (*models.Donation, error) {
	var donation models.Donation
	err := r.db.WithContext(ctx).First(&donation, id).Error
	if err != nil {
		return nil, translate(err, "find donation by id")
	}
	return &donation, nil
}

func (r *donationRepository) FindAll(ctx context.Context) ([]models.Donation, error) {
	var donations []models.Donation
	if err := r.db.WithContext(ctx).Order("id").Find(&donations).Error; err != nil {
		return nil, translate(err, "list donations")
	}
	return donations, nil
}

func (r *donationRepository) Create(ctx context.Context, donation *models.Donation) error {
	if err := r.db.WithContext(ctx).Create(donation).Error; err != nil {
		return translate(err, "create donation")
	}
	return nil
}

func (r *donationRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Donation{}, id)
	if result.Error != nil {
		return translate(result.Error, "delete donation")
	}
	if result.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "delete donation")
	}
	return nil
}
