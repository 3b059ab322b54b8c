package repository

import (
	"context"

	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/models"
	"gorm.io/gorm"
)

// AdminRepository defines the interface for admin data operations.
type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
	Create(ctx context.Context, admin *models.Admin) error
}

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new AdminRepository instance.
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error
	if err != nil {
		return nil, translate(err, "find admin by email")
	}
	return &admin, nil
}

func (r *adminRepository) Create(ctx context.Context, admin *models.Admin) error {
	if err := r.db.WithContext(ctx).Create(admin).Error; err != nil {
		return translate(err, "create admin")
	}
	return nil
}
