package repository

import (
	"context"

	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/models"
	"gorm.io/gorm"
)

// ApplicationPatch carries the optional fields of an application merge-patch.
type ApplicationPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Website     *string `json:"website"`
	ImageURL    *string `json:"image_url"`
	Status      *string `json:"status"`
}

// ApplicationRepository defines the interface for funding-application data operations.
type ApplicationRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Application, error)
	FindAll(ctx context.Context) ([]models.Application, error)
	Create(ctx context.Context, application *models.Application) error
	Update(ctx context.Context, id int64, patch ApplicationPatch) (*models.Application, error)
	Delete(ctx context.Context, id int64) error
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new ApplicationRepository instance.
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) FindByID(ctx context.Context, id int64) (*models.Application, error) {
	var application models.Application
	err := r.db.WithContext(ctx).First(&application, id).Error
	if err != nil {
		return nil, translate(err, "find application by id")
	}
	return &application, nil
}

func (r *applicationRepository) FindAll(ctx context.Context) ([]models.Application, error) {
	var applications []models.Application
	if err := r.db.WithContext(ctx).Order("id").Find(&applications).Error; err != nil {
		return nil, translate(err, "list applications")
	}
	return applications, nil
}

func (r *applicationRepository) Create(ctx context.Context, application *models.Application) error {
	if err := r.db.WithContext(ctx).Create(application).Error; err != nil {
		return translate(err, "create application")
	}
	return nil
}

func (r *applicationRepository) Update(ctx context.Context, id int64, patch ApplicationPatch) (*models.Application, error) {
	var application models.Application
	if err := r.db.WithContext(ctx).First(&application, id).Error; err != nil {
		return nil, translate(err, "update application")
	}

	if patch.Name != nil {
		application.Name = *patch.Name
	}
	if patch.Description != nil {
		application.Description = *patch.Description
	}
	if patch.Website != nil {
		application.Website = patch.Website
	}
	if patch.ImageURL != nil {
		application.ImageURL = patch.ImageURL
	}
	if patch.Status != nil {
		application.Status = *patch.Status
	}

	if err := r.db.WithContext(ctx).Save(&application).Error; err != nil {
		return nil, translate(err, "update application")
	}
	return &application, nil
}

func (r *applicationRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Application{}, id)
	if result.Error != nil {
		return translate(result.Error, "delete application")
	}
	if result.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "delete application")
	}
	return nil
}
