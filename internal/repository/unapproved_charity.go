package repository

import (
	"context"

	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/models"
	"gorm.io/gorm"
)

// UnapprovedCharityRepository defines the interface for the charity intake
// staging table. Promote and PromoteAll own the transactional move into the
// charities table.
type UnapprovedCharityRepository interface {
	FindByID(ctx context.Context, id int64) (*models.UnapprovedCharity, error)
	FindAll(ctx context.Context) ([]models.UnapprovedCharity, error)
	Create(ctx context.Context, submission *models.UnapprovedCharity) error
	// Promote copies the submission into the charities table and removes it,
	// atomically.
	Promote(ctx context.Context, id int64) (*models.Charity, error)
	// Discard removes the submission without creating a charity.
	Discard(ctx context.Context, id int64) error
	// PromoteAll promotes every pending submission as one all-or-nothing
	// transaction; any failure leaves both tables untouched.
	PromoteAll(ctx context.Context) (int, error)
}

type unapprovedCharityRepository struct {
	db *gorm.DB
}

// NewUnapprovedCharityRepository creates a new UnapprovedCharityRepository instance.
func NewUnapprovedCharityRepository(db *gorm.DB) UnapprovedCharityRepository {
	return &unapprovedCharityRepository{db: db}
}

func (r *unapprovedCharityRepository) FindByID(ctx context.Context, id int64) (*models.UnapprovedCharity, error) {
	var submission models.UnapprovedCharity
	err := r.db.WithContext(ctx).First(&submission, id).Error
	if err != nil {
		return nil, translate(err, "find charity submission")
	}
	return &submission, nil
}

func (r *unapprovedCharityRepository) FindAll(ctx context.Context) ([]models.UnapprovedCharity, error) {
	var submissions []models.UnapprovedCharity
	if err := r.db.WithContext(ctx).Order("id").Find(&submissions).Error; err != nil {
		return nil, translate(err, "list charity submissions")
	}
	return submissions, nil
}

func (r *unapprovedCharityRepository) Create(ctx context.Context, submission *models.UnapprovedCharity) error {
	if err := r.db.WithContext(ctx).Create(submission).Error; err != nil {
		return translate(err, "create charity submission")
	}
	return nil
}

func (r *unapprovedCharityRepository) Promote(ctx context.Context, id int64) (*models.Charity, error) {
	var charity *models.Charity
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var submission models.UnapprovedCharity
		if err := tx.First(&submission, id).Error; err != nil {
			return err
		}
		promoted, err := promote(tx, &submission)
		if err != nil {
			return err
		}
		charity = promoted
		return nil
	})
	if err != nil {
		return nil, translate(err, "promote charity submission")
	}
	return charity, nil
}

func (r *unapprovedCharityRepository) Discard(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.UnapprovedCharity{}, id)
	if result.Error != nil {
		return translate(result.Error, "discard charity submission")
	}
	if result.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "discard charity submission")
	}
	return nil
}

func (r *unapprovedCharityRepository) PromoteAll(ctx context.Context) (int, error) {
	moved := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var submissions []models.UnapprovedCharity
		if err := tx.Order("id").Find(&submissions).Error; err != nil {
			return err
		}
		for i := range submissions {
			if _, err := promote(tx, &submissions[i]); err != nil {
				return err
			}
			moved++
		}
		return nil
	})
	if err != nil {
		return 0, translate(err, "promote charity submissions")
	}
	return moved, nil
}

// promote performs the two-step move inside the caller's transaction.
func promote(tx *gorm.DB, submission *models.UnapprovedCharity) (*models.Charity, error) {
	charity := &models.Charity{
		Name:        submission.Name,
		Description: submission.Description,
		Website:     submission.Website,
		ImageURL:    submission.ImageURL,
	}
	if err := tx.Create(charity).Error; err != nil {
		return nil, err
	}
	if err := tx.Delete(submission).Error; err != nil {
		return nil, err
	}
	return charity, nil
}
