package repository

import (
	"context"
	"encoding/json"

	"github.com/Riob-a/Automated-Donation-Platform-Back-End/internal/models"
	"gorm.io/gorm"
)

// Audit action names.
const (
	ActionLoginSuccess   = "login_success"
	ActionLoginFailure   = "login_failure"
	ActionLogout         = "logout"
	ActionRegister       = "register"
	ActionIntakeDecision = "intake_decision"
	ActionIntakeBulkMove = "intake_bulk_move"
)

// ActionLogRepository records audit events.
type ActionLogRepository interface {
	Log(ctx context.Context, action string, userID *int64, details map[string]interface{}) error
}

type actionLogRepository struct {
	db     *gorm.DB
	source string
}

// NewActionLogRepository creates a new ActionLogRepository instance.
func NewActionLogRepository(db *gorm.DB, source string) ActionLogRepository {
	return &actionLogRepository{db: db, source: source}
}

func (r *actionLogRepository) Log(ctx context.Context, action string, userID *int64, details map[string]interface{}) error {
	encoded := ""
	if details != nil {
		if b, err := json.Marshal(details); err == nil {
			encoded = string(b)
		}
	}
	entry := models.ActionLog{
		Action:  action,
		UserID:  userID,
		Source:  r.source,
		Details: encoded,
	}
	if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return translate(err, "write action log")
	}
	return nil
}
