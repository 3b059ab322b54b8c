package models

import "time"

// Application statuses.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// Application represents a funding application submitted to the platform.
type Application struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Website     *string   `json:"website"`
	ImageURL    *string   `json:"image_url"`
	SubmittedAt time.Time `json:"date_submitted" gorm:"autoCreateTime"`
	Status      string    `json:"status" gorm:"not null;default:Pending"`
}

// TableName returns the database table name for the Application model.
func (Application) TableName() string {
	return "applications"
}

// ActionLog is an audit record of a security-relevant action (login,
// logout, registration, intake decision). Writes are best effort and never
// fail the request that triggered them.
type ActionLog struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Action    string    `json:"action" gorm:"not null"`
	UserID    *int64    `json:"user_id"`
	Source    string    `json:"source" gorm:"not null"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for the ActionLog model.
func (ActionLog) TableName() string {
	return "action_logs"
}
