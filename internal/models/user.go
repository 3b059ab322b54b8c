// Package models contains data models for the donation platform.
package models

import "time"

// User represents a registered donor account.
type User struct {
	ID           int64      `json:"id" gorm:"primaryKey"`
	Username     string     `json:"username" gorm:"uniqueIndex;not null"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"not null"`
	IsAdmin      bool       `json:"is_admin" gorm:"not null;default:false"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Donations    []Donation `json:"-" gorm:"foreignKey:UserID"`
}

// TableName returns the database table name for the User model.
func (User) TableName() string {
	return "users"
}

// Admin represents a platform administrator. Admins live in their own table
// and share the uniqueness rules of users.
type Admin struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName returns the database table name for the Admin model.
func (Admin) TableName() string {
	return "admins"
}
