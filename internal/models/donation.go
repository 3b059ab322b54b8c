package models

import "time"

// Donation represents a single contribution to a charity. Both foreign keys
// are nullable: anonymous platform donations have no user, and deleting a
// charity nulls the reference so donation history survives.
type Donation struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Amount    float64   `json:"amount" gorm:"not null"`
	Anonymous bool      `json:"anonymous" gorm:"not null;default:false"`
	DonatedAt time.Time `json:"donation_date" gorm:"autoCreateTime"`
	UserID    *int64    `json:"user_id"`
	CharityID *int64    `json:"charity_id"`
}

// TableName returns the database table name for the Donation model.
func (Donation) TableName() string {
	return "donations"
}

// Beneficiary represents a person supported by a charity.
type Beneficiary struct {
	ID        int64   `json:"id" gorm:"primaryKey"`
	Name      string  `json:"name" gorm:"not null"`
	Story     *string `json:"story"`
	ImageURL  *string `json:"image_url"`
	CharityID *int64  `json:"charity_id"`
}

// TableName returns the database table name for the Beneficiary model.
func (Beneficiary) TableName() string {
	return "beneficiaries"
}
