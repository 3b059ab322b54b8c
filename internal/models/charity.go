package models

import "time"

// Charity represents an approved charity able to receive donations.
//
// Rows only enter this table through registration by an admin or through the
// intake workflow promoting an UnapprovedCharity, so a public listing of this
// table never exposes a pending submission.
type Charity struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	Description string    `json:"description" gorm:"not null"`
	Website     *string   `json:"website"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// TotalDonations is computed at query time from related donation rows.
	TotalDonations float64 `json:"total_donations" gorm:"-"`

	Donations     []Donation    `json:"-" gorm:"foreignKey:CharityID;constraint:OnDelete:SET NULL"`
	Beneficiaries []Beneficiary `json:"-" gorm:"foreignKey:CharityID;constraint:OnDelete:SET NULL"`
}

// TableName returns the database table name for the Charity model.
func (Charity) TableName() string {
	return "charities"
}

// UnapprovedCharity is a staging record for a charity submission awaiting an
// intake decision. Approval moves the row into the charities table.
type UnapprovedCharity struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	Description string    `json:"description" gorm:"not null"`
	Website     *string   `json:"website"`
	ImageURL    *string   `json:"image_url"`
	SubmittedAt time.Time `json:"date_submitted" gorm:"autoCreateTime"`
}

// TableName returns the database table name for the UnapprovedCharity model.
func (UnapprovedCharity) TableName() string {
	return "unapproved_charities"
}
