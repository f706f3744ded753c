package models

import (
	"time"

	"gorm.io/datatypes"
)

// JobAd is one posted advertisement. The ID is generated client-side at
// submission (uuid), so it can be referenced in checkout metadata before
// the payment round-trip completes.
type JobAd struct {
	ID         string `gorm:"primaryKey" json:"id"`
	BusinessID string `gorm:"not null;index" json:"businessId"`
	Title      string `gorm:"not null" json:"title"`
	Location   string `json:"location"`
	Company    string `json:"company"`
	URL        string `json:"url"`
	JobType    string `json:"jobType"`
	Tier       AdTier `gorm:"type:varchar(20);not null" json:"tier"`

	// Premium ads start unpaid and are flipped by the checkout webhook.
	IsPaid     bool `json:"isPaid"`
	IsApproved bool `json:"isApproved"`

	Tags datatypes.JSON `gorm:"type:jsonb" json:"tags,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// JobApplication is written once per submitted application and never
// updated or deleted.
type JobApplication struct {
	BaseModel
	JobID       string `gorm:"not null;index" json:"jobId"`
	JobTitle    string `json:"jobTitle"`
	Name        string `gorm:"not null" json:"name"`
	Email       string `gorm:"not null" json:"email"`
	CoverLetter string `json:"coverLetter"`
	UserID      string `gorm:"not null;index" json:"userId"`
}
