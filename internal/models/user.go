package models

import "time"

type User struct {
	BaseModel
	Email        string      `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string      `gorm:"not null" json:"-"`
	FirstName    string      `gorm:"not null" json:"firstName"`
	LastName     string      `gorm:"not null" json:"lastName"`
	AccountType  AccountType `gorm:"type:varchar(20);not null" json:"accountType"`
	Role         UserRole    `gorm:"type:varchar(20);not null" json:"role"`

	// Business accounts only.
	BusinessName *string `json:"businessName"`

	// Aviation-professional accounts only. ReferralCode is generated for
	// licensed accounts; ReferredBy records the code an unlicensed account
	// signed up with.
	CertificateNumber *string `json:"certificateNumber"`
	ReferralCode      *string `gorm:"uniqueIndex" json:"referralCode"`
	ReferredBy        *string `json:"referredBy"`

	// Settings-editable profile fields.
	Industry *string `json:"industry"`
	Website  *string `json:"website"`
	Phone    *string `json:"phone"`

	IsVerified bool `gorm:"default:false" json:"isVerified"`

	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
