package dto

// SettingsResponse is the account view returned by GET /api/settings.
type SettingsResponse struct {
	UID               string  `json:"uid"`
	FirstName         string  `json:"firstName"`
	LastName          string  `json:"lastName"`
	Email             string  `json:"email"`
	AccountType       string  `json:"accountType"`
	Role              string  `json:"role"`
	BusinessName      *string `json:"businessName"`
	CertificateNumber *string `json:"certificateNumber"`
	ReferralCode      *string `json:"referralCode"`
	ReferredBy        *string `json:"referredBy"`
	Industry          *string `json:"industry"`
	Website           *string `json:"website"`
	Phone             *string `json:"phone"`
	IsVerified        bool    `json:"isVerified"`
}
