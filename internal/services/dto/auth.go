package dto

import "avihire_backend/internal/models"

type RegisterRequest struct {
	FirstName   string             `json:"firstName" binding:"required"`
	LastName    string             `json:"lastName" binding:"required"`
	Email       string             `json:"email" binding:"required,email"`
	Password    string             `json:"password" binding:"required"`
	AccountType models.AccountType `json:"accountType" binding:"required,oneof=user business"`

	// Business accounts
	BusinessName string `json:"businessName"`

	// Aviation-professional accounts
	CertificateNumber string `json:"certificateNumber"`
	ReferralCode      string `json:"referralCode"`
	Acknowledged      bool   `json:"acknowledged"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type UserResponse struct {
	ID           string             `json:"id"`
	Email        string             `json:"email"`
	FirstName    string             `json:"firstName"`
	LastName     string             `json:"lastName"`
	AccountType  models.AccountType `json:"accountType"`
	Role         models.UserRole    `json:"role"`
	BusinessName *string            `json:"businessName"`
	ReferralCode *string            `json:"referralCode"`
	IsVerified   bool               `json:"isVerified"`
}

type RegisterResponse struct {
	User *UserResponse `json:"user"`

	// Where the client should navigate after sign-up, by role.
	Redirect string `json:"redirect"`
}

type LoginResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	User         *UserResponse `json:"user"`
}
