package services

import (
	"avihire_backend/internal/models"
	"avihire_backend/internal/repositories"
	"avihire_backend/internal/services/dto"
	"avihire_backend/pkg/apperrors"
)

// settingsAllowedFields is the only field set a settings update may touch.
// Everything else in the account record (role, referral provenance,
// verification state) is immutable after sign-up.
var settingsAllowedFields = map[string]string{
	"firstName":         "first_name",
	"lastName":          "last_name",
	"certificateNumber": "certificate_number",
	"referralCode":      "referral_code",
	"businessName":      "business_name",
	"industry":          "industry",
	"website":           "website",
	"phone":             "phone",
}

type UserService interface {
	GetSettings(uid string) (*dto.SettingsResponse, error)
	UpdateSettings(uid string, fields map[string]interface{}) error
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) GetSettings(uid string) (*dto.SettingsResponse, error) {
	user, err := s.userRepo.FindByID(uid)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return buildSettingsResponse(user), nil
}

// UpdateSettings applies the allow-listed subset of fields. Unknown fields
// are dropped silently, matching the permissive settings form contract.
func (s *UserServiceImpl) UpdateSettings(uid string, fields map[string]interface{}) error {
	update := make(map[string]interface{})
	for name, value := range fields {
		if column, ok := settingsAllowedFields[name]; ok {
			update[column] = value
		}
	}

	if len(update) == 0 {
		return nil
	}

	if err := s.userRepo.UpdateFields(uid, update); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func buildSettingsResponse(user *models.User) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		UID:               user.ID,
		FirstName:         user.FirstName,
		LastName:          user.LastName,
		Email:             user.Email,
		AccountType:       string(user.AccountType),
		Role:              string(user.Role),
		BusinessName:      user.BusinessName,
		CertificateNumber: user.CertificateNumber,
		ReferralCode:      user.ReferralCode,
		ReferredBy:        user.ReferredBy,
		Industry:          user.Industry,
		Website:           user.Website,
		Phone:             user.Phone,
		IsVerified:        user.IsVerified,
	}
}
