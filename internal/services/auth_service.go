package services

import (
	"strings"
	"time"

	"avihire_backend/internal/auth"
	"avihire_backend/internal/models"
	"avihire_backend/internal/repositories"
	"avihire_backend/internal/services/dto"
	"avihire_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// maxReferralCodeAttempts bounds regeneration when a generated referral
// code collides with the unique index.
const maxReferralCodeAttempts = 3

const refreshTokenTTL = 7 * 24 * time.Hour

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	RefreshToken(refreshToken string) (*dto.LoginResponse, error)
	Logout(refreshToken string) error
}

type AuthServiceImpl struct {
	userRepo         repositories.UserRepository
	refreshTokenRepo repositories.RefreshTokenRepository
}

func NewAuthService(
	userRepo repositories.UserRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
) AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
	}
}

// Register provisions the role fields and persists the account as a single
// write. All validation runs before anything touches the store, so a
// rejected sign-up never leaves a partial account behind.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	provisioned, err := auth.Provision(auth.ProvisionInput{
		AccountType:       req.AccountType,
		BusinessName:      req.BusinessName,
		CertificateNumber: req.CertificateNumber,
		ReferralCode:      req.ReferralCode,
		Acknowledged:      req.Acknowledged,
	})
	if err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hashedPassword,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		AccountType:  req.AccountType,
		Role:         provisioned.Role,
		ReferralCode: provisioned.ReferralCode,
		ReferredBy:   provisioned.ReferredBy,
		IsVerified:   false,
	}
	if req.AccountType == models.AccountTypeBusiness {
		name := strings.TrimSpace(req.BusinessName)
		user.BusinessName = &name
	}
	if req.CertificateNumber != "" {
		cert := req.CertificateNumber
		user.CertificateNumber = &cert
	}

	if err := s.createWithReferralRetry(user); err != nil {
		return nil, err
	}

	redirect := "/user"
	if user.Role == models.UserRoleBusiness {
		redirect = "/business/dashboard"
	}

	return &dto.RegisterResponse{
		User:     buildUserResponse(user),
		Redirect: redirect,
	}, nil
}

// createWithReferralRetry inserts the account, regenerating the referral
// code a bounded number of times if it collides with an existing one. The
// insert itself is the uniqueness check; there is no read-then-write gap.
func (s *AuthServiceImpl) createWithReferralRetry(user *models.User) error {
	for attempt := 0; attempt < maxReferralCodeAttempts; attempt++ {
		err := s.userRepo.Create(user)
		if err == nil {
			return nil
		}
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return apperrors.ErrEmailAlreadyExists
		}
		if apperrors.Is(err, repositories.ErrReferralCodeTaken) && user.ReferralCode != nil {
			code := auth.GenerateReferralCode()
			user.ReferralCode = &code
			continue
		}
		return apperrors.InternalError(err)
	}
	return apperrors.ErrReferralCodeExhausted
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

func (s *AuthServiceImpl) RefreshToken(refreshToken string) (*dto.LoginResponse, error) {
	token, err := s.refreshTokenRepo.FindByToken(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if time.Now().After(token.ExpiresAt) {
		_ = s.refreshTokenRepo.DeleteByToken(refreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(token.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	// Rotate: the old refresh token dies with this exchange.
	if err := s.refreshTokenRepo.DeleteByToken(refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.issueTokens(user)
}

func (s *AuthServiceImpl) Logout(refreshToken string) error {
	return s.refreshTokenRepo.DeleteByToken(refreshToken)
}

func (s *AuthServiceImpl) issueTokens(user *models.User) (*dto.LoginResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken := uuid.NewString()
	if err := s.refreshTokenRepo.Create(&models.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         buildUserResponse(user),
	}, nil
}

func buildUserResponse(user *models.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:           user.ID,
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		AccountType:  user.AccountType,
		Role:         user.Role,
		BusinessName: user.BusinessName,
		ReferralCode: user.ReferralCode,
		IsVerified:   user.IsVerified,
	}
}
