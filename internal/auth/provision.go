package auth

import (
	"errors"
	"strings"

	"avihire_backend/internal/models"
)

// ProvisionInput is what the sign-up form supplies to role provisioning.
type ProvisionInput struct {
	AccountType       models.AccountType
	BusinessName      string
	CertificateNumber string
	ReferralCode      string
	Acknowledged      bool
}

// ProvisionResult holds the computed role fields. The caller persists them
// atomically with the rest of the account record; provisioning itself has
// no side effects.
type ProvisionResult struct {
	Role         models.UserRole
	ReferralCode *string
	ReferredBy   *string
}

var (
	ErrMissingBusinessName   = errors.New("business name is required for business accounts")
	ErrMissingCredential     = errors.New("enter a certificate number or referral code")
	ErrPolicyNotAcknowledged = errors.New("the FAA certificate verification policy must be acknowledged")
)

// Provision decides the account role at sign-up.
//
// Business accounts get role "business" with no referral fields. User
// accounts with a certificate number become "licensed" and receive a
// generated referral code; otherwise they become "unlicensed" and the
// supplied referral code is recorded, trimmed and uppercased, as
// provenance. Validation failures reject sign-up before anything is
// written.
func Provision(in ProvisionInput) (ProvisionResult, error) {
	if in.AccountType == models.AccountTypeBusiness {
		if strings.TrimSpace(in.BusinessName) == "" {
			return ProvisionResult{}, ErrMissingBusinessName
		}
		return ProvisionResult{Role: models.UserRoleBusiness}, nil
	}

	if in.CertificateNumber == "" && strings.TrimSpace(in.ReferralCode) == "" {
		return ProvisionResult{}, ErrMissingCredential
	}
	if !in.Acknowledged {
		return ProvisionResult{}, ErrPolicyNotAcknowledged
	}

	if in.CertificateNumber != "" {
		code := GenerateReferralCode()
		return ProvisionResult{
			Role:         models.UserRoleLicensed,
			ReferralCode: &code,
		}, nil
	}

	referredBy := strings.ToUpper(strings.TrimSpace(in.ReferralCode))
	return ProvisionResult{
		Role:       models.UserRoleUnlicensed,
		ReferredBy: &referredBy,
	}, nil
}
