package models

type AccountType string
type UserRole string
type AdTier string

const (
	AccountTypeUser     AccountType = "user"
	AccountTypeBusiness AccountType = "business"

	// Licensed professionals hold an FAA certificate; unlicensed ones sign
	// up with a referral code from a licensed account.
	UserRoleLicensed   UserRole = "licensed"
	UserRoleUnlicensed UserRole = "unlicensed"
	UserRoleBusiness   UserRole = "business"

	AdTierRegular AdTier = "regular"
	AdTierPremium AdTier = "premium"
)

// ValidAdTier reports whether t is a known tier.
func ValidAdTier(t AdTier) bool {
	return t == AdTierRegular || t == AdTierPremium
}
