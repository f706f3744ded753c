package auth

import "crypto/rand"

const referralCodeLength = 8

const referralAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateReferralCode returns an 8-character uppercase base-36 code.
// Uniqueness is enforced by the users.referral_code unique index, not here;
// callers retry on collision.
func GenerateReferralCode() string {
	b := make([]byte, referralCodeLength)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	for i := range b {
		b[i] = referralAlphabet[int(b[i])%len(referralAlphabet)]
	}
	return string(b)
}
