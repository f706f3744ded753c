package apperrors

import "net/http"

// Factories for errors that wrap a repository or collaborator failure.

// ErrNotFound converts a repository miss into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a duplicate write into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ExternalServiceError wraps a payment/auth collaborator failure. The caller
// sees a generic message; the cause stays in logs only.
func ExternalServiceError(err error, domain string) *AppError {
	return Wrap(err, CodeExternalServiceError, domain, "Internal server error", http.StatusInternalServerError)
}

// Predefined errors for the account domain.

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"account",
	"This email is already registered. Try logging in.",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"account",
	"Password must be at least 6 characters long",
	http.StatusBadRequest,
)

// ErrReferralCodeExhausted surfaces after bounded referral-code
// regeneration keeps colliding with the unique index.
var ErrReferralCodeExhausted = New(
	CodeConflict,
	"account",
	"Could not allocate a unique referral code",
	http.StatusConflict,
)
