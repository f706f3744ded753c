package services

import "avihire_backend/internal/services/payment"

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	AuthService   AuthService
	UserService   UserService
	AdService     AdService
	StripeService *payment.StripeService
}
