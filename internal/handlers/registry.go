package handlers

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	AuthHandler      *AuthHandler
	SettingsHandler  *SettingsHandler
	AdHandler        *AdHandler
	DashboardHandler *DashboardHandler
	CheckoutHandler  *CheckoutHandler
}
