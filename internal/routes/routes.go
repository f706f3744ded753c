package routes

import (
	"avihire_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the whole HTTP surface under /api.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.SettingsHandler.RegisterRoutes(api)
		appHandlers.AdHandler.RegisterRoutes(api)
		appHandlers.DashboardHandler.RegisterRoutes(api)
		appHandlers.CheckoutHandler.RegisterRoutes(api)
	}
}
