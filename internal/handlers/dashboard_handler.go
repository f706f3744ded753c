package handlers

import (
	"net/http"

	"avihire_backend/internal/middleware"
	"avihire_backend/internal/models"
	"avihire_backend/internal/repositories"
	"avihire_backend/internal/services"
	"avihire_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the role-scoped dashboards. Role verification
// happens in the guard middleware; by the time a handler runs, the account
// record has been re-read and checked for this request.
type DashboardHandler struct {
	*BaseHandler
	adService services.AdService
	userRepo  repositories.UserRepository
}

func NewDashboardHandler(base *BaseHandler, adService services.AdService, userRepo repositories.UserRepository) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler: base,
		adService:   adService,
		userRepo:    userRepo,
	}
}

func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	dashboard := rg.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware())
	{
		dashboard.GET("/business",
			middleware.DashboardGuard(h.userRepo, models.UserRoleBusiness),
			h.Dashboard,
		)
		dashboard.GET("/user",
			middleware.DashboardGuard(h.userRepo, models.UserRoleLicensed, models.UserRoleUnlicensed),
			h.Dashboard,
		)
	}
}

func (h *DashboardHandler) Dashboard(c *gin.Context) {
	user := middleware.GetVerifiedUser(c)
	if user == nil {
		apperrors.HandleError(c, apperrors.NewForbiddenError("Access denied"))
		return
	}

	response, err := h.adService.Dashboard(user)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
