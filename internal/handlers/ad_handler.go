package handlers

import (
	"net/http"

	"avihire_backend/internal/middleware"
	"avihire_backend/internal/models"
	"avihire_backend/internal/repositories"
	"avihire_backend/internal/services"
	"avihire_backend/internal/services/dto"
	"avihire_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AdHandler struct {
	*BaseHandler
	adService services.AdService
	userRepo  repositories.UserRepository
}

func NewAdHandler(base *BaseHandler, adService services.AdService, userRepo repositories.UserRepository) *AdHandler {
	return &AdHandler{
		BaseHandler: base,
		adService:   adService,
		userRepo:    userRepo,
	}
}

func (h *AdHandler) RegisterRoutes(rg *gin.RouterGroup) {
	// Posting and listing ads is a business capability.
	ads := rg.Group("/ads")
	ads.Use(middleware.AuthMiddleware())
	ads.Use(middleware.DashboardGuard(h.userRepo, models.UserRoleBusiness))
	{
		ads.POST("", h.CreateAd)
		ads.GET("", h.ListAds)
	}

	// Public job search and view; applying requires a signed-in
	// professional, who can also list their own applications.
	rg.GET("/jobs", h.SearchJobs)
	rg.GET("/jobs/:id", h.GetJob)
	rg.POST("/jobs/:id/apply", middleware.AuthMiddleware(), h.Apply)
	rg.GET("/applications", middleware.AuthMiddleware(), h.ListApplications)
}

func (h *AdHandler) SearchJobs(c *gin.Context) {
	var req dto.JobSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid search parameters: "+err.Error()))
		return
	}

	jobs, err := h.adService.SearchJobs(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (h *AdHandler) CreateAd(c *gin.Context) {
	var req dto.CreateAdRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	businessID := middleware.GetUserID(c)
	response, err := h.adService.CreateAd(businessID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *AdHandler) ListAds(c *gin.Context) {
	ads, err := h.adService.ListOwnerAds(middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ads": ads})
}

func (h *AdHandler) GetJob(c *gin.Context) {
	ad, err := h.adService.GetJob(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ad)
}

func (h *AdHandler) Apply(c *gin.Context) {
	var req dto.ApplyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	userID := middleware.GetUserID(c)
	if userID == "" {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return
	}

	application, err := h.adService.Apply(userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

func (h *AdHandler) ListApplications(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return
	}

	applications, err := h.adService.ListApplications(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": applications})
}
