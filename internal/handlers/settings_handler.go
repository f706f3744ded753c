package handlers

import (
	"net/http"

	"avihire_backend/internal/services"
	"avihire_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// SettingsHandler serves the account settings surface:
// GET  /api/settings?uid=<id>  -> account fields
// POST /api/settings           -> partial update of allow-listed fields
type SettingsHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewSettingsHandler(base *BaseHandler, userService services.UserService) *SettingsHandler {
	return &SettingsHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *SettingsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/settings", h.GetSettings)
	rg.POST("/settings", h.UpdateSettings)
}

func (h *SettingsHandler) GetSettings(c *gin.Context) {
	uid := c.Query("uid")
	if uid == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing UID"))
		return
	}

	settings, err := h.userService.GetSettings(uid)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return
	}

	uid, _ := body["uid"].(string)
	if uid == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing UID"))
		return
	}
	delete(body, "uid")

	if err := h.userService.UpdateSettings(uid, body); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
