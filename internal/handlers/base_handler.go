package handlers

import (
	"avihire_backend/internal/logger"
	"avihire_backend/internal/validator"
	"avihire_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{validator: v}
}

// BindAndValidateJSON binds the request body and runs struct validation.
// On failure it writes the error response and returns false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		logger.Warn("failed to bind request body", "error", err.Error(), "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.Warn("validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// HandleServiceError translates a service error into an HTTP response.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		if appErr.HTTPCode < 500 {
			logger.Warn("service error", "error", appErr.Message, "path", c.Request.URL.Path)
		}
		apperrors.HandleError(c, appErr)
		return
	}

	logger.WithError(err).Error("internal server error", "path", c.Request.URL.Path)
	apperrors.HandleError(c, apperrors.InternalError(err))
}
