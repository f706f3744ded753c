package handlers

import (
	"io"
	"net/http"

	"avihire_backend/internal/middleware"
	"avihire_backend/internal/services/dto"
	"avihire_backend/internal/services/payment"
	"avihire_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const webhookBodyLimit = 1024 * 1024 // 1 MiB

type CheckoutHandler struct {
	*BaseHandler
	stripeService *payment.StripeService
}

func NewCheckoutHandler(base *BaseHandler, stripeService *payment.StripeService) *CheckoutHandler {
	return &CheckoutHandler{
		BaseHandler:   base,
		stripeService: stripeService,
	}
}

func (h *CheckoutHandler) RegisterRoutes(rg *gin.RouterGroup) {
	stripe := rg.Group("/stripe")
	{
		stripe.POST("/create-checkout-session", middleware.AuthMiddleware(), h.CreateCheckoutSession)
		// Called by Stripe, authenticated by signature instead of a token.
		stripe.POST("/webhook", h.Webhook)
	}
}

func (h *CheckoutHandler) CreateCheckoutSession(c *gin.Context) {
	var req dto.CreateCheckoutSessionRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.stripeService.CreateSession(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *CheckoutHandler) Webhook(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, webhookBodyLimit)
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Failed to read request body"))
		return
	}

	sigHeader := c.GetHeader("Stripe-Signature")
	if sigHeader == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing Stripe signature"))
		return
	}

	if err := h.stripeService.HandleWebhook(payload, sigHeader); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
