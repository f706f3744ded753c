package dto

// CheckoutItem is one line item of an itemized cart.
type CheckoutItem struct {
	Name     string `json:"name" binding:"required"`
	Amount   int64  `json:"amount" binding:"required,min=1"` // cents
	Quantity int64  `json:"quantity" binding:"required,min=1"`
}

// CreateCheckoutSessionRequest carries either an ad ID (premium upgrade at
// the configured price) or an itemized cart.
type CreateCheckoutSessionRequest struct {
	AdID  string         `json:"adId"`
	Items []CheckoutItem `json:"items"`

	// "payment" (default) or "subscription"; only meaningful for carts.
	Mode string `json:"mode" binding:"omitempty,oneof=payment subscription"`
}

type CreateCheckoutSessionResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}
