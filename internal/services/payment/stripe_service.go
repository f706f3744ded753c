package payment

import (
	"encoding/json"
	"errors"
	"strings"

	"avihire_backend/internal/config"
	"avihire_backend/internal/logger"
	"avihire_backend/internal/models"
	"avihire_backend/internal/repositories"
	"avihire_backend/internal/services/dto"
	"avihire_backend/pkg/apperrors"

	stripe "github.com/stripe/stripe-go/v82"
	stripesession "github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"
)

const metadataAdID = "ad_id"

// StripeService creates checkout sessions and consumes completion
// webhooks. Session creation is single-attempt: a collaborator failure
// surfaces as a generic server error with no retry.
type StripeService struct {
	cfg    *config.Config
	adRepo repositories.JobAdRepository

	// injectable for tests; defaults to the live Stripe client
	createCheckoutSession func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

func NewStripeService(cfg *config.Config, adRepo repositories.JobAdRepository) *StripeService {
	stripe.Key = strings.TrimSpace(cfg.Stripe.SecretKey)
	return &StripeService{
		cfg:                   cfg,
		adRepo:                adRepo,
		createCheckoutSession: stripesession.New,
	}
}

// CreateSession builds a checkout session for either a premium ad upgrade
// (fixed price, ad id carried in metadata) or an itemized cart.
func (s *StripeService) CreateSession(req *dto.CreateCheckoutSessionRequest) (*dto.CreateCheckoutSessionResponse, error) {
	params, err := s.buildParams(req)
	if err != nil {
		return nil, err
	}

	session, err := s.createCheckoutSession(params)
	if err != nil || session == nil {
		logger.Error("checkout session creation failed", "error", err)
		return nil, apperrors.ExternalServiceError(err, "payment")
	}

	return &dto.CreateCheckoutSessionResponse{
		SessionID: session.ID,
		URL:       session.URL,
	}, nil
}

func (s *StripeService) buildParams(req *dto.CreateCheckoutSessionRequest) (*stripe.CheckoutSessionParams, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		SuccessURL:         stripe.String(s.cfg.Stripe.SuccessURL),
		CancelURL:          stripe.String(s.cfg.Stripe.CancelURL),
	}

	if req.AdID != "" {
		ad, err := s.adRepo.FindByID(req.AdID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrAdNotFound) {
				return nil, apperrors.ErrNotFound(err)
			}
			return nil, apperrors.InternalError(err)
		}
		if ad.Tier != models.AdTierPremium {
			return nil, apperrors.NewBadRequestError("Only premium ads require checkout")
		}
		if s.cfg.Stripe.PremiumPriceID == "" {
			return nil, apperrors.ExternalServiceError(errors.New("premium price not configured"), "payment")
		}

		params.LineItems = []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(s.cfg.Stripe.PremiumPriceID),
				Quantity: stripe.Int64(1),
			},
		}
		params.Metadata = map[string]string{metadataAdID: ad.ID}
		return params, nil
	}

	if len(req.Items) == 0 {
		return nil, apperrors.NewBadRequestError("Either adId or items is required")
	}
	if req.Mode == "subscription" {
		params.Mode = stripe.String(string(stripe.CheckoutSessionModeSubscription))
	}

	for _, item := range req.Items {
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(string(stripe.CurrencyUSD)),
				UnitAmount: stripe.Int64(item.Amount),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Name),
				},
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}
	return params, nil
}

// checkoutSession is the minimal slice of a checkout.session event we need.
type checkoutSession struct {
	ID       string            `json:"id"`
	Metadata map[string]string `json:"metadata"`
}

// HandleWebhook verifies the Stripe signature and, on
// checkout.session.completed, marks the correlated ad paid and approved.
// Unhandled event types are acknowledged and ignored.
func (s *StripeService) HandleWebhook(payload []byte, sigHeader string) error {
	event, err := webhook.ConstructEventWithOptions(payload, sigHeader, s.cfg.Stripe.WebhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return apperrors.NewBadRequestError("Invalid Stripe signature")
	}

	if event.Type != "checkout.session.completed" {
		logger.Debug("stripe webhook ignored", "type", string(event.Type), "event_id", event.ID)
		return nil
	}

	var session checkoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return apperrors.InternalError(err)
	}

	adID := strings.TrimSpace(session.Metadata[metadataAdID])
	if adID == "" {
		logger.Warn("checkout completed without ad correlation", "session_id", session.ID)
		return nil
	}

	if err := s.adRepo.MarkPaid(adID); err != nil {
		if apperrors.Is(err, repositories.ErrAdNotFound) {
			logger.Warn("checkout completed for unknown ad", "ad_id", adID, "session_id", session.ID)
			return nil
		}
		return apperrors.InternalError(err)
	}

	logger.Info("premium ad activated", "ad_id", adID, "session_id", session.ID)
	return nil
}
