package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"avihire_backend/internal/config"
	"avihire_backend/internal/models"
	"avihire_backend/internal/repositories"
	"avihire_backend/internal/services/dto"
	"avihire_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	stripe "github.com/stripe/stripe-go/v82"
)

const testWebhookSecret = "whsec_test"

type fakeAdRepo struct {
	ads map[string]*models.JobAd

	markPaidErr error
}

func newFakeAdRepo() *fakeAdRepo {
	return &fakeAdRepo{ads: map[string]*models.JobAd{}}
}

func (f *fakeAdRepo) Create(ad *models.JobAd) error { return nil }

func (f *fakeAdRepo) FindByID(id string) (*models.JobAd, error) {
	if ad, ok := f.ads[id]; ok {
		return ad, nil
	}
	return nil, repositories.ErrAdNotFound
}

func (f *fakeAdRepo) FindByBusinessID(businessID string) ([]models.JobAd, error) {
	return nil, nil
}

func (f *fakeAdRepo) Search(repositories.JobSearchFilter) ([]models.JobAd, error) {
	return nil, nil
}

func (f *fakeAdRepo) MarkPaid(id string) error {
	if f.markPaidErr != nil {
		return f.markPaidErr
	}
	ad, ok := f.ads[id]
	if !ok {
		return repositories.ErrAdNotFound
	}
	ad.IsPaid = true
	ad.IsApproved = true
	return nil
}

func testStripeConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Stripe.SecretKey = "sk_test_x"
	cfg.Stripe.WebhookSecret = testWebhookSecret
	cfg.Stripe.PremiumPriceID = "price_premium"
	cfg.Stripe.SuccessURL = "https://app.test/business/dashboard?checkout=success"
	cfg.Stripe.CancelURL = "https://app.test/business/dashboard?checkout=cancelled"
	return cfg
}

func newTestService(adRepo *fakeAdRepo, create func(*stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)) *StripeService {
	svc := NewStripeService(testStripeConfig(), adRepo)
	svc.createCheckoutSession = create
	return svc
}

func TestCreateSession_PremiumAd(t *testing.T) {
	adRepo := newFakeAdRepo()
	adRepo.ads["ad-1"] = &models.JobAd{ID: "ad-1", Tier: models.AdTierPremium}

	var captured *stripe.CheckoutSessionParams
	svc := newTestService(adRepo, func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
		captured = params
		return &stripe.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.stripe.test/cs_test_1"}, nil
	})

	res, err := svc.CreateSession(&dto.CreateCheckoutSessionRequest{AdID: "ad-1"})

	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", res.SessionID)
	assert.Equal(t, "https://checkout.stripe.test/cs_test_1", res.URL)

	require.NotNil(t, captured)
	assert.Equal(t, string(stripe.CheckoutSessionModePayment), *captured.Mode)
	require.Len(t, captured.LineItems, 1)
	assert.Equal(t, "price_premium", *captured.LineItems[0].Price)
	assert.Equal(t, "ad-1", captured.Metadata["ad_id"])
	assert.Equal(t, "https://app.test/business/dashboard?checkout=success", *captured.SuccessURL)
}

func TestCreateSession_RegularAdRejected(t *testing.T) {
	adRepo := newFakeAdRepo()
	adRepo.ads["ad-1"] = &models.JobAd{ID: "ad-1", Tier: models.AdTierRegular}
	svc := newTestService(adRepo, func(*stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
		t.Fatal("no session should be created for a regular ad")
		return nil, nil
	})

	_, err := svc.CreateSession(&dto.CreateCheckoutSessionRequest{AdID: "ad-1"})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
}

func TestCreateSession_UnknownAd(t *testing.T) {
	svc := newTestService(newFakeAdRepo(), func(*stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
		return nil, nil
	})

	_, err := svc.CreateSession(&dto.CreateCheckoutSessionRequest{AdID: "missing"})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestCreateSession_CollaboratorFailureIsGeneric(t *testing.T) {
	adRepo := newFakeAdRepo()
	adRepo.ads["ad-1"] = &models.JobAd{ID: "ad-1", Tier: models.AdTierPremium}
	svc := newTestService(adRepo, func(*stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
		return nil, errors.New("stripe: connection reset")
	})

	_, err := svc.CreateSession(&dto.CreateCheckoutSessionRequest{AdID: "ad-1"})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode)
	assert.Equal(t, apperrors.CodeExternalServiceError, appErr.Code)
	// The upstream cause must not leak into the client-facing message.
	assert.Equal(t, "Internal server error", appErr.Message)
}

func TestCreateSession_Cart(t *testing.T) {
	var captured *stripe.CheckoutSessionParams
	svc := newTestService(newFakeAdRepo(), func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
		captured = params
		return &stripe.CheckoutSession{ID: "cs_cart", URL: "https://checkout.stripe.test/cs_cart"}, nil
	})

	_, err := svc.CreateSession(&dto.CreateCheckoutSessionRequest{
		Items: []dto.CheckoutItem{
			{Name: "Premium job ad", Amount: 2500, Quantity: 1},
			{Name: "Featured badge", Amount: 500, Quantity: 2},
		},
	})

	require.NoError(t, err)
	require.Len(t, captured.LineItems, 2)
	assert.Equal(t, int64(2500), *captured.LineItems[0].PriceData.UnitAmount)
	assert.Equal(t, "Premium job ad", *captured.LineItems[0].PriceData.ProductData.Name)
	assert.Equal(t, int64(2), *captured.LineItems[1].Quantity)
}

func TestCreateSession_EmptyRequest(t *testing.T) {
	svc := newTestService(newFakeAdRepo(), func(*stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
		return nil, nil
	})

	_, err := svc.CreateSession(&dto.CreateCheckoutSessionRequest{})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
}

// signPayload produces a Stripe-Signature header the webhook verifier
// accepts, using the documented t=<ts>,v1=<hmac> scheme.
func signPayload(payload []byte, secret string, ts time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func webhookPayload(eventType, adID string) []byte {
	return []byte(fmt.Sprintf(`{
		"id": "evt_1",
		"type": %q,
		"api_version": "2025-03-31",
		"data": {
			"object": {
				"id": "cs_test_1",
				"metadata": {"ad_id": %q}
			}
		}
	}`, eventType, adID))
}

func TestHandleWebhook_CompletedCheckoutActivatesAd(t *testing.T) {
	adRepo := newFakeAdRepo()
	adRepo.ads["ad-1"] = &models.JobAd{ID: "ad-1", Tier: models.AdTierPremium}
	svc := newTestService(adRepo, nil)

	payload := webhookPayload("checkout.session.completed", "ad-1")
	err := svc.HandleWebhook(payload, signPayload(payload, testWebhookSecret, time.Now()))

	require.NoError(t, err)
	assert.True(t, adRepo.ads["ad-1"].IsPaid)
	assert.True(t, adRepo.ads["ad-1"].IsApproved)
}

func TestHandleWebhook_BadSignature(t *testing.T) {
	svc := newTestService(newFakeAdRepo(), nil)

	payload := webhookPayload("checkout.session.completed", "ad-1")
	err := svc.HandleWebhook(payload, signPayload(payload, "whsec_wrong", time.Now()))

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
}

func TestHandleWebhook_IgnoresOtherEvents(t *testing.T) {
	adRepo := newFakeAdRepo()
	adRepo.ads["ad-1"] = &models.JobAd{ID: "ad-1", Tier: models.AdTierPremium}
	svc := newTestService(adRepo, nil)

	payload := webhookPayload("invoice.paid", "ad-1")
	err := svc.HandleWebhook(payload, signPayload(payload, testWebhookSecret, time.Now()))

	require.NoError(t, err)
	assert.False(t, adRepo.ads["ad-1"].IsPaid)
}

func TestHandleWebhook_UnknownAdIsAcknowledged(t *testing.T) {
	svc := newTestService(newFakeAdRepo(), nil)

	payload := webhookPayload("checkout.session.completed", "ghost-ad")
	err := svc.HandleWebhook(payload, signPayload(payload, testWebhookSecret, time.Now()))

	// Stripe retries on non-2xx; an unknown ad is logged, not failed.
	assert.NoError(t, err)
}

func TestHandleWebhook_MissingCorrelationIsAcknowledged(t *testing.T) {
	svc := newTestService(newFakeAdRepo(), nil)

	payload := []byte(`{
		"id": "evt_2",
		"type": "checkout.session.completed",
		"data": {"object": {"id": "cs_test_2", "metadata": {}}}
	}`)
	err := svc.HandleWebhook(payload, signPayload(payload, testWebhookSecret, time.Now()))

	assert.NoError(t, err)
}
