package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/checkout/session"
)

var (
	// ErrInvalidAmount rejects donations below 1 before any processor call.
	ErrInvalidAmount = errors.New("donation amount must be at least 1")
	// ErrCheckoutFailed wraps any processor-side failure.
	ErrCheckoutFailed = errors.New("checkout session creation failed")
)

// checkoutSessionAPI is the slice of the Stripe client the service needs,
// kept small so tests can stub the processor.
type checkoutSessionAPI interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// CheckoutService builds hosted checkout sessions for one-time and
// monthly donations.
type CheckoutService struct {
	sessions checkoutSessionAPI
	baseURL  string
}

// NewCheckoutService constructs a CheckoutService talking to Stripe with
// the given secret key. Redirect URLs are rooted at siteBaseURL.
func NewCheckoutService(apiKey, siteBaseURL string) *CheckoutService {
	client := &session.Client{B: stripe.GetBackend(stripe.APIBackend), Key: apiKey}
	return &CheckoutService{
		sessions: client,
		baseURL:  strings.TrimRight(strings.TrimSpace(siteBaseURL), "/"),
	}
}

// SetSessionAPI swaps the processor client, mainly for tests.
func (s *CheckoutService) SetSessionAPI(api checkoutSessionAPI) {
	if api != nil {
		s.sessions = api
	}
}

// CreateCheckout asks the processor for a hosted checkout session and
// returns its redirect URL. Amounts are euros; the processor gets the
// rounded minor-unit value. Recurring donations become monthly
// subscriptions.
func (s *CheckoutService) CreateCheckout(ctx context.Context, amount float64, isRecurring bool, email string) (string, error) {
	if amount < 1 {
		return "", ErrInvalidAmount
	}

	unitAmount := int64(math.Round(amount * 100))

	productName := "Don Ponctuel - Les Petits Pas"
	donationType := "one_time"
	mode := stripe.CheckoutSessionModePayment
	var recurring *stripe.CheckoutSessionLineItemPriceDataRecurringParams
	if isRecurring {
		productName = "Don Mensuel - Les Petits Pas"
		donationType = "monthly"
		mode = stripe.CheckoutSessionModeSubscription
		recurring = &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
			Interval: stripe.String(string(stripe.PriceRecurringIntervalMonth)),
		}
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card", "paypal"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyEUR)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(productName),
						Description: stripe.String("Merci de soutenir nos actions pour les enfants."),
					},
					UnitAmount: stripe.Int64(unitAmount),
					Recurring:  recurring,
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(mode)),
		SuccessURL: stripe.String(s.baseURL + "/merci?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(s.baseURL + "/don"),
	}
	params.Context = ctx
	if trimmed := strings.TrimSpace(email); trimmed != "" {
		params.CustomerEmail = stripe.String(trimmed)
	}
	params.AddMetadata("donation_type", donationType)

	checkoutSession, err := s.sessions.New(params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCheckoutFailed, err)
	}
	if checkoutSession == nil || strings.TrimSpace(checkoutSession.URL) == "" {
		return "", ErrCheckoutFailed
	}

	return checkoutSession.URL, nil
}
