package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stripe/stripe-go/v78"
)

type stubSessionAPI struct {
	calls  int
	params *stripe.CheckoutSessionParams
	url    string
	err    error
}

func (s *stubSessionAPI) New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	s.calls++
	s.params = params
	if s.err != nil {
		return nil, s.err
	}
	return &stripe.CheckoutSession{URL: s.url}, nil
}

func newTestCheckoutService(stub *stubSessionAPI) *CheckoutService {
	svc := NewCheckoutService("sk_test_fake", "https://lespetitspas.org/")
	svc.SetSessionAPI(stub)
	return svc
}

func TestCreateCheckoutRejectsLowAmounts(t *testing.T) {
	stub := &stubSessionAPI{url: "https://checkout.stripe.com/c/session"}
	svc := newTestCheckoutService(stub)

	for _, amount := range []float64{0, 0.5, 0.99, -3} {
		if _, err := svc.CreateCheckout(context.Background(), amount, false, ""); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("amount %v: expected ErrInvalidAmount, got %v", amount, err)
		}
	}
	if stub.calls != 0 {
		t.Fatalf("invalid amounts must never reach the processor, got %d calls", stub.calls)
	}
}

func TestCreateCheckoutRecurring(t *testing.T) {
	stub := &stubSessionAPI{url: "https://checkout.stripe.com/c/session"}
	svc := newTestCheckoutService(stub)

	url, err := svc.CreateCheckout(context.Background(), 15, true, "a@b.com")
	if err != nil {
		t.Fatalf("failed to create checkout: %v", err)
	}
	if url == "" {
		t.Fatalf("expected a non-empty redirect URL")
	}

	params := stub.params
	if params == nil {
		t.Fatalf("expected the processor to be called")
	}
	if got := stripe.StringValue(params.Mode); got != string(stripe.CheckoutSessionModeSubscription) {
		t.Fatalf("expected subscription mode, got %q", got)
	}

	if len(params.LineItems) != 1 {
		t.Fatalf("expected a single line item, got %d", len(params.LineItems))
	}
	price := params.LineItems[0].PriceData
	if got := stripe.Int64Value(price.UnitAmount); got != 1500 {
		t.Fatalf("expected unit amount 1500, got %d", got)
	}
	if got := stripe.StringValue(price.Currency); got != string(stripe.CurrencyEUR) {
		t.Fatalf("expected EUR, got %q", got)
	}
	if price.Recurring == nil || stripe.StringValue(price.Recurring.Interval) != string(stripe.PriceRecurringIntervalMonth) {
		t.Fatalf("expected a monthly recurring price, got %+v", price.Recurring)
	}

	if got := stripe.StringValue(params.CustomerEmail); got != "a@b.com" {
		t.Fatalf("expected the email to be forwarded, got %q", got)
	}
	if params.Metadata["donation_type"] != "monthly" {
		t.Fatalf("expected donation_type metadata monthly, got %q", params.Metadata["donation_type"])
	}
	if got := stripe.StringValue(params.SuccessURL); got != "https://lespetitspas.org/merci?session_id={CHECKOUT_SESSION_ID}" {
		t.Fatalf("unexpected success URL %q", got)
	}
	if got := stripe.StringValue(params.CancelURL); got != "https://lespetitspas.org/don" {
		t.Fatalf("unexpected cancel URL %q", got)
	}
}

func TestCreateCheckoutOneTime(t *testing.T) {
	stub := &stubSessionAPI{url: "https://checkout.stripe.com/c/session"}
	svc := newTestCheckoutService(stub)

	if _, err := svc.CreateCheckout(context.Background(), 10.555, false, ""); err != nil {
		t.Fatalf("failed to create checkout: %v", err)
	}

	params := stub.params
	if got := stripe.StringValue(params.Mode); got != string(stripe.CheckoutSessionModePayment) {
		t.Fatalf("expected one-time payment mode, got %q", got)
	}
	if price := params.LineItems[0].PriceData; price.Recurring != nil {
		t.Fatalf("one-time donations must not carry a recurring price")
	}
	// Minor-unit conversion rounds, not truncates.
	if got := stripe.Int64Value(params.LineItems[0].PriceData.UnitAmount); got != 1056 {
		t.Fatalf("expected unit amount 1056, got %d", got)
	}
	if params.CustomerEmail != nil {
		t.Fatalf("expected no customer email when none was given")
	}
	if params.Metadata["donation_type"] != "one_time" {
		t.Fatalf("expected donation_type metadata one_time, got %q", params.Metadata["donation_type"])
	}
}

func TestCreateCheckoutProcessorFailure(t *testing.T) {
	stub := &stubSessionAPI{err: errors.New("stripe: boom")}
	svc := newTestCheckoutService(stub)

	if _, err := svc.CreateCheckout(context.Background(), 20, false, ""); !errors.Is(err, ErrCheckoutFailed) {
		t.Fatalf("expected ErrCheckoutFailed, got %v", err)
	}
}
