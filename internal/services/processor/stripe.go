package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/charge"
)

// Stripe captures payments through the Stripe API. It is the processor-backed
// replacement for the mock.
type Stripe struct{}

// NewStripe configures the Stripe client with the given secret key.
func NewStripe(apiKey string) *Stripe {
	stripe.Key = apiKey
	return &Stripe{}
}

func (p *Stripe) Capture(ctx context.Context, token string, amountCents int64, description string) (*Receipt, error) {
	if token == "" {
		return nil, ErrEmptyToken
	}
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}

	params := &stripe.ChargeParams{
		Amount:      stripe.Int64(amountCents),
		Currency:    stripe.String(string(stripe.CurrencyUSD)),
		Description: stripe.String(description),
	}
	params.Context = ctx
	if err := params.SetSource(token); err != nil {
		return nil, fmt.Errorf("invalid payment token: %w", err)
	}

	ch, err := charge.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe capture failed: %w", err)
	}

	return &Receipt{
		Reference:   ch.ID,
		AmountCents: amountCents,
		Currency:    string(stripe.CurrencyUSD),
		CapturedAt:  time.Now(),
	}, nil
}
