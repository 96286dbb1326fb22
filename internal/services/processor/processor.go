// Package processor submits opaque payment tokens to a payment processor.
// The tokens come from the external SDK's tokenization; this package never
// sees card data.
package processor

import (
	"context"
	"errors"
	"time"
)

// Processor errors
var (
	ErrEmptyToken    = errors.New("empty payment token")
	ErrInvalidAmount = errors.New("invalid capture amount")
)

// Receipt is the result of a successful capture.
type Receipt struct {
	Reference   string
	AmountCents int64
	Currency    string
	CapturedAt  time.Time
}

// Processor captures a payment for an opaque token.
type Processor interface {
	Capture(ctx context.Context, token string, amountCents int64, description string) (*Receipt, error)
}
