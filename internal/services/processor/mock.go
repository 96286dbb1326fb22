package processor

import (
	"context"
	"fmt"
	"log"
	"time"
)

// DefaultMockDelay approximates a processor round-trip.
const DefaultMockDelay = 3 * time.Second

// Mock resolves every capture after a fixed artificial delay. Real
// deployments replace this with a processor-backed implementation and must
// handle its failure modes.
type Mock struct {
	delay time.Duration
}

// NewMock creates a mock processor with the given round-trip delay.
func NewMock(delay time.Duration) *Mock {
	if delay <= 0 {
		delay = DefaultMockDelay
	}
	return &Mock{delay: delay}
}

func (m *Mock) Capture(ctx context.Context, token string, amountCents int64, description string) (*Receipt, error) {
	if token == "" {
		return nil, ErrEmptyToken
	}
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}

	select {
	case <-time.After(m.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	receipt := &Receipt{
		Reference:   fmt.Sprintf("MOCK-%d", time.Now().UnixNano()),
		AmountCents: amountCents,
		Currency:    "USD",
		CapturedAt:  time.Now(),
	}
	log.Printf("mock processor captured %d cents (ref %s)", amountCents, receipt.Reference)
	return receipt, nil
}
